package object

import "github.com/neilm5/pyrite/errs"

// Environment is a single flat namespace, not a lexically-chained scope:
// there is exactly one of these for the whole program, and a function call
// borrows it rather than nesting a child scope. This is a deliberate
// departure from the parent-chain Scope/Environment style used by
// interpreters elsewhere in the pack, required because Pyrite's function
// calls snapshot and restore the whole symbol map rather than closing over
// an outer one.
type Environment struct {
	vars   map[string]Object
	consts map[string]bool
}

func NewEnvironment() *Environment {
	return &Environment{
		vars:   make(map[string]Object),
		consts: make(map[string]bool),
	}
}

// Get returns the binding for name and whether it exists.
func (e *Environment) Get(name string) (Object, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Set binds name to value, rejecting the assignment if name was previously
// declared with con. When asConst is true, name is added to the constants
// set after the assignment succeeds.
func (e *Environment) Set(name string, value Object, asConst bool) *errs.Error {
	if e.consts[name] {
		return errs.Runtime("Cannot reassign constant '%s'", name)
	}
	e.vars[name] = value
	if asConst {
		e.consts[name] = true
	}
	return nil
}

func (e *Environment) IsConst(name string) bool {
	return e.consts[name]
}

// Snapshot returns a shallow copy of the current variable bindings, taken
// on entry to a user function call. Restore later replaces the live
// bindings wholesale with this snapshot, discarding every mutation the
// call made to pre-existing names — including its own parameters. The
// constants set is deliberately NOT snapshotted or restored: a `con`
// declared inside a function body leaks its constant-name membership into
// the caller even though the value binding itself reverts, preserving the
// original implementation's behavior here.
func (e *Environment) Snapshot() map[string]Object {
	snap := make(map[string]Object, len(e.vars))
	for k, v := range e.vars {
		snap[k] = v
	}
	return snap
}

func (e *Environment) Restore(snapshot map[string]Object) {
	e.vars = snapshot
}
