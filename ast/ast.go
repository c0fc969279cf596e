// Package ast defines the syntax tree produced by the parser and walked by
// the evaluator.
package ast

import (
	"strings"

	"github.com/neilm5/pyrite/token"
)

// Node is implemented by every AST node type.
type Node interface {
	String() string
}

type Literal struct {
	Token token.Token
}

func (n *Literal) String() string { return n.Token.Literal }

type List struct {
	Elements []Node
}

func (n *List) String() string {
	parts := make([]string, len(n.Elements))
	for i, e := range n.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

type ListAccess struct {
	Name  Node
	Index Node
}

func (n *ListAccess) String() string { return n.Name.String() + "[" + n.Index.String() + "]" }

type BinOp struct {
	Left  Node
	Op    token.Type
	Right Node
}

func (n *BinOp) String() string { return "(" + n.Left.String() + " " + string(n.Op) + " " + n.Right.String() + ")" }

type UnaryOp struct {
	Op    token.Type
	Right Node
}

func (n *UnaryOp) String() string { return "(" + string(n.Op) + n.Right.String() + ")" }

type Incr struct {
	VarName  string
	IsPrefix bool
}

func (n *Incr) String() string { return n.VarName + "++" }

type Decr struct {
	VarName  string
	IsPrefix bool
}

func (n *Decr) String() string { return n.VarName + "--" }

type VarAccess struct {
	VarName string
}

func (n *VarAccess) String() string { return n.VarName }

type VarAssign struct {
	VarName string
	Value   Node
	IsOver  bool
}

func (n *VarAssign) String() string { return "(" + n.VarName + " = " + n.Value.String() + ")" }

type ConstAssign struct {
	ConstName string
	Value     Node
}

func (n *ConstAssign) String() string { return "(" + n.ConstName + " = " + n.Value.String() + ")" }

type If struct {
	Condition  Node
	Body       []Node
	ElifClause []ElifBranch
	ElseBody   []Node
}

type ElifBranch struct {
	Condition Node
	Body      []Node
}

func (n *If) String() string { return "(if " + n.Condition.String() + ")" }

type While struct {
	Condition Node
	Body      []Node
}

func (n *While) String() string { return "(while " + n.Condition.String() + ")" }

type For struct {
	VarName   string
	Init      Node
	Condition Node
	Update    Node
	Body      []Node
}

func (n *For) String() string { return "(for " + n.VarName + ")" }

type FunctionDef struct {
	Name   string
	Params []string
	Body   []Node
}

func (n *FunctionDef) String() string { return "(func " + n.Name + ")" }

// FunctionCall covers both built-in calls (Builtin set, Name empty) and
// user-defined function calls (Name set, Builtin is token.ID).
type FunctionCall struct {
	Builtin token.Type
	Name    string
	Args    []Node
}

func (n *FunctionCall) String() string {
	if n.Builtin != token.ID && n.Builtin != "" {
		return string(n.Builtin) + "(...)"
	}
	return n.Name + "(...)"
}
