package object

// Truthy mirrors Python's notion of truthiness, since the eager & and |
// operators and if/while conditions rely on it: zero numbers, the empty
// string, the empty list, null and false are falsy; everything else is
// truthy.
func Truthy(obj Object) bool {
	switch v := obj.(type) {
	case *Boolean:
		return v.Value
	case *Null:
		return false
	case *Integer:
		return v.Value != 0
	case *Float:
		return v.Value != 0
	case *String:
		return v.Value != ""
	case *List:
		return len(v.Elements) > 0
	default:
		return true
	}
}
