package ast

import (
	"fmt"
	"strings"
)

// Describe names a value the way diagnostics refer to it, quoting the
// literal where that is short and unambiguous: "boolean `true`",
// "integer `42`", "map", "struct `Point`".
func Describe(v Value) string {
	switch n := v.(type) {
	case *Unit:
		return "unit"
	case *Bool:
		return fmt.Sprintf("boolean `%t`", n.Value)
	case *Integer:
		return fmt.Sprintf("integer `%s`", n.Literal())
	case *Float:
		return fmt.Sprintf("float `%v`", n.Value)
	case *Char:
		return fmt.Sprintf("character `%q`", n.Value)
	case *String:
		return "string"
	case *Ident:
		return fmt.Sprintf("identifier `%s`", n.Name)
	case *Option:
		if n.Inner == nil {
			return "option `None`"
		}
		return "option `Some`"
	case *Sequence:
		return "sequence"
	case *Tuple:
		if n.Name != nil {
			return fmt.Sprintf("tuple `%s`", n.Name.Name)
		}
		return "tuple"
	case *NamedFields:
		if n.Name != nil {
			return fmt.Sprintf("struct `%s`", n.Name.Name)
		}
		return "struct"
	case *Map:
		return "map"
	default:
		return "value"
	}
}

// Literal renders the integer the way it was signed in source, without
// radix or suffix.
func (n *Integer) Literal() string {
	var sb strings.Builder
	if n.Sign == Negative {
		sb.WriteByte('-')
	} else if n.Sign == Positive {
		sb.WriteByte('+')
	}
	fmt.Fprintf(&sb, "%d", n.Magnitude)
	return sb.String()
}
