package decode

import (
	"fmt"

	"github.com/satishbabariya/ron-go/ron/diagnostics"
	"github.com/satishbabariya/ron-go/ron/parsing/ast"
)

// Pair is one materialized map entry. Map entries keep source order, so
// maps materialize as an ordered slice rather than a Go map.
type Pair struct {
	Key   any
	Value any
}

// Any materializes a value without a schema: booleans, integers (int64,
// or uint64 when the magnitude exceeds int64), floats, strings, runes,
// nil for unit and None, slices for sequences and tuples, ordered field
// and entry lists for structs and maps. Nesting beyond the decoder's
// depth limit fails with the nested node's span.
func (d *Decoder) Any(v ast.Value) (any, *diagnostics.DecodeError) {
	return d.any(v, 0)
}

func (d *Decoder) any(v ast.Value, depth int) (any, *diagnostics.DecodeError) {
	if depth >= d.maxDepth {
		return nil, diagnostics.NewDecodeError(
			fmt.Sprintf("exceeded maximum nesting depth of %d", d.maxDepth), v.NodeSpan())
	}
	switch n := v.(type) {
	case *ast.Unit:
		return nil, nil
	case *ast.Bool:
		return n.Value, nil
	case *ast.Integer:
		if n.Sign == ast.Negative {
			i, err := d.Int(v, 64)
			if err != nil {
				return nil, err
			}
			return i, nil
		}
		if err := checkSuffix(n); err != nil {
			return nil, err
		}
		if n.Magnitude > 1<<63-1 {
			return n.Magnitude, nil
		}
		return int64(n.Magnitude), nil
	case *ast.Float:
		return n.Value, nil
	case *ast.Char:
		return n.Value, nil
	case *ast.String:
		return n.Value, nil
	case *ast.Ident:
		return n.Name, nil
	case *ast.Option:
		if n.Inner == nil {
			return nil, nil
		}
		return d.any(n.Inner, depth+1)
	case *ast.Sequence:
		return d.anySlice(n.Elements, depth)
	case *ast.Tuple:
		return d.anySlice(n.Elements, depth)
	case *ast.NamedFields:
		pairs := make([]Pair, 0, len(n.Fields))
		for _, f := range n.Fields {
			value, err := d.any(f.Value, depth+1)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, Pair{Key: f.Name.Name, Value: value})
		}
		return pairs, nil
	case *ast.Map:
		pairs := make([]Pair, 0, len(n.Entries))
		for _, e := range n.Entries {
			key, err := d.any(e.Key, depth+1)
			if err != nil {
				return nil, err
			}
			value, err := d.any(e.Value, depth+1)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, Pair{Key: key, Value: value})
		}
		return pairs, nil
	default:
		return nil, diagnostics.NewDecodeError("unsupported value", v.NodeSpan())
	}
}

func (d *Decoder) anySlice(elements []ast.Value, depth int) ([]any, *diagnostics.DecodeError) {
	out := make([]any, 0, len(elements))
	for _, el := range elements {
		value, err := d.any(el, depth+1)
		if err != nil {
			return nil, err
		}
		out = append(out, value)
	}
	return out, nil
}
