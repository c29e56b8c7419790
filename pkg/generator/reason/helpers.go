package reason

import (
	"strings"

	"github.com/mulholio/reason-relay/pkg/ir"
)

// reservedWords are ReasonML keywords that cannot name a record field.
var reservedWords = map[string]bool{
	"and": true, "as": true, "assert": true, "begin": true, "class": true,
	"constraint": true, "do": true, "done": true, "downto": true, "else": true,
	"end": true, "exception": true, "external": true, "false": true,
	"for": true, "fun": true, "function": true, "functor": true, "if": true,
	"in": true, "include": true, "inherit": true, "initializer": true,
	"lazy": true, "let": true, "module": true, "mutable": true, "new": true,
	"nonrec": true, "object": true, "of": true, "open": true, "or": true,
	"private": true, "rec": true, "sig": true, "struct": true, "switch": true,
	"then": true, "to": true, "true": true, "try": true, "type": true,
	"val": true, "virtual": true, "when": true, "while": true, "with": true,
}

func fieldName(name string) string {
	if reservedWords[name] {
		return name + "_"
	}
	return name
}

// names resolves finalized entities to the identifiers the emitted source
// uses for them.
type names struct {
	// records maps a joined leaf-first path to the record name chosen by the
	// finalizer.
	records map[string]string
}

func buildNames(state ir.FullState) names {
	n := names{records: make(map[string]string, len(state.Objects))}
	for _, obj := range state.Objects {
		if obj.RecordName == "" {
			continue
		}
		n.records[pathKey(obj.AtPath)] = obj.RecordName
	}
	return n
}

func pathKey(path []string) string {
	return strings.Join(path, ".")
}

// unionName derives the union identifier from its leaf-first path, rendered
// root-first with underscore separators.
func unionName(path []string) string {
	parts := make([]string, 0, len(path))
	for i := len(path) - 1; i >= 0; i-- {
		parts = append(parts, path[i])
	}
	return strings.Join(parts, "_")
}

func (n names) recordFor(path []string) string {
	if name, ok := n.records[pathKey(path)]; ok {
		return name
	}
	return "Js.Json.t"
}

// typeText renders a property value as source text, wrapping nullable values
// in option().
func (n names) typeText(v ir.PropValue) string {
	base := n.baseTypeText(v.Type)
	if v.Nullable {
		return "option(" + base + ")"
	}
	return base
}

func (n names) baseTypeText(t ir.PropType) string {
	switch t.Kind {
	case ir.PropKindScalar:
		switch t.Scalar {
		case ir.ScalarString:
			return "string"
		case ir.ScalarFloat:
			return "float"
		case ir.ScalarBoolean:
			return "bool"
		default:
			return "Js.Json.t"
		}
	case ir.PropKindEnum:
		if t.Enum != nil {
			return "enum_" + t.Enum.Name
		}
	case ir.PropKindUnion:
		if t.Union != nil {
			return "union_" + unionName(t.Union.AtPath)
		}
	case ir.PropKindObject:
		if t.Object != nil {
			return n.recordFor(t.Object.AtPath)
		}
	case ir.PropKindArray:
		if t.ArrayItem != nil {
			return "array(" + n.typeText(*t.ArrayItem) + ")"
		}
		return "array(Js.Json.t)"
	case ir.PropKindTypeReference:
		return t.TypeRef
	}
	return "Js.Json.t"
}

// recordText prints a record declaration. Shapes with no printable entries
// become abstract types. Fragment references collapse into a single
// fragmentRefs field.
func (n names) recordText(name string, shape ir.ObjectShape, indent string) string {
	fields := make([]string, 0, len(shape.Values))
	var refs []string
	for _, entry := range shape.Values {
		switch entry.Kind {
		case ir.EntryProp:
			fields = append(fields, indent+"  "+fieldName(entry.Name)+": "+n.typeText(entry.Value)+",")
		case ir.EntryFragmentRef:
			refs = append(refs, "`"+entry.FragmentName)
		}
	}
	if len(refs) > 0 {
		fields = append(fields, indent+"  fragmentRefs: ReasonRelay.fragmentRefs([ | "+strings.Join(refs, " | ")+"]),")
	}
	if len(fields) == 0 {
		return indent + "type " + name + ";"
	}
	var b strings.Builder
	b.WriteString(indent + "type " + name + " = {\n")
	for _, f := range fields {
		b.WriteString(f + "\n")
	}
	b.WriteString(indent + "};")
	return b.String()
}

// forceRequired copies a shape with the nullability of every top-level field
// cleared.
func forceRequired(shape ir.ObjectShape) ir.ObjectShape {
	out := ir.ObjectShape{AtPath: shape.AtPath}
	out.Values = make([]ir.PropEntry, 0, len(shape.Values))
	for _, entry := range shape.Values {
		if entry.Kind == ir.EntryProp {
			entry.Value.Nullable = false
		}
		out.Values = append(out.Values, entry)
	}
	return out
}

// hasSuffix reports whether path ends with suffix element-wise.
func hasSuffix(path, suffix []string) bool {
	if len(suffix) > len(path) {
		return false
	}
	off := len(path) - len(suffix)
	for i, s := range suffix {
		if path[off+i] != s {
			return false
		}
	}
	return true
}

var rootAnchors = map[string]bool{
	"variables": true,
	"response":  true,
	"fragment":  true,
	"root":      true,
}

// pathsEqual reports whether two paths match element-wise.
func pathsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
