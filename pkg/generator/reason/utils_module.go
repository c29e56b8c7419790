package reason

import (
	"strings"

	"github.com/mulholio/reason-relay/pkg/config"
	"github.com/mulholio/reason-relay/pkg/ir"
)

// utilsSection prints the Utils module: the connection helper when the
// configured path resolves, and one constructor per named input object with
// at least one nullable property. Empty when neither applies.
func utilsSection(n names, state ir.FullState, cfg config.PrintConfig) string {
	var parts []string
	if helper := connectionHelper(n, state, cfg); helper != "" {
		parts = append(parts, helper)
	}
	parts = append(parts, inputConstructors(state)...)
	if len(parts) == 0 {
		return ""
	}
	return "module Utils = {\n" + strings.Join(parts, "\n\n") + "\n};"
}

// connectionShape resolves the configured connection path against the
// finalized objects. The configured path is root-first; object paths are
// leaf-first and may carry a trailing root anchor. A path of just
// "fragment" falls back to the fragment definition.
func connectionShape(state ir.FullState, cfg config.PrintConfig) (ir.ObjectShape, string, bool) {
	conn := cfg.Connection
	if conn == nil {
		return ir.ObjectShape{}, "", false
	}
	if len(conn.AtObjectPath) == 1 && conn.AtObjectPath[0] == "fragment" {
		if state.Fragment != nil {
			return state.Fragment.Definition, "fragment", true
		}
		return ir.ObjectShape{}, "", false
	}

	want := make([]string, 0, len(conn.AtObjectPath))
	for i := len(conn.AtObjectPath) - 1; i >= 0; i-- {
		want = append(want, conn.AtObjectPath[i])
	}

	for _, obj := range state.Objects {
		if obj.FoundInUnion || obj.RecordName == "" {
			continue
		}
		p := obj.AtPath
		if pathsEqual(p, want) {
			return obj.Definition, obj.RecordName, true
		}
		if len(p) == len(want)+1 && rootAnchors[p[len(p)-1]] && pathsEqual(p[:len(p)-1], want) {
			return obj.Definition, obj.RecordName, true
		}
	}
	return ir.ObjectShape{}, "", false
}

// connectionHelper prints getConnectionNodes for the configured field. The
// generated switches follow the actual nullability of the edges list, the
// edge items and the node field; an unresolvable path prints nothing.
func connectionHelper(n names, state ir.FullState, cfg config.PrintConfig) string {
	shape, connType, ok := connectionShape(state, cfg)
	if !ok {
		return ""
	}

	var edges *ir.PropValue
	for i, entry := range shape.Values {
		if entry.Kind == ir.EntryProp && entry.Name == "edges" {
			edges = &shape.Values[i].Value
			break
		}
	}
	if edges == nil || edges.Type.Kind != ir.PropKindArray || edges.Type.ArrayItem == nil {
		return ""
	}
	edge := edges.Type.ArrayItem
	if edge.Type.Kind != ir.PropKindObject || edge.Type.Object == nil {
		return ""
	}

	var node *ir.PropValue
	for i, entry := range edge.Type.Object.Values {
		if entry.Kind == ir.EntryProp && entry.Name == "node" {
			node = &edge.Type.Object.Values[i].Value
			break
		}
	}
	if node == nil {
		return ""
	}

	nodeType := n.baseTypeText(node.Type)
	mapExpr := func(edgesExpr string) string {
		switch {
		case edge.Nullable && node.Nullable:
			return edgesExpr + "->Belt.Array.keepMap(edge =>\n" +
				"          switch (edge) {\n" +
				"          | None => None\n" +
				"          | Some(edge) => edge.node\n" +
				"          }\n" +
				"        )"
		case edge.Nullable:
			return edgesExpr + "->Belt.Array.keepMap(edge =>\n" +
				"          switch (edge) {\n" +
				"          | None => None\n" +
				"          | Some(edge) => Some(edge.node)\n" +
				"          }\n" +
				"        )"
		case node.Nullable:
			return edgesExpr + "->Belt.Array.keepMap(edge => edge.node)"
		default:
			return edgesExpr + "->Belt.Array.map(edge => edge.node)"
		}
	}

	var body string
	if edges.Nullable {
		body = "      switch (connection.edges) {\n" +
			"      | None => [||]\n" +
			"      | Some(edges) =>\n" +
			"        " + mapExpr("edges") + "\n" +
			"      }"
	} else {
		body = "      " + mapExpr("connection.edges")
	}

	var b strings.Builder
	b.WriteString("  let getConnectionNodes_" + cfg.Connection.FieldName + ":\n")
	b.WriteString("    option(" + connType + ") => array(" + nodeType + ") =\n")
	b.WriteString("    connection =>\n")
	b.WriteString("      switch (connection) {\n")
	b.WriteString("      | None => [||]\n")
	b.WriteString("      | Some(connection) =>\n")
	b.WriteString(body + "\n")
	b.WriteString("      };")
	return b.String()
}

// inputConstructors prints a make_ function per named input object that has
// at least one nullable property. Inputs with only required fields need no
// constructor.
func inputConstructors(state ir.FullState) []string {
	var out []string
	for _, obj := range state.Objects {
		if obj.OriginalTypeName == "" || obj.RecordName == "" {
			continue
		}
		hasNullable := false
		for _, entry := range obj.Definition.Values {
			if entry.Kind == ir.EntryProp && entry.Value.Nullable {
				hasNullable = true
				break
			}
		}
		if !hasNullable {
			continue
		}

		var args, assigns []string
		for _, entry := range obj.Definition.Values {
			if entry.Kind != ir.EntryProp {
				continue
			}
			field := fieldName(entry.Name)
			if entry.Value.Nullable {
				args = append(args, "~"+field+"=?")
			} else {
				args = append(args, "~"+field)
			}
			assigns = append(assigns, "    "+field+": "+field+",")
		}
		args = append(args, "()")

		var b strings.Builder
		b.WriteString("  let make_" + obj.RecordName + " = (" + strings.Join(args, ", ") + "): " + obj.RecordName + " => {\n")
		b.WriteString(strings.Join(assigns, "\n"))
		b.WriteString("\n  };")
		out = append(out, b.String())
	}
	return out
}
