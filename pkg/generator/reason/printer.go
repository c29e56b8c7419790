package reason

import (
	"embed"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/mulholio/reason-relay/pkg/config"
	"github.com/mulholio/reason-relay/pkg/ir"
)

//go:embed templates/*
var templatesFS embed.FS

// ReasonPrinter implements the Printer interface for ReasonML output
type ReasonPrinter struct {
	tmpl *template.Template
}

// NewPrinter creates a new ReasonML printer
func NewPrinter() *ReasonPrinter {
	content, err := templatesFS.ReadFile("templates/artifact.re.gotmpl")
	if err != nil {
		panic(err)
	}
	tmpl := template.Must(template.New("artifact.re.gotmpl").Funcs(sprig.FuncMap()).Parse(string(content)))
	return &ReasonPrinter{tmpl: tmpl}
}

// GetType returns the printer type identifier
func (p *ReasonPrinter) GetType() string {
	return "reason"
}

// Print renders the finalized state of one artifact as a ReasonML source
// file. Section order is fixed: enums, unions, types, operation roots,
// converter assets, fragment refs, utils, operation descriptor.
func (p *ReasonPrinter) Print(state ir.FullState, op ir.Operation, cfg config.PrintConfig) (string, error) {
	n := buildNames(state)

	sections := []string{
		enumsSection(state),
		unionsSection(n, state),
		typesSection(n, state),
		rootsSection(n, state, op),
	}

	internal, err := internalSection(state, op)
	if err != nil {
		return "", err
	}
	sections = append(sections,
		internal,
		fragmentRefsSection(state),
		utilsSection(n, state, cfg),
		trailerSection(op),
	)

	nonEmpty := make([]string, 0, len(sections))
	for _, s := range sections {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}

	var b strings.Builder
	if err := p.tmpl.Execute(&b, map[string]any{"Sections": nonEmpty}); err != nil {
		return "", err
	}
	out := b.String()
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out, nil
}

// enumsSection prints each enum as a polymorphic variant plus its wrap and
// unwrap helpers. Insertion order after dedup is preserved.
func enumsSection(state ir.FullState) string {
	if len(state.Enums) == 0 {
		return ""
	}
	parts := make([]string, 0, len(state.Enums))
	for _, enum := range state.Enums {
		var b strings.Builder
		b.WriteString("type enum_" + enum.Name + " = [\n")
		for _, value := range enum.Values {
			b.WriteString("  | `" + value + "\n")
		}
		b.WriteString("  | `FutureAddedValue(string)\n")
		b.WriteString("];\n\n")

		b.WriteString("let unwrap_enum_" + enum.Name + ": string => enum_" + enum.Name + " =\n")
		b.WriteString("  value =>\n")
		b.WriteString("    switch (value) {\n")
		for _, value := range enum.Values {
			b.WriteString("    | \"" + value + "\" => `" + value + "\n")
		}
		b.WriteString("    | value => `FutureAddedValue(value)\n")
		b.WriteString("    };\n\n")

		b.WriteString("let wrap_enum_" + enum.Name + ": enum_" + enum.Name + " => string =\n")
		b.WriteString("  value =>\n")
		b.WriteString("    switch (value) {\n")
		for _, value := range enum.Values {
			b.WriteString("    | `" + value + " => \"" + value + "\"\n")
		}
		b.WriteString("    | `FutureAddedValue(value) => value\n")
		b.WriteString("    };")
		parts = append(parts, b.String())
	}
	return strings.Join(parts, "\n\n")
}

// unionsSection prints the Unions module. Unions appear innermost first so
// that outer member records can reference inner union aliases; each union
// gets a nested module of member records, a variant alias and a converter
// pair discriminating on the typename.
func unionsSection(n names, state ir.FullState) string {
	if len(state.Unions) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("module Unions = {\n")
	for i := len(state.Unions) - 1; i >= 0; i-- {
		union := state.Unions[i]
		name := unionName(union.AtPath)

		b.WriteString("  module Union_" + name + " = {\n")
		members := unionObjects(state, i)
		for j := len(members) - 1; j >= 0; j-- {
			obj := members[j]
			b.WriteString(n.recordText(obj.RecordName, obj.Definition, "    ") + "\n")
		}
		b.WriteString("  };\n\n")

		b.WriteString("  type union_" + name + " = [\n")
		for _, member := range union.Members {
			b.WriteString("    | `" + member.Name + "(Union_" + name + "." + n.recordFor(member.Shape.AtPath) + ")\n")
		}
		b.WriteString("    | `UnselectedUnionMember(string)\n")
		b.WriteString("  ];\n\n")

		b.WriteString("  let unwrap_union_" + name + ": Js.Json.t => union_" + name + " =\n")
		b.WriteString("    union =>\n")
		b.WriteString("      switch (union->ReasonRelay.getUnionTypename) {\n")
		for _, member := range union.Members {
			b.WriteString("      | \"" + member.Name + "\" => `" + member.Name + "(union->ReasonRelay.toUnionMember)\n")
		}
		b.WriteString("      | typename => `UnselectedUnionMember(typename)\n")
		b.WriteString("      };\n\n")

		b.WriteString("  let wrap_union_" + name + ": union_" + name + " => Js.Json.t =\n")
		b.WriteString("    union =>\n")
		b.WriteString("      switch (union) {\n")
		for _, member := range union.Members {
			b.WriteString("      | `" + member.Name + "(member) => member->ReasonRelay.fromUnionMember(\"" + member.Name + "\")\n")
		}
		b.WriteString("      | `UnselectedUnionMember(_) => Js.Json.null\n")
		b.WriteString("      };\n")
		if i > 0 {
			b.WriteString("\n")
		}
	}
	b.WriteString("};\n\nopen Unions;")
	return b.String()
}

// unionObjects selects the finalized objects belonging to the union at
// index idx: those found in a union whose longest matching union path is
// this union's.
func unionObjects(state ir.FullState, idx int) []ir.FinalizedObj {
	union := state.Unions[idx]
	var out []ir.FinalizedObj
	for _, obj := range state.Objects {
		if !obj.FoundInUnion || obj.RecordName == "" {
			continue
		}
		if !hasSuffix(obj.AtPath, union.AtPath) || len(obj.AtPath) == len(union.AtPath) {
			continue
		}
		owned := true
		for _, other := range state.Unions {
			if len(other.AtPath) > len(union.AtPath) && hasSuffix(obj.AtPath, other.AtPath) && len(obj.AtPath) > len(other.AtPath) {
				owned = false
				break
			}
		}
		if owned {
			out = append(out, obj)
		}
	}
	return out
}

// typesSection prints the Types module: one record per finalized object not
// owned by a union, reverse insertion order so dependencies come first.
func typesSection(n names, state ir.FullState) string {
	var decls []string
	for i := len(state.Objects) - 1; i >= 0; i-- {
		obj := state.Objects[i]
		if obj.FoundInUnion || obj.RecordName == "" {
			continue
		}
		decls = append(decls, n.recordText(obj.RecordName, obj.Definition, "  "))
	}
	if len(decls) == 0 {
		return ""
	}
	return "module Types = {\n" + strings.Join(decls, "\n") + "\n};\n\nopen Types;"
}

// rootsSection prints the operation roots: variables (with refetchVariables
// for queries), the response under its kind-specific name, and the fragment
// (plural fragments as arrays).
func rootsSection(n names, state ir.FullState, op ir.Operation) string {
	var parts []string

	if state.Variables != nil {
		parts = append(parts, n.recordText("variables", *state.Variables, ""))
		if op.Kind == ir.KindQuery {
			refetch := forceRequired(*state.Variables)
			parts = append(parts, n.recordText("refetchVariables", refetch, ""))
			if ctor := makeRefetchVariables(refetch); ctor != "" {
				parts = append(parts, ctor)
			}
		}
	}

	if state.Response != nil {
		parts = append(parts, n.recordText(responseName(op), *state.Response, ""))
	}

	if state.Fragment != nil {
		if state.Fragment.Plural {
			parts = append(parts, n.recordText("fragment_t", state.Fragment.Definition, ""))
			parts = append(parts, "type fragment = array(fragment_t);")
		} else {
			parts = append(parts, n.recordText("fragment", state.Fragment.Definition, ""))
		}
	}

	return strings.Join(parts, "\n\n")
}

func responseName(op ir.Operation) string {
	switch op.Kind {
	case ir.KindMutation:
		return "mutationResponse"
	case ir.KindSubscription:
		return "subscriptionResponse"
	default:
		return "response"
	}
}

// makeRefetchVariables prints the refetch constructor. Every field is a
// required labelled argument.
func makeRefetchVariables(shape ir.ObjectShape) string {
	var args, assigns []string
	for _, entry := range shape.Values {
		if entry.Kind != ir.EntryProp {
			continue
		}
		field := fieldName(entry.Name)
		args = append(args, "~"+field)
		assigns = append(assigns, "  "+field+": "+field+",")
	}
	if len(args) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("let makeRefetchVariables = (" + strings.Join(args, ", ") + "): refetchVariables => {\n")
	b.WriteString(strings.Join(assigns, "\n"))
	b.WriteString("\n};")
	return b.String()
}

// fragmentRefsSection prints the opaque reference assets consumers use to
// pass this fragment around.
func fragmentRefsSection(state ir.FullState) string {
	if state.Fragment == nil {
		return ""
	}
	name := state.Fragment.Name
	var b strings.Builder
	b.WriteString("type t;\n")
	b.WriteString("type fragmentRef;\n")
	b.WriteString("type fragmentRefSelector('a) =\n")
	b.WriteString("  {.. \"__$fragment_ref__" + name + "\": t} as 'a;\n")
	b.WriteString("external getFragmentRef: fragmentRefSelector('a) => fragmentRef = \"%identity\";")
	return b.String()
}

// trailerSection prints the operation descriptor constant.
func trailerSection(op ir.Operation) string {
	switch op.Kind {
	case ir.KindQuery:
		return "let operationType = ReasonRelay.Query(\"" + op.Name + "\");"
	case ir.KindMutation:
		return "let operationType = ReasonRelay.Mutation(\"" + op.Name + "\");"
	case ir.KindSubscription:
		return "let operationType = ReasonRelay.Subscription(\"" + op.Name + "\");"
	default:
		return "let operationType = ReasonRelay.Fragment(\"" + op.Name + "\");"
	}
}
