package reason

import (
	"sort"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/mulholio/reason-relay/pkg/ir"
	"github.com/mulholio/reason-relay/pkg/utils"
)

// direction selects which half of a converter pair the runtime applies: raw
// JSON to typed values, or typed values back to raw JSON.
type direction int

const (
	unwrapDirection direction = iota
	wrapDirection
)

func (d direction) prefix() string {
	if d == wrapDirection {
		return "wrap"
	}
	return "unwrap"
}

// converterState accumulates the per-field instruction table for one root
// plus the converter categories it references.
type converterState struct {
	entries map[string]map[string]any
	enums   map[string]bool
	unions  map[string]bool
}

func newConverterState() *converterState {
	return &converterState{
		entries: map[string]map[string]any{},
		enums:   map[string]bool{},
		unions:  map[string]bool{},
	}
}

// collect walks a shape and records, per dotted field path, which runtime
// conversions the field needs: "n" nullable, "a" array, "na" nullable array
// item, "e" enum category, "u" union category.
func (c *converterState) collect(prefix string, shape ir.ObjectShape) {
	for _, entry := range shape.Values {
		if entry.Kind != ir.EntryProp {
			continue
		}
		key := entry.Name
		if prefix != "" {
			key = prefix + "." + entry.Name
		}
		flags := map[string]any{}
		if entry.Value.Nullable {
			flags["n"] = true
		}
		t := entry.Value.Type
		for t.Kind == ir.PropKindArray && t.ArrayItem != nil {
			flags["a"] = true
			if t.ArrayItem.Nullable {
				flags["na"] = true
			}
			t = t.ArrayItem.Type
		}
		switch t.Kind {
		case ir.PropKindEnum:
			if t.Enum != nil {
				name := "enum_" + t.Enum.Name
				flags["e"] = name
				c.enums[name] = true
			}
		case ir.PropKindUnion:
			if t.Union != nil {
				name := "union_" + unionName(t.Union.AtPath)
				flags["u"] = name
				c.unions[name] = true
				for _, member := range t.Union.Members {
					c.collect(key+"."+utils.Uncapitalize(member.Name), member.Shape)
				}
			}
		case ir.PropKindObject:
			if t.Object != nil {
				c.collect(key, *t.Object)
			}
		}
		if len(flags) > 0 {
			c.entries[key] = flags
		}
	}
}

// converterBlock renders one converter triple: the %raw instruction table,
// the converter map binding categories to wrap/unwrap helpers, and the
// convert function applied by the generated hooks.
func converterBlock(root string, shape ir.ObjectShape, dir direction, sentinel string) (string, error) {
	state := newConverterState()
	state.collect("", shape)

	table := map[string]any{"__root": state.entries}
	raw, err := json.Marshal(table)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("  let " + root + "Converter: Js.Json.t = [%raw {json| " + string(raw) + " |json}];\n")

	categories := make([]string, 0, len(state.enums)+len(state.unions))
	for name := range state.enums {
		categories = append(categories, name)
	}
	for name := range state.unions {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	if len(categories) == 0 {
		b.WriteString("  let " + root + "ConverterMap = ();\n")
	} else {
		b.WriteString("  let " + root + "ConverterMap = {\n")
		for _, category := range categories {
			b.WriteString("    \"" + category + "\": " + dir.prefix() + "_" + category + ",\n")
		}
		b.WriteString("  };\n")
	}

	b.WriteString("  let convert" + utils.Capitalize(root) + " = value =>\n")
	b.WriteString("    value->ReasonRelay.convertObj(" + root + "Converter, " + root + "ConverterMap, " + sentinel + ");")
	return b.String(), nil
}

// internalSection assembles the Internal module for the roots present in the
// state. Mutations get a second response pass in the wrap direction with a
// null sentinel.
func internalSection(state ir.FullState, op ir.Operation) (string, error) {
	var blocks []string
	add := func(root string, shape ir.ObjectShape, dir direction, sentinel string) error {
		block, err := converterBlock(root, shape, dir, sentinel)
		if err != nil {
			return err
		}
		blocks = append(blocks, block)
		return nil
	}

	if state.Fragment != nil {
		if err := add("fragment", state.Fragment.Definition, unwrapDirection, "Js.undefined"); err != nil {
			return "", err
		}
	}
	if state.Response != nil {
		if err := add("response", *state.Response, unwrapDirection, "Js.undefined"); err != nil {
			return "", err
		}
		if op.Kind == ir.KindMutation {
			if err := add("wrapResponse", *state.Response, wrapDirection, "Js.null"); err != nil {
				return "", err
			}
		}
	}
	if state.Variables != nil {
		if err := add("variables", *state.Variables, wrapDirection, "Js.undefined"); err != nil {
			return "", err
		}
	}

	if len(blocks) == 0 {
		return "", nil
	}
	return "module Internal = {\n" + strings.Join(blocks, "\n\n") + "\n};", nil
}
