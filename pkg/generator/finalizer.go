package generator

import (
	"github.com/iancoleman/strcase"

	"github.com/mulholio/reason-relay/pkg/ir"
	"github.com/mulholio/reason-relay/pkg/utils"
)

// IntermediateToFull turns the raw extracted state into the finalized state
// the printer consumes: inline objects and unions hoisted out of the
// property trees, anonymous records named from their paths, enums unique by
// name.
func IntermediateToFull(inter ir.IntermediateState) (ir.FullState, error) {
	full := ir.FullState{
		Variables: inter.Variables,
		Response:  inter.Response,
		Fragment:  inter.Fragment,
	}
	full.Enums = append(full.Enums, inter.Enums...)

	// Named input objects predate anything discovered during traversal.
	for _, obj := range inter.Objects {
		full.Objects = append(full.Objects, ir.FinalizedObj{
			OriginalTypeName: obj.OriginalTypeName,
			RecordName:       strcase.ToLowerCamel(obj.OriginalTypeName),
			AtPath:           []string{"root"},
			Definition:       obj.Definition,
			FoundInUnion:     obj.FoundInUnion,
		})
		collectShape(&full, obj.Definition, false)
	}

	if inter.Variables != nil {
		collectShape(&full, *inter.Variables, false)
	}
	if inter.Response != nil {
		collectShape(&full, *inter.Response, false)
	}
	if inter.Fragment != nil {
		collectShape(&full, inter.Fragment.Definition, false)
	}

	if err := assignRecordNames(&full); err != nil {
		return ir.FullState{}, err
	}
	full.Enums = dedupeEnums(full.Enums)
	return full, nil
}

// collectShape records every enum, union and inline object reachable from a
// shape's property tree, in traversal order (parents before children). The
// printer reverses this order on emit so dependencies precede dependents.
func collectShape(full *ir.FullState, shape ir.ObjectShape, inUnion bool) {
	for _, entry := range shape.Values {
		if entry.Kind != ir.EntryProp {
			continue
		}
		collectValue(full, entry.Value, inUnion)
	}
}

func collectValue(full *ir.FullState, value ir.PropValue, inUnion bool) {
	switch value.Type.Kind {
	case ir.PropKindEnum:
		if value.Type.Enum != nil {
			full.Enums = append(full.Enums, *value.Type.Enum)
		}
	case ir.PropKindUnion:
		if value.Type.Union != nil {
			full.Unions = append(full.Unions, *value.Type.Union)
			for _, member := range value.Type.Union.Members {
				full.Objects = append(full.Objects, ir.FinalizedObj{
					AtPath:       member.Shape.AtPath,
					Definition:   member.Shape,
					FoundInUnion: true,
				})
				collectShape(full, member.Shape, true)
			}
		}
	case ir.PropKindObject:
		if value.Type.Object != nil {
			full.Objects = append(full.Objects, ir.FinalizedObj{
				AtPath:       value.Type.Object.AtPath,
				Definition:   *value.Type.Object,
				FoundInUnion: inUnion,
			})
			collectShape(full, *value.Type.Object, inUnion)
		}
	case ir.PropKindArray:
		if value.Type.ArrayItem != nil {
			collectValue(full, *value.Type.ArrayItem, inUnion)
		}
	}
}

// assignRecordNames synthesizes a unique record name for every object that
// did not come from a named alias.
func assignRecordNames(full *ir.FullState) error {
	used := map[string]bool{}
	for _, obj := range full.Objects {
		if obj.RecordName != "" {
			used[obj.RecordName] = true
		}
	}
	for i := range full.Objects {
		obj := &full.Objects[i]
		if obj.RecordName != "" {
			continue
		}
		name, err := utils.ObjNameFromPath("", used, obj.AtPath)
		if err != nil {
			return &EmptyPathError{RecordFor: obj.OriginalTypeName}
		}
		name = strcase.ToLowerCamel(name)
		for n := 1; used[name]; n++ {
			name = strcase.ToLowerCamel(name) + "_" + itoa(n)
		}
		used[name] = true
		obj.RecordName = name
	}
	return nil
}

func itoa(n int) string {
	digits := "0123456789"
	if n < 10 {
		return string(digits[n])
	}
	return itoa(n/10) + string(digits[n%10])
}

// dedupeEnums keeps the first occurrence of each enum name.
func dedupeEnums(enums []ir.FullEnum) []ir.FullEnum {
	seen := map[string]bool{}
	out := make([]ir.FullEnum, 0, len(enums))
	for _, e := range enums {
		if seen[e.Name] {
			continue
		}
		seen[e.Name] = true
		out = append(out, e)
	}
	return out
}
