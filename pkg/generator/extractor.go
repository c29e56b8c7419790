package generator

import (
	"strings"

	"github.com/mulholio/reason-relay/pkg/flowast"
	"github.com/mulholio/reason-relay/pkg/ir"
	"github.com/mulholio/reason-relay/pkg/utils"
)

const futureAddedValue = "%future added value"

// BuildIntermediate classifies the top-level type aliases of a parsed
// artifact into the intermediate state: operation roots, named objects and
// enums. The property trees below the roots are mapped in the same pass.
func BuildIntermediate(file *flowast.File, op ir.Operation) (ir.IntermediateState, error) {
	state := ir.IntermediateState{}

	// Enums first so that property mapping can resolve references to them
	// regardless of alias order.
	for _, alias := range file.Aliases {
		if e, ok := enumFromAlias(alias); ok {
			state.Enums = append(state.Enums, e)
		}
	}

	for _, alias := range file.Aliases {
		if _, ok := enumFromAlias(alias); ok {
			continue
		}
		var err error
		if op.Kind == ir.KindFragment {
			err = classifyFragmentAlias(&state, op, alias)
		} else {
			err = classifyOperationAlias(&state, op, alias)
		}
		if err != nil {
			return ir.IntermediateState{}, err
		}
	}

	return state, nil
}

// enumFromAlias recognizes `type E = "A" | "B"` aliases. The future-proofing
// literal the upstream compiler appends is dropped.
func enumFromAlias(alias flowast.TypeAlias) (ir.FullEnum, bool) {
	t := alias.Right
	if t == nil {
		return ir.FullEnum{}, false
	}
	members := t.Members
	if t.Kind == flowast.KindStringLiteral {
		members = []*flowast.Type{t}
	} else if t.Kind != flowast.KindUnion {
		return ir.FullEnum{}, false
	}
	values := make([]string, 0, len(members))
	seen := map[string]bool{}
	for _, m := range members {
		if m.Kind != flowast.KindStringLiteral {
			return ir.FullEnum{}, false
		}
		if m.Literal == futureAddedValue || seen[m.Literal] {
			continue
		}
		seen[m.Literal] = true
		values = append(values, m.Literal)
	}
	return ir.FullEnum{Name: alias.Name, Values: values}, true
}

func classifyOperationAlias(state *ir.IntermediateState, op ir.Operation, alias flowast.TypeAlias) error {
	t := alias.Right
	if t == nil || t.Kind != flowast.KindObject {
		return nil
	}
	switch alias.Name {
	case op.Name:
		// The aggregate operation descriptor; nothing to extract from it.
		return nil
	case op.Name + "Variables":
		shape, err := makeObjShape(state, []string{"variables"}, t.Properties)
		if err != nil {
			return err
		}
		state.Variables = &shape
		return nil
	case op.Name + "Response":
		shape, err := makeObjShape(state, []string{"response"}, t.Properties)
		if err != nil {
			return err
		}
		state.Response = &shape
		return nil
	default:
		return appendNamedObject(state, alias.Name, t)
	}
}

func classifyFragmentAlias(state *ir.IntermediateState, op ir.Operation, alias flowast.TypeAlias) error {
	t := alias.Right
	if t == nil {
		return nil
	}
	if alias.Name == op.Name {
		obj, plural := fragmentBody(t)
		if obj != nil {
			shape, err := makeObjShape(state, []string{"fragment"}, obj.Properties)
			if err != nil {
				return err
			}
			state.Fragment = &ir.FragmentDef{
				Name:       op.Name,
				Plural:     op.Plural || plural,
				Definition: shape,
			}
			return nil
		}
	}
	if !strings.Contains(alias.Name, "$") && t.Kind == flowast.KindObject {
		return appendNamedObject(state, alias.Name, t)
	}
	return nil
}

// fragmentBody unwraps a fragment alias body: either an object literal or
// $ReadOnlyArray<object> for plural fragments.
func fragmentBody(t *flowast.Type) (*flowast.Type, bool) {
	if t.Kind == flowast.KindObject {
		return t, false
	}
	if t.Kind == flowast.KindGeneric && t.Name == "$ReadOnlyArray" && len(t.TypeArgs) == 1 {
		if inner := t.TypeArgs[0]; inner.Kind == flowast.KindObject {
			return inner, true
		}
	}
	return nil, false
}

func appendNamedObject(state *ir.IntermediateState, name string, t *flowast.Type) error {
	shape, err := makeObjShape(state, []string{"objects"}, t.Properties)
	if err != nil {
		return err
	}
	state.Objects = append(state.Objects, ir.Obj{
		OriginalTypeName: name,
		Definition:       shape,
	})
	return nil
}

// mapObjProp converts one AST type node into a property value. The optional
// flag carries the `?:` marker of the enclosing property; a nullable wrapper
// in the type forces it.
func mapObjProp(state *ir.IntermediateState, optional bool, path []string, t *flowast.Type) (ir.PropValue, error) {
	if t == nil {
		return scalar(optional, ir.ScalarAny), nil
	}
	switch t.Kind {
	case flowast.KindString, flowast.KindStringLiteral:
		return scalar(optional, ir.ScalarString), nil

	case flowast.KindNumber, flowast.KindNumberLiteral:
		return scalar(optional, ir.ScalarFloat), nil

	case flowast.KindBoolean, flowast.KindBooleanLiteral:
		return scalar(optional, ir.ScalarBoolean), nil

	case flowast.KindNullable:
		return mapObjProp(state, true, path, t.Inner)

	case flowast.KindArray:
		return mapArray(state, optional, path, t.Inner)

	case flowast.KindObject:
		shape, err := makeObjShape(state, path, t.Properties)
		if err != nil {
			return ir.PropValue{}, err
		}
		return ir.PropValue{
			Nullable: optional,
			Type:     ir.PropType{Kind: ir.PropKindObject, Object: &shape},
		}, nil

	case flowast.KindUnion:
		if allObjects(t.Members) {
			u, err := makeUnion(state, path, t.Members)
			if err != nil {
				return ir.PropValue{}, err
			}
			return ir.PropValue{
				Nullable: optional,
				Type:     ir.PropType{Kind: ir.PropKindUnion, Union: &u},
			}, nil
		}
		return scalar(optional, ir.ScalarAny), nil

	case flowast.KindGeneric:
		if t.Name == "$ReadOnlyArray" && len(t.TypeArgs) == 1 {
			return mapArray(state, optional, path, t.TypeArgs[0])
		}
		if !strings.Contains(t.Name, ".") {
			if e := findEnum(state, t.Name); e != nil {
				return ir.PropValue{
					Nullable: optional,
					Type:     ir.PropType{Kind: ir.PropKindEnum, Enum: e},
				}, nil
			}
		}
		return ir.PropValue{
			Nullable: optional,
			Type:     ir.PropType{Kind: ir.PropKindTypeReference, TypeRef: unmask(t.Name)},
		}, nil

	default:
		return scalar(optional, ir.ScalarAny), nil
	}
}

func scalar(nullable bool, kind ir.ScalarKind) ir.PropValue {
	return ir.PropValue{
		Nullable: nullable,
		Type:     ir.PropType{Kind: ir.PropKindScalar, Scalar: kind},
	}
}

func mapArray(state *ir.IntermediateState, optional bool, path []string, el *flowast.Type) (ir.PropValue, error) {
	item, err := mapObjProp(state, false, path, el)
	if err != nil {
		return ir.PropValue{}, err
	}
	return ir.PropValue{
		Nullable: optional,
		Type:     ir.PropType{Kind: ir.PropKindArray, ArrayItem: &item},
	}, nil
}

func allObjects(members []*flowast.Type) bool {
	if len(members) < 2 {
		return false
	}
	for _, m := range members {
		if m.Kind != flowast.KindObject {
			return false
		}
	}
	return true
}

func findEnum(state *ir.IntermediateState, name string) *ir.FullEnum {
	for i := range state.Enums {
		if state.Enums[i].Name == name {
			return &state.Enums[i]
		}
	}
	return nil
}

// unmask mirrors referenced type names verbatim into the output. The only
// documented transformations live on the fragment-ref suffixes handled in
// makeObjShape.
func unmask(name string) string {
	return name
}

// makeObjShape walks a property list once, producing the in-order value
// list. Compiler-internal `$`-prefixed keys are discarded, except
// $fragmentRefs which flattens into fragment reference entries.
func makeObjShape(state *ir.IntermediateState, path []string, props []flowast.Property) (ir.ObjectShape, error) {
	shape := ir.ObjectShape{AtPath: path}
	for _, p := range props {
		if p.Key == "$fragmentRefs" {
			shape.Values = append(shape.Values, fragmentRefs(p.Value)...)
			continue
		}
		if strings.HasPrefix(p.Key, "$") {
			continue
		}
		value, err := mapObjProp(state, p.Optional, prepend(p.Key, path), p.Value)
		if err != nil {
			return ir.ObjectShape{}, err
		}
		shape.Values = append(shape.Values, ir.Prop(p.Key, value))
	}
	return shape, nil
}

// fragmentRefs flattens a $fragmentRefs initializer: a single generic or an
// intersection of generics, one reference per generic.
func fragmentRefs(t *flowast.Type) []ir.PropEntry {
	if t == nil {
		return nil
	}
	switch t.Kind {
	case flowast.KindGeneric:
		return []ir.PropEntry{ir.FragmentRef(strings.TrimSuffix(t.Name, "$ref"))}
	case flowast.KindIntersection:
		var out []ir.PropEntry
		for _, m := range t.Members {
			out = append(out, fragmentRefs(m)...)
		}
		return out
	default:
		return nil
	}
}

// makeUnion builds a polymorphic union from two or more object literal
// members, discriminated by their __typename string literal.
func makeUnion(state *ir.IntermediateState, path []string, members []*flowast.Type) (ir.Union, error) {
	union := ir.Union{AtPath: path}
	for _, m := range members {
		typename, rest, found := splitTypename(m.Properties)
		if !found {
			return ir.Union{}, &MissingTypenameError{Path: path}
		}
		if typename == "%other" {
			continue
		}
		name := utils.Capitalize(typename)
		shape, err := makeObjShape(state, prepend(utils.Uncapitalize(name), path), rest)
		if err != nil {
			return ir.Union{}, err
		}
		union.Members = append(union.Members, ir.UnionMember{Name: name, Shape: shape})
	}
	return union, nil
}

// splitTypename pulls the __typename literal out of a member's property
// list, returning the remaining properties.
func splitTypename(props []flowast.Property) (string, []flowast.Property, bool) {
	typename := ""
	found := false
	rest := make([]flowast.Property, 0, len(props))
	for _, p := range props {
		if p.Key == "__typename" && !found {
			if p.Value != nil && p.Value.Kind == flowast.KindStringLiteral {
				typename = p.Value.Literal
				found = true
				continue
			}
		}
		rest = append(rest, p)
	}
	return typename, rest, found
}

func prepend(head string, path []string) []string {
	out := make([]string, 0, len(path)+1)
	out = append(out, head)
	out = append(out, path...)
	return out
}
