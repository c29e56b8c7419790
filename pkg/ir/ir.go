package ir

// OperationKind identifies the kind of GraphQL operation an artifact was
// compiled from.
type OperationKind string

const (
	KindFragment     OperationKind = "fragment"
	KindQuery        OperationKind = "query"
	KindMutation     OperationKind = "mutation"
	KindSubscription OperationKind = "subscription"
)

// Operation represents a single Relay operation: a fragment, query, mutation
// or subscription, identified by its unqualified name.
type Operation struct {
	Kind OperationKind
	Name string
	// Plural is only meaningful for fragments and marks @relay(plural: true)
	// fragments whose selection is over a list.
	Plural bool
}

// Fragment constructs a fragment operation.
func Fragment(name string, plural bool) Operation {
	return Operation{Kind: KindFragment, Name: name, Plural: plural}
}

// Query constructs a query operation.
func Query(name string) Operation {
	return Operation{Kind: KindQuery, Name: name}
}

// Mutation constructs a mutation operation.
func Mutation(name string) Operation {
	return Operation{Kind: KindMutation, Name: name}
}

// Subscription constructs a subscription operation.
func Subscription(name string) Operation {
	return Operation{Kind: KindSubscription, Name: name}
}

// ScalarKind represents the scalar kinds the target language distinguishes
type ScalarKind string

const (
	ScalarString  ScalarKind = "string"
	ScalarFloat   ScalarKind = "float"
	ScalarBoolean ScalarKind = "boolean"
	ScalarAny     ScalarKind = "any"
)

// PropTypeKind represents the kind of a property type
type PropTypeKind string

const (
	PropKindScalar        PropTypeKind = "scalar"
	PropKindEnum          PropTypeKind = "enum"
	PropKindUnion         PropTypeKind = "union"
	PropKindObject        PropTypeKind = "object"
	PropKindArray         PropTypeKind = "array"
	PropKindTypeReference PropTypeKind = "typeReference"
	PropKindFragmentRef   PropTypeKind = "fragmentRefValue"
)

// PropType models the type of a single extracted property in a
// language-agnostic way. Exactly the fields relevant to Kind are set.
type PropType struct {
	Kind PropTypeKind

	Scalar ScalarKind

	// Enum references an enum declaration by value; dedup happens by name
	// during finalization.
	Enum *FullEnum

	// Union holds an inline polymorphic union
	Union *Union

	// Object holds an inline anonymous record
	Object *ObjectShape

	// Array element; the element carries its own nullability
	ArrayItem *PropValue

	// TypeRef is an opaque nominal type name carried through to output
	TypeRef string

	// FragmentRef is reserved for fragment reference values
	FragmentRef string
}

// PropValue pairs a property type with its nullability.
type PropValue struct {
	Nullable bool
	Type     PropType
}

// PropEntryKind discriminates the members of an ObjectShape value list.
type PropEntryKind string

const (
	EntryProp        PropEntryKind = "prop"
	EntryFragmentRef PropEntryKind = "fragmentRef"
)

// PropEntry is either a named property or a fragment reference carried by an
// object shape. Order of entries is the input order.
type PropEntry struct {
	Kind PropEntryKind

	// Prop
	Name  string
	Value PropValue

	// FragmentRef
	FragmentName string
}

// Prop constructs a named property entry.
func Prop(name string, value PropValue) PropEntry {
	return PropEntry{Kind: EntryProp, Name: name, Value: value}
}

// FragmentRef constructs a fragment reference entry.
func FragmentRef(fragmentName string) PropEntry {
	return PropEntry{Kind: EntryFragmentRef, FragmentName: fragmentName}
}

// ObjectShape represents an extracted object. AtPath is leaf-first: the last
// element is the root anchor ("variables", "response", "fragment", "root",
// "objects").
type ObjectShape struct {
	AtPath []string
	Values []PropEntry
}

// FullEnum represents an extracted enum declaration. Values keep input order.
type FullEnum struct {
	Name   string
	Values []string
}

// UnionMember represents one object member of a polymorphic union. Name is
// the capitalized __typename literal.
type UnionMember struct {
	Name  string
	Shape ObjectShape
}

// Union represents an inline union discriminated by __typename.
type Union struct {
	Members []UnionMember
	AtPath  []string
}

// Obj is the extractor-side representation of an object before finalization.
type Obj struct {
	// OriginalTypeName is set when the object came from a named top-level
	// type alias; empty for anonymous inline objects.
	OriginalTypeName string
	FoundInUnion     bool
	Definition       ObjectShape
}

// FinalizedObj is an object whose record name has been chosen and which is
// ready for emission.
type FinalizedObj struct {
	OriginalTypeName string
	// RecordName is empty until the finalizer assigns one.
	RecordName   string
	AtPath       []string
	Definition   ObjectShape
	FoundInUnion bool
}

// FragmentDef carries the fragment root of an artifact.
type FragmentDef struct {
	Name       string
	Plural     bool
	Definition ObjectShape
}

// IntermediateState is the output of the extractor: raw extracted entities
// before naming and deduplication.
type IntermediateState struct {
	Enums     []FullEnum
	Objects   []Obj
	Variables *ObjectShape
	Response  *ObjectShape
	Fragment  *FragmentDef
}

// Empty reports whether extraction found none of the operation roots.
func (s IntermediateState) Empty() bool {
	return s.Variables == nil && s.Response == nil && s.Fragment == nil
}

// FullState is the output of the finalizer: enums unique by name, unions
// hoisted, objects named and ready for emission.
type FullState struct {
	Enums     []FullEnum
	Unions    []Union
	Objects   []FinalizedObj
	Variables *ObjectShape
	Response  *ObjectShape
	Fragment  *FragmentDef
}
