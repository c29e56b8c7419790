package reason

import (
	"testing"

	"github.com/mulholio/reason-relay/pkg/ir"
)

func TestFieldName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"id", "id"},
		{"type", "type_"},
		{"and", "and_"},
		{"switch", "switch_"},
		{"typename", "typename"},
	}
	for _, tt := range tests {
		if got := fieldName(tt.input); got != tt.expected {
			t.Errorf("fieldName(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestUnionName(t *testing.T) {
	if got := unionName([]string{"owner", "response"}); got != "response_owner" {
		t.Errorf("got %q, want response_owner", got)
	}
	if got := unionName([]string{"fragment"}); got != "fragment" {
		t.Errorf("got %q, want fragment", got)
	}
}

func TestHasSuffix(t *testing.T) {
	tests := []struct {
		path, suffix []string
		expected     bool
	}{
		{[]string{"user", "owner", "response"}, []string{"owner", "response"}, true},
		{[]string{"owner", "response"}, []string{"owner", "response"}, true},
		{[]string{"owner", "response"}, []string{"user", "owner", "response"}, false},
		{[]string{"user", "owner", "response"}, []string{"owner", "variables"}, false},
	}
	for _, tt := range tests {
		if got := hasSuffix(tt.path, tt.suffix); got != tt.expected {
			t.Errorf("hasSuffix(%v, %v) = %v, want %v", tt.path, tt.suffix, got, tt.expected)
		}
	}
}

func TestForceRequired(t *testing.T) {
	shape := ir.ObjectShape{
		AtPath: []string{"variables"},
		Values: []ir.PropEntry{
			ir.Prop("first", ir.PropValue{Nullable: true, Type: ir.PropType{Kind: ir.PropKindScalar, Scalar: ir.ScalarFloat}}),
			ir.Prop("id", ir.PropValue{Nullable: false, Type: ir.PropType{Kind: ir.PropKindScalar, Scalar: ir.ScalarString}}),
		},
	}
	out := forceRequired(shape)
	for _, entry := range out.Values {
		if entry.Value.Nullable {
			t.Errorf("field %q still nullable", entry.Name)
		}
	}
	// The input shape is untouched.
	if !shape.Values[0].Value.Nullable {
		t.Error("source shape was mutated")
	}
}

func TestRecordTextEmptyShape(t *testing.T) {
	n := names{records: map[string]string{}}
	got := n.recordText("variables", ir.ObjectShape{AtPath: []string{"variables"}}, "")
	if got != "type variables;" {
		t.Errorf("got %q, want abstract type", got)
	}
}

func TestTypeTextNullableWrapping(t *testing.T) {
	n := names{records: map[string]string{}}
	v := ir.PropValue{
		Nullable: true,
		Type: ir.PropType{
			Kind: ir.PropKindArray,
			ArrayItem: &ir.PropValue{
				Nullable: true,
				Type:     ir.PropType{Kind: ir.PropKindScalar, Scalar: ir.ScalarString},
			},
		},
	}
	if got := n.typeText(v); got != "option(array(option(string)))" {
		t.Errorf("got %q", got)
	}
}
