package flowast

import "testing"

func parseOne(t *testing.T, src string) TypeAlias {
	t.Helper()
	file := Parse(src)
	if len(file.Errors) > 0 {
		t.Fatalf("unexpected parse errors: %v", file.Errors)
	}
	if len(file.Aliases) != 1 {
		t.Fatalf("got %d aliases, want 1", len(file.Aliases))
	}
	return file.Aliases[0]
}

func TestParseExportedAlias(t *testing.T) {
	alias := parseOne(t, `export type Foo = string;`)
	if alias.Name != "Foo" {
		t.Errorf("name = %q, want Foo", alias.Name)
	}
	if !alias.Exported {
		t.Error("alias should be exported")
	}
	if alias.Right.Kind != KindString {
		t.Errorf("kind = %q, want string", alias.Right.Kind)
	}
}

func TestParseBareAlias(t *testing.T) {
	alias := parseOne(t, `type Bar = number;`)
	if alias.Name != "Bar" {
		t.Errorf("name = %q, want Bar", alias.Name)
	}
	if alias.Exported {
		t.Error("alias should not be exported")
	}
	if alias.Right.Kind != KindNumber {
		t.Errorf("kind = %q, want number", alias.Right.Kind)
	}
}

func TestParseExactObject(t *testing.T) {
	alias := parseOne(t, `export type T = {|
  +id: string,
  +completed: ?boolean,
  count?: number,
|};`)
	obj := alias.Right
	if obj.Kind != KindObject {
		t.Fatalf("kind = %q, want object", obj.Kind)
	}
	if !obj.Exact {
		t.Error("object should be exact")
	}
	if len(obj.Properties) != 3 {
		t.Fatalf("got %d properties, want 3", len(obj.Properties))
	}

	id := obj.Properties[0]
	if id.Key != "id" || !id.ReadOnly || id.Optional {
		t.Errorf("id property = %+v", id)
	}
	if id.Value.Kind != KindString {
		t.Errorf("id kind = %q, want string", id.Value.Kind)
	}

	completed := obj.Properties[1]
	if completed.Value.Kind != KindNullable {
		t.Fatalf("completed kind = %q, want nullable", completed.Value.Kind)
	}
	if completed.Value.Inner.Kind != KindBoolean {
		t.Errorf("completed inner = %q, want boolean", completed.Value.Inner.Kind)
	}

	count := obj.Properties[2]
	if !count.Optional || count.ReadOnly {
		t.Errorf("count property = %+v", count)
	}
}

func TestParseInexactObject(t *testing.T) {
	alias := parseOne(t, `type T = { a: string };`)
	if alias.Right.Kind != KindObject {
		t.Fatalf("kind = %q, want object", alias.Right.Kind)
	}
	if alias.Right.Exact {
		t.Error("object should not be exact")
	}
}

func TestParseArrayShorthand(t *testing.T) {
	alias := parseOne(t, `type T = string[];`)
	if alias.Right.Kind != KindArray {
		t.Fatalf("kind = %q, want array", alias.Right.Kind)
	}
	if alias.Right.Inner.Kind != KindString {
		t.Errorf("inner = %q, want string", alias.Right.Inner.Kind)
	}
}

func TestParseReadOnlyArrayGeneric(t *testing.T) {
	alias := parseOne(t, `type T = $ReadOnlyArray<?{| +id: string |}>;`)
	gen := alias.Right
	if gen.Kind != KindGeneric || gen.Name != "$ReadOnlyArray" {
		t.Fatalf("got kind=%q name=%q", gen.Kind, gen.Name)
	}
	if len(gen.TypeArgs) != 1 {
		t.Fatalf("got %d type args, want 1", len(gen.TypeArgs))
	}
	if gen.TypeArgs[0].Kind != KindNullable {
		t.Errorf("arg kind = %q, want nullable", gen.TypeArgs[0].Kind)
	}
}

func TestParseStringLiteralUnion(t *testing.T) {
	alias := parseOne(t, `export type Status = "ACTIVE" | "INACTIVE" | "%future added value";`)
	u := alias.Right
	if u.Kind != KindUnion {
		t.Fatalf("kind = %q, want union", u.Kind)
	}
	if len(u.Members) != 3 {
		t.Fatalf("got %d members, want 3", len(u.Members))
	}
	want := []string{"ACTIVE", "INACTIVE", "%future added value"}
	for i, m := range u.Members {
		if m.Kind != KindStringLiteral || m.Literal != want[i] {
			t.Errorf("member %d = kind=%q literal=%q", i, m.Kind, m.Literal)
		}
	}
}

func TestParseLeadingPipeUnion(t *testing.T) {
	alias := parseOne(t, `type T =
  | "A"
  | "B";`)
	if alias.Right.Kind != KindUnion {
		t.Fatalf("kind = %q, want union", alias.Right.Kind)
	}
	if len(alias.Right.Members) != 2 {
		t.Errorf("got %d members, want 2", len(alias.Right.Members))
	}
}

func TestParseIntersection(t *testing.T) {
	alias := parseOne(t, `type T = {| +a: string |} & {| +b: number |};`)
	if alias.Right.Kind != KindIntersection {
		t.Fatalf("kind = %q, want intersection", alias.Right.Kind)
	}
	if len(alias.Right.Members) != 2 {
		t.Errorf("got %d members, want 2", len(alias.Right.Members))
	}
}

func TestParseDotQualifiedGeneric(t *testing.T) {
	alias := parseOne(t, `type T = Module.Inner<string>;`)
	if alias.Right.Kind != KindGeneric {
		t.Fatalf("kind = %q, want generic", alias.Right.Kind)
	}
	if alias.Right.Name != "Module.Inner" {
		t.Errorf("name = %q, want Module.Inner", alias.Right.Name)
	}
}

func TestParseSpreadSkipped(t *testing.T) {
	alias := parseOne(t, `type T = {| ...Other, +a: string |};`)
	obj := alias.Right
	if obj.Kind != KindObject {
		t.Fatalf("kind = %q, want object", obj.Kind)
	}
	if len(obj.Properties) != 1 || obj.Properties[0].Key != "a" {
		t.Errorf("properties = %+v", obj.Properties)
	}
}

func TestParseSkipsSurroundingJS(t *testing.T) {
	src := `/* @flow */
'use strict';

const node = require('./node');

export type Foo = {|
  +id: string,
|};

module.exports = node;
`
	file := Parse(src)
	if len(file.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", file.Errors)
	}
	if len(file.Aliases) != 1 || file.Aliases[0].Name != "Foo" {
		t.Fatalf("aliases = %+v", file.Aliases)
	}
}

func TestParseMultipleAliasesInOrder(t *testing.T) {
	src := `export type AQueryVariables = {| +first: ?number |};
export type AQueryResponse = {| +ok: boolean |};
export type AQuery = {|
  variables: AQueryVariables,
  response: AQueryResponse,
|};`
	file := Parse(src)
	if len(file.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", file.Errors)
	}
	want := []string{"AQueryVariables", "AQueryResponse", "AQuery"}
	if len(file.Aliases) != len(want) {
		t.Fatalf("got %d aliases, want %d", len(file.Aliases), len(want))
	}
	for i, name := range want {
		if file.Aliases[i].Name != name {
			t.Errorf("alias %d = %q, want %q", i, file.Aliases[i].Name, name)
		}
	}
}

func TestParseErrorRecovery(t *testing.T) {
	src := `export type Broken = {| +a: |};
export type Fine = string;`
	file := Parse(src)
	if len(file.Errors) == 0 {
		t.Fatal("expected parse errors")
	}
	var fine bool
	for _, a := range file.Aliases {
		if a.Name == "Fine" && a.Right != nil && a.Right.Kind == KindString {
			fine = true
		}
	}
	if !fine {
		t.Error("parser did not recover to the next alias")
	}
}

func TestParseNullableOverArray(t *testing.T) {
	alias := parseOne(t, `type T = ?string[];`)
	if alias.Right.Kind != KindNullable {
		t.Fatalf("kind = %q, want nullable", alias.Right.Kind)
	}
	if alias.Right.Inner.Kind != KindArray {
		t.Errorf("inner = %q, want array", alias.Right.Inner.Kind)
	}
}

func TestParseNamedScalars(t *testing.T) {
	tests := []struct {
		src  string
		kind TypeKind
	}{
		{`type T = string;`, KindString},
		{`type T = number;`, KindNumber},
		{`type T = boolean;`, KindBoolean},
		{`type T = true;`, KindBooleanLiteral},
		{`type T = false;`, KindBooleanLiteral},
	}
	for _, tt := range tests {
		alias := parseOne(t, tt.src)
		if alias.Right.Kind != tt.kind {
			t.Errorf("%s: kind = %q, want %q", tt.src, alias.Right.Kind, tt.kind)
		}
	}
}
