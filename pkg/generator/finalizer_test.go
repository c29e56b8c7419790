package generator

import (
	"testing"

	"github.com/mulholio/reason-relay/pkg/flowast"
	"github.com/mulholio/reason-relay/pkg/ir"
)

func finalizeFrom(t *testing.T, src string, op ir.Operation) ir.FullState {
	t.Helper()
	inter := buildFrom(t, src, op)
	full, err := IntermediateToFull(inter)
	if err != nil {
		t.Fatalf("IntermediateToFull: %v", err)
	}
	return full
}

func objByRecordName(t *testing.T, full ir.FullState, name string) ir.FinalizedObj {
	t.Helper()
	for _, obj := range full.Objects {
		if obj.RecordName == name {
			return obj
		}
	}
	names := make([]string, 0, len(full.Objects))
	for _, obj := range full.Objects {
		names = append(names, obj.RecordName)
	}
	t.Fatalf("no object named %q, have %v", name, names)
	return ir.FinalizedObj{}
}

func TestFinalizeRecordNamesFromPaths(t *testing.T) {
	src := `export type AppQueryResponse = {|
  +viewer: ?{|
    +todos: ?{|
      +totalCount: number,
    |},
  |},
|};`
	full := finalizeFrom(t, src, ir.Query("AppQuery"))

	viewer := objByRecordName(t, full, "responseViewer")
	if viewer.FoundInUnion {
		t.Error("viewer should not be marked as union member")
	}
	objByRecordName(t, full, "responseViewerTodos")
}

func TestFinalizeRecordNamesDeterministic(t *testing.T) {
	src := `export type AppQueryResponse = {|
  +viewer: ?{|
    +name: string,
  |},
|};`
	first := finalizeFrom(t, src, ir.Query("AppQuery"))
	second := finalizeFrom(t, src, ir.Query("AppQuery"))

	if len(first.Objects) != len(second.Objects) {
		t.Fatalf("object counts differ: %d vs %d", len(first.Objects), len(second.Objects))
	}
	for i := range first.Objects {
		if first.Objects[i].RecordName != second.Objects[i].RecordName {
			t.Errorf("object %d named %q then %q", i, first.Objects[i].RecordName, second.Objects[i].RecordName)
		}
	}
}

func TestFinalizeNamedInputSeeding(t *testing.T) {
	src := `export type CreateTodoInput = {|
  text: string,
  clientMutationId?: ?string,
|};
export type AddTodoMutationVariables = {|
  input: CreateTodoInput,
|};`
	full := finalizeFrom(t, src, ir.Mutation("AddTodoMutation"))

	input := objByRecordName(t, full, "createTodoInput")
	if input.OriginalTypeName != "CreateTodoInput" {
		t.Errorf("original type name = %q", input.OriginalTypeName)
	}
	if len(input.AtPath) != 1 || input.AtPath[0] != "root" {
		t.Errorf("input path = %v", input.AtPath)
	}
}

func TestFinalizeDedupeEnums(t *testing.T) {
	src := `export type TodoStatus = "ACTIVE" | "INACTIVE";
export type AppQueryResponse = {|
  +status: TodoStatus,
  +previousStatus: ?TodoStatus,
|};
export type AppQueryVariables = {||};`
	full := finalizeFrom(t, src, ir.Query("AppQuery"))

	if len(full.Enums) != 1 {
		t.Fatalf("got %d enums, want 1", len(full.Enums))
	}
	if full.Enums[0].Name != "TodoStatus" {
		t.Errorf("enum name = %q", full.Enums[0].Name)
	}
}

func TestFinalizeUnionHoisting(t *testing.T) {
	src := `export type AppQueryResponse = {|
  +owner: ?({|
    +__typename: "User",
    +name: string,
  |} | {|
    +__typename: "Organization",
    +orgId: string,
  |}),
|};`
	full := finalizeFrom(t, src, ir.Query("AppQuery"))

	if len(full.Unions) != 1 {
		t.Fatalf("got %d unions, want 1", len(full.Unions))
	}

	var unionMembers int
	for _, obj := range full.Objects {
		if obj.FoundInUnion {
			unionMembers++
			if obj.RecordName == "" {
				t.Error("union member object was not named")
			}
		}
	}
	if unionMembers != 2 {
		t.Errorf("got %d union member objects, want 2", unionMembers)
	}
}

func TestFinalizeParentsBeforeChildren(t *testing.T) {
	src := `export type AppQueryResponse = {|
  +viewer: ?{|
    +todos: ?{|
      +totalCount: number,
    |},
  |},
|};`
	full := finalizeFrom(t, src, ir.Query("AppQuery"))

	viewerIdx, todosIdx := -1, -1
	for i, obj := range full.Objects {
		switch obj.RecordName {
		case "responseViewer":
			viewerIdx = i
		case "responseViewerTodos":
			todosIdx = i
		}
	}
	if viewerIdx == -1 || todosIdx == -1 {
		t.Fatal("expected both nested objects")
	}
	if viewerIdx > todosIdx {
		t.Error("parent should be collected before its child")
	}
}

func TestFinalizeEmptyState(t *testing.T) {
	file := flowast.Parse(`const nothing = true;`)
	inter, err := BuildIntermediate(file, ir.Query("AppQuery"))
	if err != nil {
		t.Fatalf("BuildIntermediate: %v", err)
	}
	full, err := IntermediateToFull(inter)
	if err != nil {
		t.Fatalf("IntermediateToFull: %v", err)
	}
	if full.Variables != nil || full.Response != nil || full.Fragment != nil {
		t.Error("empty input should finalize to empty roots")
	}
}
