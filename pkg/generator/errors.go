package generator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mulholio/reason-relay/pkg/flowast"
)

// ErrNoExtractableOperations is returned when an artifact parses but yields
// none of variables/response/fragment.
var ErrNoExtractableOperations = errors.New("no extractable operations found")

// ErrCouldNotMapNumber is reserved for the day Int and Float must be told
// apart; every numeric currently maps to float.
var ErrCouldNotMapNumber = errors.New("could not map number type")

// ParseFailedError reports that the front-end parser returned errors for an
// artifact. The individual errors are preserved so the host can attribute
// them to a source document.
type ParseFailedError struct {
	Errors []flowast.ParseError
}

func (e *ParseFailedError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, pe := range e.Errors {
		msgs[i] = pe.Error()
	}
	return "parse failed: " + strings.Join(msgs, "; ")
}

// MissingTypenameError reports a union member without a __typename string
// literal, which makes the union impossible to discriminate.
type MissingTypenameError struct {
	Path []string
}

func (e *MissingTypenameError) Error() string {
	return fmt.Sprintf("union member at %s has no __typename literal", pathString(e.Path))
}

// EmptyPathError reports that a record name was requested from an empty
// path. This is a naming bug, never an input problem.
type EmptyPathError struct {
	RecordFor string
}

func (e *EmptyPathError) Error() string {
	return "cannot derive a record name from an empty path for " + e.RecordFor
}

// pathString renders a leaf-first path root-first for error messages.
func pathString(path []string) string {
	parts := make([]string, 0, len(path))
	for i := len(path) - 1; i >= 0; i-- {
		parts = append(parts, path[i])
	}
	return strings.Join(parts, ".")
}
