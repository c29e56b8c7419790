// Package reasonrelay generates ReasonML sources from the Flow type
// declarations the Relay compiler emits for GraphQL operations.
//
// This package offers a simple API over the two-phase pipeline: the Flow
// declarations are lowered into an intermediate model, finalized (naming,
// deduplication), and printed as a ReasonML file with converter assets for
// the runtime.
//
// Quick Start:
//
//	import reasonrelay "github.com/mulholio/reason-relay"
//
//	source, err := reasonrelay.PrintQuery(artifactContent, "AppQuery", reasonrelay.PrintConfig{})
//
// For more advanced usage, see the generator package.
package reasonrelay

import (
	"github.com/mulholio/reason-relay/pkg/config"
	"github.com/mulholio/reason-relay/pkg/generator"
	"github.com/mulholio/reason-relay/pkg/ir"
)

// PrintConfig carries the printer options recognized per artifact.
type PrintConfig = config.PrintConfig

// ConnectionConfig names a Relay connection field for the getConnectionNodes
// helper.
type ConnectionConfig = config.ConnectionConfig

// Operation identifies the operation an artifact was compiled from.
type Operation = ir.Operation

// PrintFromFlowTypes prints the ReasonML source for one artifact.
//
// Example:
//
//	source, err := reasonrelay.PrintFromFlowTypes(content, reasonrelay.Fragment("TodoItem_todo", false), reasonrelay.PrintConfig{})
func PrintFromFlowTypes(content string, op Operation, cfg PrintConfig) (string, error) {
	return generator.PrintFromFlowTypes(content, op, cfg)
}

// PrintFragment prints a fragment artifact. Plural marks fragments defined
// over @relay(plural: true).
func PrintFragment(content, name string, plural bool, cfg PrintConfig) (string, error) {
	return generator.PrintFragment(content, name, plural, cfg)
}

// PrintQuery prints a query artifact.
func PrintQuery(content, name string, cfg PrintConfig) (string, error) {
	return generator.PrintQuery(content, name, cfg)
}

// PrintMutation prints a mutation artifact.
func PrintMutation(content, name string, cfg PrintConfig) (string, error) {
	return generator.PrintMutation(content, name, cfg)
}

// PrintSubscription prints a subscription artifact.
func PrintSubscription(content, name string, cfg PrintConfig) (string, error) {
	return generator.PrintSubscription(content, name, cfg)
}

// Fragment constructs a fragment operation descriptor.
func Fragment(name string, plural bool) Operation {
	return ir.Fragment(name, plural)
}

// Query constructs a query operation descriptor.
func Query(name string) Operation {
	return ir.Query(name)
}

// Mutation constructs a mutation operation descriptor.
func Mutation(name string) Operation {
	return ir.Mutation(name)
}

// Subscription constructs a subscription operation descriptor.
func Subscription(name string) Operation {
	return ir.Subscription(name)
}
