package generator

import (
	"github.com/mulholio/reason-relay/pkg/config"
	"github.com/mulholio/reason-relay/pkg/ir"
)

// PrintFromFlowTypes is a convenience function for printing one artifact with
// the default reason printer.
func PrintFromFlowTypes(content string, op ir.Operation, printCfg config.PrintConfig) (string, error) {
	service := NewService()
	return service.PrintArtifact("reason", content, op, printCfg)
}

// PrintFragment prints a fragment artifact. Plural marks fragments defined
// over @relay(plural: true).
func PrintFragment(content, name string, plural bool, printCfg config.PrintConfig) (string, error) {
	return PrintFromFlowTypes(content, ir.Fragment(name, plural), printCfg)
}

// PrintQuery prints a query artifact.
func PrintQuery(content, name string, printCfg config.PrintConfig) (string, error) {
	return PrintFromFlowTypes(content, ir.Query(name), printCfg)
}

// PrintMutation prints a mutation artifact.
func PrintMutation(content, name string, printCfg config.PrintConfig) (string, error) {
	return PrintFromFlowTypes(content, ir.Mutation(name), printCfg)
}

// PrintSubscription prints a subscription artifact.
func PrintSubscription(content, name string, printCfg config.PrintConfig) (string, error) {
	return PrintFromFlowTypes(content, ir.Subscription(name), printCfg)
}
