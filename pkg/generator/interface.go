package generator

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mulholio/reason-relay/pkg/config"
	"github.com/mulholio/reason-relay/pkg/flowast"
	"github.com/mulholio/reason-relay/pkg/generator/reason"
	"github.com/mulholio/reason-relay/pkg/ir"
)

// Printer defines the interface for artifact printers
type Printer interface {
	// Print renders the finalized state of one artifact as source text
	Print(state ir.FullState, op ir.Operation, cfg config.PrintConfig) (string, error)
	// GetType returns the type identifier for this printer (e.g., "reason")
	GetType() string
}

// Registry manages available printers
type Registry struct {
	printers map[string]Printer
}

// NewRegistry creates a new printer registry
func NewRegistry() *Registry {
	return &Registry{
		printers: make(map[string]Printer),
	}
}

// Register adds a printer to the registry
func (r *Registry) Register(p Printer) {
	r.printers[p.GetType()] = p
}

// Get retrieves a printer by type
func (r *Registry) Get(printerType string) (Printer, bool) {
	p, exists := r.printers[printerType]
	return p, exists
}

// GetAvailableTypes returns all registered printer types
func (r *Registry) GetAvailableTypes() []string {
	types := make([]string, 0, len(r.printers))
	for t := range r.printers {
		types = append(types, t)
	}
	return types
}

// Service provides high-level artifact printing functionality
type Service struct {
	registry *Registry
}

// NewService creates a new printer service with default printers
func NewService() *Service {
	registry := NewRegistry()
	registry.Register(reason.NewPrinter())
	return &Service{
		registry: registry,
	}
}

// NewServiceWithRegistry creates a new printer service with a custom registry
func NewServiceWithRegistry(registry *Registry) *Service {
	return &Service{
		registry: registry,
	}
}

// GetRegistry returns the printer registry
func (s *Service) GetRegistry() *Registry {
	return s.registry
}

// PrintArtifact runs the full pipeline for one artifact: parse the Flow
// source, extract the intermediate state, finalize it, and hand it to the
// named printer.
func (s *Service) PrintArtifact(printerType, content string, op ir.Operation, printCfg config.PrintConfig) (string, error) {
	printer, exists := s.registry.Get(printerType)
	if !exists {
		return "", fmt.Errorf("unsupported printer type: %s", printerType)
	}

	file := flowast.Parse(content)
	if len(file.Errors) > 0 {
		log.Warn().Str("operation", op.Name).Int("errors", len(file.Errors)).Msg("artifact did not parse cleanly")
		return "", &ParseFailedError{Errors: file.Errors}
	}

	inter, err := BuildIntermediate(file, op)
	if err != nil {
		return "", err
	}
	if inter.Empty() {
		return "", ErrNoExtractableOperations
	}

	full, err := IntermediateToFull(inter)
	if err != nil {
		return "", err
	}

	return printer.Print(full, op, printCfg)
}
