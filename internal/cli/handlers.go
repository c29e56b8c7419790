package cli

import (
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/mulholio/reason-relay/pkg/config"
	"github.com/mulholio/reason-relay/pkg/ir"
)

var (
	operationKindRe = regexp.MustCompile(`"operationKind"\s*:\s*"(query|mutation|subscription)"`)
	pluralRe        = regexp.MustCompile(`"plural"\s*:\s*true`)
	relayPluralRe   = regexp.MustCompile(`@relay\(\s*plural:\s*true\s*\)`)
)

// inferOperation classifies an artifact from the markers the upstream
// compiler leaves in it. Anything without an operationKind is a fragment.
func inferOperation(name, content string) ir.Operation {
	if m := operationKindRe.FindStringSubmatch(content); m != nil {
		switch m[1] {
		case "mutation":
			return ir.Mutation(name)
		case "subscription":
			return ir.Subscription(name)
		default:
			return ir.Query(name)
		}
	}
	plural := pluralRe.MatchString(content) || relayPluralRe.MatchString(content)
	return ir.Fragment(name, plural)
}

// operationName derives the operation name from an artifact filename by
// stripping the configured suffix.
func operationName(path, suffix string) string {
	return strings.TrimSuffix(filepath.Base(path), suffix)
}

// outputPath places the generated source next to its artifact, or under the
// configured output directory when one is set.
func outputPath(cfg *config.Config, artifact string) string {
	name := operationName(artifact, cfg.Suffix) + "_graphql.re"
	dir := filepath.Dir(artifact)
	if cfg.OutDir != "" {
		dir = cfg.OutDir
	}
	return filepath.Join(dir, name)
}

// findArtifacts walks dir for files ending in suffix, sorted for
// deterministic processing order.
func findArtifacts(dir, suffix string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), suffix) {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(out)
	return out, nil
}

// utility
func absPath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	abs, _ := filepath.Abs(p)
	return abs
}
