package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reasonrelay.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
artifactsDir: ./src/__generated__
outDir: ./src/generated
suffix: _graphql.js
print:
  connection:
    atObjectPath: [response, viewer, todos]
    fieldName: todos
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !filepath.IsAbs(cfg.ArtifactsDir) {
		t.Errorf("artifactsDir not absolutized: %q", cfg.ArtifactsDir)
	}
	if !filepath.IsAbs(cfg.OutDir) {
		t.Errorf("outDir not absolutized: %q", cfg.OutDir)
	}
	if cfg.Suffix != "_graphql.js" {
		t.Errorf("suffix = %q", cfg.Suffix)
	}
	conn := cfg.Print.Connection
	if conn == nil || conn.FieldName != "todos" || len(conn.AtObjectPath) != 3 {
		t.Errorf("connection = %+v", conn)
	}
}

func TestLoadDefaultsSuffix(t *testing.T) {
	path := writeConfig(t, `artifactsDir: ./artifacts`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Suffix != "_graphql.js" {
		t.Errorf("suffix = %q, want default", cfg.Suffix)
	}
}

func TestLoadMissingArtifactsDir(t *testing.T) {
	path := writeConfig(t, `suffix: _graphql.js`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for missing artifactsDir")
	}
}

func TestLoadIncompleteConnection(t *testing.T) {
	path := writeConfig(t, `
artifactsDir: ./artifacts
print:
  connection:
    fieldName: todos
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for connection without atObjectPath")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/no/such/reasonrelay.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
