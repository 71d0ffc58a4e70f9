package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const manifestFixture = `version: 1
profiles:
  backend:
    modules:
      - roles/code-reviewer
      - languages/go
    targets:
      - claude
`

func writeManifest(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "instructions.yaml")
	if err := os.WriteFile(manifestPath, []byte(manifestFixture), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return dir, manifestPath
}

func TestRunComposeWritesOutputFile(t *testing.T) {
	dir, manifestPath := writeManifest(t)
	outputPath := filepath.Join(dir, "CLAUDE.md")

	err := runCompose([]string{
		"-catalog-dir", "",
		"-manifest", manifestPath,
		"-profile", "backend",
		"-out", outputPath,
	})
	if err != nil {
		t.Fatalf("expected compose to succeed, got %v", err)
	}

	content, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	if !strings.Contains(string(content), "\n---\n") {
		t.Fatalf("expected default separator between modules, got %q", content)
	}
}

func TestRunComposeRequiresProfile(t *testing.T) {
	_, manifestPath := writeManifest(t)

	err := runCompose([]string{
		"-catalog-dir", "",
		"-manifest", manifestPath,
	})
	if err == nil {
		t.Fatal("expected missing profile flag to fail")
	}
}

func TestRunComposeUnknownProfile(t *testing.T) {
	_, manifestPath := writeManifest(t)

	err := runCompose([]string{
		"-catalog-dir", "",
		"-manifest", manifestPath,
		"-profile", "ghost",
	})
	if err == nil {
		t.Fatal("expected unknown profile to fail")
	}
}

func TestRunComposeSeparatorOverride(t *testing.T) {
	dir, manifestPath := writeManifest(t)
	outputPath := filepath.Join(dir, "out.md")

	err := runCompose([]string{
		"-catalog-dir", "",
		"-manifest", manifestPath,
		"-profile", "backend",
		"-out", outputPath,
		"-separator", "",
	})
	if err != nil {
		t.Fatalf("expected compose to succeed, got %v", err)
	}

	content, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	if strings.Contains(string(content), "\n---\n") {
		t.Fatalf("expected no separator with an explicit empty override, got %q", content)
	}
}
