package main

import (
	"os"
	"path/filepath"
	"testing"
)

const manifestFixture = `version: 1
profiles:
  backend:
    modules:
      - roles/code-reviewer
    targets:
      - claude
      - agents
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

func TestRunSyncWritesOutputs(t *testing.T) {
	dir, manifestPath := writeManifest(t)

	err := runSync([]string{
		"-catalog-dir", "",
		"-manifest", manifestPath,
		"-output", dir,
	})
	if err != nil {
		t.Fatalf("expected sync to succeed, got %v", err)
	}

	for _, name := range []string{"CLAUDE.md", "AGENTS.md"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("expected %s to exist: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, ".instructions-manifest.json")); err != nil {
		t.Fatalf("expected sync manifest to exist: %v", err)
	}
}

func TestRunSyncDryRunTouchesNothing(t *testing.T) {
	dir, manifestPath := writeManifest(t)

	err := runSync([]string{
		"-catalog-dir", "",
		"-manifest", manifestPath,
		"-output", dir,
		"-dry-run",
	})
	if err != nil {
		t.Fatalf("expected dry run to succeed, got %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "CLAUDE.md")); !os.IsNotExist(err) {
		t.Fatalf("expected no outputs after dry run, got %v", err)
	}
}

func TestRunSyncSelectsProfiles(t *testing.T) {
	dir, manifestPath := writeManifest(t)

	err := runSync([]string{
		"-catalog-dir", "",
		"-manifest", manifestPath,
		"-output", dir,
		"-profiles", "backend",
	})
	if err != nil {
		t.Fatalf("expected sync to succeed, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "CLAUDE.md")); err != nil {
		t.Fatalf("expected CLAUDE.md to exist: %v", err)
	}
}

func TestRunSyncMissingManifest(t *testing.T) {
	dir := t.TempDir()

	err := runSync([]string{
		"-catalog-dir", "",
		"-manifest", filepath.Join(dir, "missing.yaml"),
		"-output", dir,
	})
	if err == nil {
		t.Fatal("expected missing manifest to fail")
	}
}
