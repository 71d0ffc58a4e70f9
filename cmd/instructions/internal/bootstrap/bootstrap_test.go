package bootstrap

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
`

func TestBuildModuleEmbeddedOnly(t *testing.T) {
	module, err := BuildModule(Options{
		IncludeEmbedded: true,
	})
	if err != nil {
		t.Fatalf("expected module to build, got %v", err)
	}
	if module.Module == nil {
		t.Fatal("expected a wrapped instructions module")
	}
	if module.Module.Profiles() != nil {
		t.Fatal("expected profiles to be disabled without a manifest")
	}
	if module.Logger == nil {
		t.Fatal("expected a CLI logger")
	}
}

func TestBuildModuleWithManifestEnablesProfiles(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "instructions.yaml")
	if err := os.WriteFile(manifestPath, []byte(manifestFixture), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	module, err := BuildModule(Options{
		IncludeEmbedded: true,
		ManifestPath:    manifestPath,
		OutputRoot:      dir,
		EnableSync:      true,
	})
	if err != nil {
		t.Fatalf("expected module to build, got %v", err)
	}
	if module.Module.Profiles() == nil {
		t.Fatal("expected profiles to be configured")
	}
	if module.Module.Sync() == nil {
		t.Fatal("expected sync to be configured")
	}
}

func TestBuildModuleRejectsBadLogFormat(t *testing.T) {
	_, err := BuildModule(Options{
		IncludeEmbedded: true,
		LogLevel:        "debug",
		LogFormat:       "xml",
	})
	if err == nil {
		t.Fatal("expected invalid log format to fail bootstrap")
	}
}

func TestSplitList(t *testing.T) {
	values := SplitList(" backend, data ,, minimal ")
	if len(values) != 3 {
		t.Fatalf("expected 3 values, got %v", values)
	}
	if values[0] != "backend" || values[1] != "data" || values[2] != "minimal" {
		t.Fatalf("unexpected values: %v", values)
	}
	if SplitList("  ") != nil {
		t.Fatal("expected blank input to return nil")
	}
}
