package targets

import (
	"context"
	"crypto/sha256"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-instructions/pkg/interfaces"
)

type stubComposer struct {
	content  map[string][]byte
	composed int
	failWith error
}

func (s *stubComposer) Compose(ctx context.Context, req interfaces.CompositionRequest) (*interfaces.ComposedDocument, error) {
	s.composed++
	if s.failWith != nil {
		return nil, s.failWith
	}
	if len(req.Modules) == 0 {
		return nil, errors.New("stub: empty request")
	}
	content, ok := s.content[req.Modules[0].String()]
	if !ok {
		return nil, errors.New("stub: unknown module " + req.Modules[0].String())
	}
	sum := sha256.Sum256(content)
	return &interfaces.ComposedDocument{
		ID:         uuid.New(),
		Modules:    req.Modules,
		Content:    content,
		Checksum:   sum[:],
		ComposedAt: time.Now().UTC(),
	}, nil
}

type stubProfiles struct {
	profiles []*interfaces.Profile
}

func (s *stubProfiles) Profile(name string) (*interfaces.Profile, error) {
	for _, profile := range s.profiles {
		if profile.Name == name {
			return profile, nil
		}
	}
	return nil, errors.New("stub: profile not found: " + name)
}

func (s *stubProfiles) Profiles() []*interfaces.Profile {
	return s.profiles
}

func backendProfile(targets ...string) *interfaces.Profile {
	return &interfaces.Profile{
		Name: "backend",
		Modules: []interfaces.ModuleRef{
			{Category: interfaces.CategoryRole, Name: "code-reviewer"},
		},
		Targets: targets,
	}
}

func newTestService(t *testing.T, profiles ...*interfaces.Profile) (*Service, *stubComposer, string) {
	t.Helper()
	root := t.TempDir()
	composer := &stubComposer{
		content: map[string][]byte{
			"role/code-reviewer": []byte("# Code Reviewer\nreview carefully\n"),
		},
	}
	svc := NewService(Config{OutputRoot: root}, composer, &stubProfiles{profiles: profiles}, nil)
	return svc, composer, root
}

func TestSyncWritesOutputsAndManifest(t *testing.T) {
	svc, _, root := newTestService(t, backendProfile("claude", "cursor"))

	result, err := svc.Sync(context.Background(), interfaces.SyncRequest{})
	if err != nil {
		t.Fatalf("expected sync to succeed, got %v", err)
	}
	if result.Written() != 2 {
		t.Fatalf("expected 2 written outputs, got %d", result.Written())
	}

	content, err := os.ReadFile(filepath.Join(root, "CLAUDE.md"))
	if err != nil {
		t.Fatalf("expected CLAUDE.md to exist: %v", err)
	}
	if string(content) != "# Code Reviewer\nreview carefully\n" {
		t.Fatalf("unexpected CLAUDE.md content: %q", content)
	}

	if _, err := os.Stat(filepath.Join(root, ".cursor", "rules", "backend.md")); err != nil {
		t.Fatalf("expected cursor output to exist: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, manifestFileName))
	if err != nil {
		t.Fatalf("expected manifest to exist: %v", err)
	}
	manifest, err := parseManifest(data)
	if err != nil {
		t.Fatalf("expected manifest to parse: %v", err)
	}
	if len(manifest.Outputs) != 2 {
		t.Fatalf("expected 2 manifest outputs, got %d", len(manifest.Outputs))
	}
	if manifest.RunID != result.RunID.String() {
		t.Fatalf("expected manifest run id %q, got %q", result.RunID, manifest.RunID)
	}
}

func TestSyncSkipsUnchangedOutputs(t *testing.T) {
	svc, _, _ := newTestService(t, backendProfile("claude"))

	if _, err := svc.Sync(context.Background(), interfaces.SyncRequest{}); err != nil {
		t.Fatalf("first sync failed: %v", err)
	}

	result, err := svc.Sync(context.Background(), interfaces.SyncRequest{})
	if err != nil {
		t.Fatalf("second sync failed: %v", err)
	}
	if result.Written() != 0 {
		t.Fatalf("expected no rewrites, got %d", result.Written())
	}
	if len(result.Outputs) != 1 || result.Outputs[0].Action != interfaces.SyncActionSkipped {
		t.Fatalf("expected skipped output, got %+v", result.Outputs)
	}
}

func TestSyncRewritesDeletedOutput(t *testing.T) {
	svc, _, root := newTestService(t, backendProfile("claude"))

	if _, err := svc.Sync(context.Background(), interfaces.SyncRequest{}); err != nil {
		t.Fatalf("first sync failed: %v", err)
	}
	if err := os.Remove(filepath.Join(root, "CLAUDE.md")); err != nil {
		t.Fatalf("failed to remove output: %v", err)
	}

	result, err := svc.Sync(context.Background(), interfaces.SyncRequest{})
	if err != nil {
		t.Fatalf("second sync failed: %v", err)
	}
	if result.Written() != 1 {
		t.Fatalf("expected deleted output to be rewritten, got %d writes", result.Written())
	}
	if _, err := os.Stat(filepath.Join(root, "CLAUDE.md")); err != nil {
		t.Fatalf("expected CLAUDE.md to be restored: %v", err)
	}
}

func TestSyncForceRewrites(t *testing.T) {
	svc, _, _ := newTestService(t, backendProfile("claude"))

	if _, err := svc.Sync(context.Background(), interfaces.SyncRequest{}); err != nil {
		t.Fatalf("first sync failed: %v", err)
	}

	result, err := svc.Sync(context.Background(), interfaces.SyncRequest{Force: true})
	if err != nil {
		t.Fatalf("forced sync failed: %v", err)
	}
	if result.Written() != 1 {
		t.Fatalf("expected forced rewrite, got %d writes", result.Written())
	}
}

func TestSyncDryRunTouchesNothing(t *testing.T) {
	svc, _, root := newTestService(t, backendProfile("claude"))

	result, err := svc.Sync(context.Background(), interfaces.SyncRequest{DryRun: true})
	if err != nil {
		t.Fatalf("dry run failed: %v", err)
	}
	if len(result.Outputs) != 1 || result.Outputs[0].Action != interfaces.SyncActionPlanned {
		t.Fatalf("expected planned output, got %+v", result.Outputs)
	}
	if _, err := os.Stat(filepath.Join(root, "CLAUDE.md")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no output file after dry run, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, manifestFileName)); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no manifest after dry run, got %v", err)
	}
}

func TestSyncSelectsRequestedProfiles(t *testing.T) {
	other := &interfaces.Profile{
		Name: "data",
		Modules: []interfaces.ModuleRef{
			{Category: interfaces.CategoryRole, Name: "code-reviewer"},
		},
		Targets: []string{"agents"},
	}
	svc, composer, root := newTestService(t, backendProfile("claude"), other)

	result, err := svc.Sync(context.Background(), interfaces.SyncRequest{Profiles: []string{"data"}})
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if composer.composed != 1 {
		t.Fatalf("expected a single composition, got %d", composer.composed)
	}
	if len(result.Outputs) != 1 || result.Outputs[0].Target != "agents" {
		t.Fatalf("expected only the data profile outputs, got %+v", result.Outputs)
	}
	if _, err := os.Stat(filepath.Join(root, "CLAUDE.md")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected backend output to be untouched, got %v", err)
	}
}

func TestSyncUnknownProfileFails(t *testing.T) {
	svc, _, _ := newTestService(t, backendProfile("claude"))

	if _, err := svc.Sync(context.Background(), interfaces.SyncRequest{Profiles: []string{"ghost"}}); err == nil {
		t.Fatal("expected unknown profile to fail the run")
	}
}

func TestSyncUnknownTargetFailsWithoutPartialManifest(t *testing.T) {
	svc, _, root := newTestService(t, backendProfile("claude", "emacs"))

	_, err := svc.Sync(context.Background(), interfaces.SyncRequest{})
	if !errors.Is(err, ErrUnknownTarget) {
		t.Fatalf("expected ErrUnknownTarget, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, manifestFileName)); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no manifest after failed run, got %v", err)
	}
}

func TestSyncComposeFailureAborts(t *testing.T) {
	svc, composer, _ := newTestService(t, backendProfile("claude"))
	composer.failWith = errors.New("boom")

	if _, err := svc.Sync(context.Background(), interfaces.SyncRequest{}); err == nil {
		t.Fatal("expected compose failure to abort the run")
	}
}

func TestSyncSkipsProfileWithoutTargets(t *testing.T) {
	svc, composer, _ := newTestService(t, backendProfile())

	result, err := svc.Sync(context.Background(), interfaces.SyncRequest{})
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if len(result.Outputs) != 0 {
		t.Fatalf("expected no outputs, got %+v", result.Outputs)
	}
	if composer.composed != 0 {
		t.Fatalf("expected no compositions, got %d", composer.composed)
	}
}

func TestSyncCancelledContext(t *testing.T) {
	svc, _, _ := newTestService(t, backendProfile("claude"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Sync(ctx, interfaces.SyncRequest{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
