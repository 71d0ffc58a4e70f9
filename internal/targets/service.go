// Package targets writes composed documents to the file locations each AI
// tool expects and tracks the results in a build manifest so unchanged
// outputs are not rewritten.
package targets

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-instructions/internal/logging"
	"github.com/goliatone/go-instructions/pkg/interfaces"
)

// Config controls where sync runs place their outputs.
type Config struct {
	// OutputRoot is the directory target paths are resolved against.
	// Defaults to the working directory.
	OutputRoot string
}

// Service implements interfaces.SyncService.
type Service struct {
	cfg      Config
	composer interfaces.ComposerService
	profiles interfaces.ProfileService
	logger   interfaces.Logger

	// mu serialises sync runs; the watcher may trigger one while a manual
	// run is in flight.
	mu sync.Mutex
}

var _ interfaces.SyncService = (*Service)(nil)

// NewService constructs a sync service over the supplied composer and
// profile manifest.
func NewService(cfg Config, composer interfaces.ComposerService, profiles interfaces.ProfileService, logger interfaces.Logger) *Service {
	if logger == nil {
		logger = logging.NoOp()
	}
	if cfg.OutputRoot == "" {
		cfg.OutputRoot = "."
	}
	return &Service{
		cfg:      cfg,
		composer: composer,
		profiles: profiles,
		logger:   logger,
	}
}

// Sync composes every requested profile and writes the documents to their
// target paths. Outputs whose checksum matches the previous run are skipped
// unless req.Force is set; req.DryRun reports planned writes without touching
// the filesystem.
func (s *Service) Sync(ctx context.Context, req interfaces.SyncRequest) (*interfaces.SyncResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	selected, err := s.selectProfiles(req.Profiles)
	if err != nil {
		return nil, err
	}

	previous, err := s.loadManifest()
	if err != nil {
		return nil, err
	}

	result := &interfaces.SyncResult{
		RunID:     uuid.New(),
		StartedAt: time.Now().UTC(),
	}
	next := newSyncManifest()
	next.RunID = result.RunID.String()

	for _, profile := range selected {
		if len(profile.Targets) == 0 {
			s.logger.Warn("targets.profile_has_no_targets", "profile", profile.Name)
			continue
		}

		doc, err := s.composer.Compose(ctx, profile.Request())
		if err != nil {
			return nil, fmt.Errorf("targets: compose profile %q: %w", profile.Name, err)
		}
		checksum := hex.EncodeToString(doc.Checksum)

		for _, target := range profile.Targets {
			relPath, err := OutputPath(target, profile.Name)
			if err != nil {
				return nil, fmt.Errorf("targets: profile %q: %w", profile.Name, err)
			}

			output := interfaces.SyncOutput{
				Profile:  profile.Name,
				Target:   target,
				Path:     relPath,
				Checksum: checksum,
			}

			switch {
			case req.DryRun:
				output.Action = interfaces.SyncActionPlanned
			case !req.Force && s.upToDate(previous, relPath, checksum):
				output.Action = interfaces.SyncActionSkipped
			default:
				if err := s.writeOutput(relPath, doc.Content); err != nil {
					return nil, err
				}
				output.Action = interfaces.SyncActionWritten
			}

			next.Outputs[relPath] = manifestOutput{
				Profile:   profile.Name,
				Target:    target,
				Path:      relPath,
				Checksum:  checksum,
				WrittenAt: time.Now().UTC(),
			}
			result.Outputs = append(result.Outputs, output)

			logging.WithModuleContext(s.logger, "", "", string(output.Action)).Debug(
				"targets.output",
				"profile", profile.Name,
				"target", target,
				"path", relPath,
			)
		}
	}

	result.FinishedAt = time.Now().UTC()

	if !req.DryRun {
		next.GeneratedAt = result.FinishedAt
		if err := s.writeManifest(next); err != nil {
			return nil, err
		}
	}

	s.logger.Info("targets.sync.completed",
		"run_id", result.RunID,
		"outputs", len(result.Outputs),
		"written", result.Written(),
		"dry_run", req.DryRun,
	)

	return result, nil
}

func (s *Service) selectProfiles(names []string) ([]*interfaces.Profile, error) {
	if len(names) == 0 {
		return s.profiles.Profiles(), nil
	}
	selected := make([]*interfaces.Profile, 0, len(names))
	for _, name := range names {
		profile, err := s.profiles.Profile(name)
		if err != nil {
			return nil, err
		}
		selected = append(selected, profile)
	}
	return selected, nil
}

// upToDate reports whether the output on disk already carries the composed
// content, based on the previous manifest entry. A missing file always
// triggers a rewrite, even when the checksum matches.
func (s *Service) upToDate(previous *syncManifest, relPath, checksum string) bool {
	entry, ok := previous.Outputs[relPath]
	if !ok || entry.Checksum != checksum {
		return false
	}
	if _, err := os.Stat(s.absPath(relPath)); err != nil {
		return false
	}
	return true
}

func (s *Service) writeOutput(relPath string, content []byte) error {
	absPath := s.absPath(relPath)
	if dir := filepath.Dir(absPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("targets: ensure dir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(absPath, content, 0o644); err != nil {
		return fmt.Errorf("targets: write %s: %w", relPath, err)
	}
	return nil
}

func (s *Service) loadManifest() (*syncManifest, error) {
	data, err := os.ReadFile(s.absPath(manifestFileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return newSyncManifest(), nil
		}
		return nil, fmt.Errorf("targets: read manifest: %w", err)
	}
	return parseManifest(data)
}

func (s *Service) writeManifest(manifest *syncManifest) error {
	encoded, err := manifest.marshal()
	if err != nil {
		return err
	}
	return s.writeOutput(manifestFileName, encoded)
}

func (s *Service) absPath(relPath string) string {
	return filepath.Join(s.cfg.OutputRoot, filepath.FromSlash(relPath))
}
