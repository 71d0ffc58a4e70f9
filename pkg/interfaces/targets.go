package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SyncRequest selects which profiles to compose and write out.
type SyncRequest struct {
	// Profiles names the manifest profiles to sync; empty means all.
	Profiles []string
	// Force rewrites outputs even when their checksum matches the manifest
	// entry from the previous run.
	Force bool
	// DryRun reports the planned writes without touching the filesystem.
	DryRun bool
}

// SyncAction describes what the sync run did with a single output.
type SyncAction string

const (
	// SyncActionWritten indicates the output file was created or replaced.
	SyncActionWritten SyncAction = "written"
	// SyncActionSkipped indicates the existing output was already current.
	SyncActionSkipped SyncAction = "skipped"
	// SyncActionPlanned indicates a dry-run write that was not performed.
	SyncActionPlanned SyncAction = "planned"
)

// SyncOutput records one composed document written for one tool target.
type SyncOutput struct {
	Profile  string     `json:"profile"`
	Target   string     `json:"target"`
	Path     string     `json:"path"`
	Checksum string     `json:"checksum"`
	Action   SyncAction `json:"action"`
}

// SyncResult summarises a sync run across all requested profiles.
type SyncResult struct {
	RunID      uuid.UUID
	StartedAt  time.Time
	FinishedAt time.Time
	Outputs    []SyncOutput
}

// Written counts outputs that were actually (re)written.
func (r *SyncResult) Written() int {
	if r == nil {
		return 0
	}
	count := 0
	for _, out := range r.Outputs {
		if out.Action == SyncActionWritten {
			count++
		}
	}
	return count
}

// SyncService composes profiles and writes the results to each target tool's
// conventional output path.
type SyncService interface {
	Sync(ctx context.Context, req SyncRequest) (*SyncResult, error)
}
