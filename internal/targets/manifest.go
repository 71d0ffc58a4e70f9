package targets

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	manifestFileName    = ".instructions-manifest.json"
	manifestFileVersion = 1
)

// syncManifest stores metadata about the last successful sync so subsequent
// runs can skip outputs whose content has not changed.
type syncManifest struct {
	Version     int                       `json:"version"`
	RunID       string                    `json:"run_id"`
	GeneratedAt time.Time                 `json:"generated_at"`
	Outputs     map[string]manifestOutput `json:"outputs"`
}

type manifestOutput struct {
	Profile   string    `json:"profile"`
	Target    string    `json:"target"`
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	WrittenAt time.Time `json:"written_at"`
}

func newSyncManifest() *syncManifest {
	return &syncManifest{
		Version: manifestFileVersion,
		Outputs: map[string]manifestOutput{},
	}
}

func parseManifest(data []byte) (*syncManifest, error) {
	if len(data) == 0 {
		return newSyncManifest(), nil
	}
	var manifest syncManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("targets: parse manifest: %w", err)
	}
	if manifest.Outputs == nil {
		manifest.Outputs = map[string]manifestOutput{}
	}
	if manifest.Version == 0 {
		manifest.Version = manifestFileVersion
	}
	return &manifest, nil
}

func (m *syncManifest) marshal() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	cloned := *m
	if cloned.Version == 0 {
		cloned.Version = manifestFileVersion
	}
	encoded, err := json.MarshalIndent(&cloned, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("targets: encode manifest: %w", err)
	}
	return append(encoded, '\n'), nil
}
