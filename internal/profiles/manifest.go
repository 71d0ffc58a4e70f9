// Package profiles parses the YAML manifest that names reusable compositions.
// A manifest maps profile names to ordered module selections, an optional
// separator override, and the AI-tool targets the composed document should be
// written for. The decoded document is validated against an embedded JSON
// schema before any profile is materialised.
package profiles

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-instructions/pkg/interfaces"
)

// ManifestFileName is the conventional manifest location, relative to the
// corpus root.
const ManifestFileName = "instructions.yaml"

const manifestVersion = 1

// ErrProfileNotFound is returned when a requested profile is not declared.
var ErrProfileNotFound = errors.New("profiles: profile not found")

type manifestDocument struct {
	Version  int                    `yaml:"version"`
	Profiles map[string]profileSpec `yaml:"profiles"`
}

type profileSpec struct {
	Modules []string `yaml:"modules"`
	// Separator is a pointer so an explicit empty string survives decoding.
	Separator *string  `yaml:"separator"`
	Targets   []string `yaml:"targets"`
}

// Service implements interfaces.ProfileService over a parsed manifest.
type Service struct {
	byName map[string]*interfaces.Profile
	names  []string
}

var _ interfaces.ProfileService = (*Service)(nil)

// Parse decodes and validates manifest bytes.
func Parse(data []byte) (*Service, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("profiles: decode manifest: %w", err)
	}
	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var document manifestDocument
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("profiles: decode manifest: %w", err)
	}
	if document.Version != manifestVersion {
		return nil, fmt.Errorf("profiles: unsupported manifest version %d", document.Version)
	}

	byName := make(map[string]*interfaces.Profile, len(document.Profiles))
	names := make([]string, 0, len(document.Profiles))

	for name, spec := range document.Profiles {
		profile, err := buildProfile(name, spec)
		if err != nil {
			return nil, err
		}
		byName[name] = profile
		names = append(names, name)
	}
	sort.Strings(names)

	return &Service{byName: byName, names: names}, nil
}

// Load reads and parses the manifest at path.
func Load(path string) (*Service, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profiles: read manifest %s: %w", path, err)
	}
	return Parse(data)
}

// Profile returns the named profile or ErrProfileNotFound.
func (s *Service) Profile(name string) (*interfaces.Profile, error) {
	profile, ok := s.byName[strings.TrimSpace(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}
	return profile, nil
}

// Profiles returns every declared profile, sorted by name.
func (s *Service) Profiles() []*interfaces.Profile {
	result := make([]*interfaces.Profile, 0, len(s.names))
	for _, name := range s.names {
		result = append(result, s.byName[name])
	}
	return result
}

func buildProfile(name string, spec profileSpec) (*interfaces.Profile, error) {
	refs := make([]interfaces.ModuleRef, 0, len(spec.Modules))
	for _, raw := range spec.Modules {
		ref, err := interfaces.ParseModuleRef(raw)
		if err != nil {
			return nil, fmt.Errorf("profiles: profile %q: %w", name, err)
		}
		refs = append(refs, ref)
	}

	profile := &interfaces.Profile{
		Name:    name,
		Modules: refs,
		Targets: append([]string(nil), spec.Targets...),
	}
	if spec.Separator != nil {
		profile.Separator = *spec.Separator
		profile.HasSeparator = true
	}
	return profile, nil
}
