package composecmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	composeProfileMessageType = "instructions.compose.profile"
	syncTargetsMessageType    = "instructions.targets.sync"
)

// ComposeProfileCommand composes the named manifest profile and, when
// OutputPath is set, writes the resulting document to that path. With no
// OutputPath the composition result is logged but not persisted, which is
// useful for validating a manifest without touching the tree.
type ComposeProfileCommand struct {
	// Profile names the manifest profile to compose.
	Profile string `json:"profile"`
	// OutputPath optionally persists the composed document to this path.
	OutputPath string `json:"output_path,omitempty"`
	// Separator overrides the profile separator when SeparatorSet is true.
	Separator    string `json:"separator,omitempty"`
	SeparatorSet bool   `json:"separator_set,omitempty"`
}

// Type implements command.Message.
func (ComposeProfileCommand) Type() string { return composeProfileMessageType }

// Validate ensures a profile name is present before handlers execute.
func (cmd ComposeProfileCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Profile, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("instructions.compose.profile.profile_required", "profile is required")
			}
			return nil
		})),
	)
}

// SyncTargetsCommand composes the selected profiles and writes them to each
// declared tool target, mirroring interfaces.SyncRequest semantics.
type SyncTargetsCommand struct {
	// Profiles names the manifest profiles to sync; empty means all.
	Profiles []string `json:"profiles,omitempty"`
	// Force rewrites outputs even when checksums match the previous run.
	Force bool `json:"force,omitempty"`
	// DryRun reports planned writes without touching the filesystem.
	DryRun bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (SyncTargetsCommand) Type() string { return syncTargetsMessageType }

// Validate rejects blank profile names; an empty list is valid and selects
// every profile.
func (cmd SyncTargetsCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Profiles, validation.By(func(value any) error {
			names, _ := value.([]string)
			for _, name := range names {
				if strings.TrimSpace(name) == "" {
					return validation.NewError("instructions.targets.sync.blank_profile", "profile names cannot be blank")
				}
			}
			return nil
		})),
	)
}
