package interfaces

// Profile names a reusable composition declared in the profile manifest so
// teams can keep their module selections under version control.
type Profile struct {
	Name string
	// Modules lists catalog references in composition order.
	Modules []ModuleRef
	// Separator overrides DefaultSeparator when HasSeparator is true.
	Separator    string
	HasSeparator bool
	// Targets names the AI tools whose output conventions receive the
	// composed document during a sync run.
	Targets []string
}

// Request builds the composition request described by the profile.
func (p *Profile) Request() CompositionRequest {
	if p == nil {
		return CompositionRequest{}
	}
	return CompositionRequest{
		Modules:      append([]ModuleRef(nil), p.Modules...),
		Separator:    p.Separator,
		HasSeparator: p.HasSeparator,
	}
}

// ProfileService exposes the named compositions parsed from a manifest.
type ProfileService interface {
	// Profile returns the named profile or ErrProfileNotFound.
	Profile(name string) (*Profile, error)
	// Profiles returns every declared profile, sorted by name.
	Profiles() []*Profile
}
