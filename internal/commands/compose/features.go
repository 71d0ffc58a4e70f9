package composecmd

// FeatureGates exposes runtime feature toggles required by compose command
// handlers. Callers supply closures that read from the runtime configuration
// so handlers stay decoupled from it.
type FeatureGates struct {
	SyncEnabled func() bool
}

func (g FeatureGates) syncEnabled() bool {
	if g.SyncEnabled == nil {
		return true
	}
	return g.SyncEnabled()
}
