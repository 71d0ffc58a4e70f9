package instructions

import "github.com/goliatone/go-instructions/internal/runtimeconfig"

var (
	ErrCatalogBasePathRequired  = runtimeconfig.ErrCatalogBasePathRequired
	ErrWatchRequiresSync        = runtimeconfig.ErrWatchRequiresSync
	ErrCommandsCronRequiresSync = runtimeconfig.ErrCommandsCronRequiresSync
	ErrManifestPathRequired     = runtimeconfig.ErrManifestPathRequired
	ErrLoggingProviderRequired  = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown   = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid      = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid     = runtimeconfig.ErrLoggingFormatInvalid
	ErrWatchDebounceInvalid     = runtimeconfig.ErrWatchDebounceInvalid
)

type (
	Config         = runtimeconfig.Config
	CatalogConfig  = runtimeconfig.CatalogConfig
	ComposerConfig = runtimeconfig.ComposerConfig
	ProfilesConfig = runtimeconfig.ProfilesConfig
	TargetsConfig  = runtimeconfig.TargetsConfig
	WatchConfig    = runtimeconfig.WatchConfig
	RenderConfig   = runtimeconfig.RenderConfig
	CommandsConfig = runtimeconfig.CommandsConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
	Features       = runtimeconfig.Features
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
