package domain

// ResolutionContext parameterizes one resolution call. It is passed by value and not mutated.
type ResolutionContext struct {
	// ConfigDir holds .env.local and .env and anchors relative from_file paths.
	ConfigDir string
	// AllowOptionalFailures omits unresolved optional secrets instead of failing.
	AllowOptionalFailures bool
	// ValidationMode runs the full chain without handing values to a consumer.
	ValidationMode bool
	// CustomEnvFile replaces the .env.local and .env lookup when set.
	CustomEnvFile string
}

// NewResolutionContext returns a context with optional failures allowed.
func NewResolutionContext(configDir string) ResolutionContext {
	return ResolutionContext{
		ConfigDir:             configDir,
		AllowOptionalFailures: true,
	}
}
