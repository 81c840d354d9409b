package constant

const (
	// ProjectName is used for binary naming and config/cache directories.
	ProjectName = "gscale"
	// EnvPrefix prefixes all environment variable overrides.
	EnvPrefix = "GSCALE"
)
