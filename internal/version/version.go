package version

// Set with -ldflags "-X offer_landing/internal/version.Version=..." at build
// time.
//
//nolint:gochecknoglobals
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)
