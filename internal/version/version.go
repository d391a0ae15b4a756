package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/jive-vlbi/ptboot/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/jive-vlbi/ptboot/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/jive-vlbi/ptboot/internal/version.Date={{.Date}}
)
