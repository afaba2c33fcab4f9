package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/rgonek/lexical-renderer/internal/version.Version=...
	Commit  = "unknown" // -X github.com/rgonek/lexical-renderer/internal/version.Commit=...
	Date    = "unknown" // -X github.com/rgonek/lexical-renderer/internal/version.Date=...
)
