package app

import "fmt"

// Set via ldflags, e.g.
// go build -ldflags "-X github.com/heartmarshall/bireader/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is reported in startup logs and by /health.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}

// UserAgent identifies a bireader binary in outbound requests,
// e.g. "bireader-reader/1.0.0".
func UserAgent(binary string) string {
	return fmt.Sprintf("bireader-%s/%s", binary, Version)
}
