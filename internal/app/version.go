package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit, and BuildTime are set via ldflags at build time.
// Example: go build -ldflags "-X github.com/heartmarshall/helpdesk-backend/internal/app.Version=1.0.0" ./cmd/helpdesk
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version reported by `helpdesk --version`, the
// startup log and /health. Values not set via ldflags are taken from the
// binary's build info when available.
func BuildVersion() string {
	info, _ := debug.ReadBuildInfo()
	return formatVersion(Version, Commit, BuildTime, info)
}

func formatVersion(version, commit, built string, info *debug.BuildInfo) string {
	if info != nil {
		if version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
		for _, s := range info.Settings {
			switch {
			case s.Key == "vcs.revision" && commit == "unknown":
				commit = shortRevision(s.Value)
			case s.Key == "vcs.time" && built == "unknown":
				built = s.Value
			}
		}
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, built)
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}
