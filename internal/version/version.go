// Package version reports the pokeselect build version.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/pokeselect/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/pokeselect/internal/version.Commit=abc123"
//
// Values left empty are filled from the module build info.
var (
	// Version is the semantic version of the application
	Version = ""
	// Commit is the short git commit hash
	Commit = ""
)

func init() {
	info, _ := debug.ReadBuildInfo()
	Version, Commit = resolve(Version, Commit, info, time.Now())
}

// resolve fills empty version fields from build info. A module version
// (set by `go install module@version`) wins over VCS stamps; without either
// the version is "dev-" plus a date.
func resolve(version, commit string, info *debug.BuildInfo, now time.Time) (string, string) {
	var revision, vcsTime string
	dirty := false

	if info != nil {
		if version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				dirty = s.Value == "true"
			case "vcs.time":
				vcsTime = s.Value
			}
		}
	}

	if commit == "" && revision != "" {
		commit = revision
		if len(commit) > 7 {
			commit = commit[:7]
		}
		if dirty {
			commit += "-dirty"
		}
	}

	if version == "" {
		stamp := now
		if t, err := time.Parse(time.RFC3339, vcsTime); err == nil {
			stamp = t
		}
		version = "dev-" + stamp.Format("20060102")
	}
	if commit == "" {
		commit = "unknown"
	}
	return version, commit
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
