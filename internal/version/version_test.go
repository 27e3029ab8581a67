package version

import (
	"runtime/debug"
	"testing"
	"time"
)

func TestResolve(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	vcs := func(rev, modified, when string) []debug.BuildSetting {
		return []debug.BuildSetting{
			{Key: "vcs.revision", Value: rev},
			{Key: "vcs.modified", Value: modified},
			{Key: "vcs.time", Value: when},
		}
	}

	tests := []struct {
		name        string
		version     string
		commit      string
		info        *debug.BuildInfo
		wantVersion string
		wantCommit  string
	}{
		{
			name:        "ldflags win",
			version:     "v1.2.3",
			commit:      "abc1234",
			info:        &debug.BuildInfo{Main: debug.Module{Version: "v9.9.9"}},
			wantVersion: "v1.2.3",
			wantCommit:  "abc1234",
		},
		{
			name:        "go install",
			info:        &debug.BuildInfo{Main: debug.Module{Version: "v0.4.0"}},
			wantVersion: "v0.4.0",
			wantCommit:  "unknown",
		},
		{
			name: "vcs stamps",
			info: &debug.BuildInfo{
				Main:     debug.Module{Version: "(devel)"},
				Settings: vcs("0123456789abcdef", "true", "2025-12-24T10:00:00Z"),
			},
			wantVersion: "dev-20251224",
			wantCommit:  "0123456-dirty",
		},
		{
			name:        "no build info",
			wantVersion: "dev-20260301",
			wantCommit:  "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, c := resolve(tt.version, tt.commit, tt.info, now)
			if v != tt.wantVersion || c != tt.wantCommit {
				t.Errorf("resolve() = %q, %q, want %q, %q", v, c, tt.wantVersion, tt.wantCommit)
			}
		})
	}
}
