package buildinfo

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stamp(t *testing.T, version, commit, date, moduleVersion string) {
	t.Helper()
	oldV, oldC, oldD, oldRead := Version, Commit, Date, readBuildInfo
	t.Cleanup(func() {
		Version, Commit, Date, readBuildInfo = oldV, oldC, oldD, oldRead
	})
	Version, Commit, Date = version, commit, date
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Main: debug.Module{Version: moduleVersion}}, true
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name                  string
		version, commit, date string
		moduleVersion         string
		want                  string
	}{
		{"local build", "dev", "", "", "(devel)", "dev"},
		{"go install", "dev", "", "", "v0.3.1", "v0.3.1"},
		{"release", "v1.2.0", "abc123", "2026-01-02", "v0.3.1", "v1.2.0 (commit abc123, built 2026-01-02)"},
		{"commit only", "v1.2.0", "abc123", "", "", "v1.2.0 (commit abc123)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stamp(t, tt.version, tt.commit, tt.date, tt.moduleVersion)
			assert.Equal(t, tt.want, String())
		})
	}
}

func TestString_NoBuildInfo(t *testing.T) {
	stamp(t, "dev", "", "", "")
	readBuildInfo = func() (*debug.BuildInfo, bool) { return nil, false }
	assert.Equal(t, "dev", String())
}
