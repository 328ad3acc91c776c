// Package version reports the numedit build version.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

// Version and Commit can be set at build time:
//
//	go build -ldflags="-X github.com/muurk/numedit/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/numedit/internal/version.Commit=abc123"
//
// Otherwise they come from the module version (go install ...@v1.2.3) or VCS
// stamps in the build info, and finally fall back to "dev" with a timestamp.
var (
	// Version is the semantic version of the application
	Version = ""
	// Commit is the short git commit hash
	Commit = ""
)

func init() {
	if Version == "" || Commit == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			v, c := fromBuildInfo(info)
			if Version == "" {
				Version = v
			}
			if Commit == "" {
				Commit = c
			}
		}
	}

	if Version == "" {
		Version = fmt.Sprintf("dev-%s", time.Now().Format("20060102-150405"))
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fromBuildInfo derives a version and commit from build info. Either may be
// empty when the binary carries no usable stamps.
func fromBuildInfo(info *debug.BuildInfo) (version, commit string) {
	if v := info.Main.Version; v != "" && v != "(devel)" {
		version = v
	}

	var revision, modified, vcsTime string
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value
		case "vcs.time":
			vcsTime = setting.Value
		}
	}

	if revision != "" {
		commit = revision
		if len(commit) > 7 {
			commit = commit[:7]
		}
		if modified == "true" {
			commit += "-dirty"
		}
	}

	// No tag in the build info: date the dev build by its commit
	if version == "" && vcsTime != "" {
		if t, err := time.Parse(time.RFC3339, vcsTime); err == nil {
			version = fmt.Sprintf("dev-%s", t.Format("20060102"))
		}
	}
	return version, commit
}

// Full returns the version with commit and Go toolchain,
// e.g. "v1.2.3 (commit: abc1234, go1.24.10)".
func Full() string {
	return fmt.Sprintf("%s (commit: %s, %s)", Version, Commit, runtime.Version())
}
