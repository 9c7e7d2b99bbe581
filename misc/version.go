// Package misc keeps program identification used across logging, reporting
// and the command line surface.
package misc

import "runtime/debug"

const appName = "sgc"

// Set at build time via -ldflags; falls back to module build info.
var (
	version = ""
	gitHash = ""
)

// GetAppName returns short program name used for logs, reports and temp files.
func GetAppName() string {
	return appName
}

// GetVersion returns program version.
func GetVersion() string {
	if len(version) > 0 {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && len(bi.Main.Version) > 0 {
		return bi.Main.Version
	}
	return "(devel)"
}

// GetGitHash returns vcs revision recorded at build time.
func GetGitHash() string {
	if len(gitHash) > 0 {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
