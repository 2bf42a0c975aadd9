package main

import "runtime"

// Version information - will be injected at build time
var (
	Version   = "dev"     // Will be set via ldflags
	GitCommit = "unknown" // Will be set via ldflags
	BuildDate = "unknown" // Will be set via ldflags
)

// VersionInfo represents version information
type VersionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
}

// currentVersionInfo returns the build information of the running binary
func currentVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
}
