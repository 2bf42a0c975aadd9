package main

import (
	"runtime"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/host"
)

// Node.js style platform identifiers expected by the presentation layer
const (
	PlatformWindows = "win32"
	PlatformDarwin  = "darwin"
	PlatformLinux   = "linux"
)

// platformName maps a GOOS value onto the identifier the frontend compares against.
// Only windows differs; everything else passes through.
func platformName(goos string) string {
	if goos == "windows" {
		return PlatformWindows
	}
	return goos
}

// HostDescription summarizes the machine the app is running on
type HostDescription struct {
	OS              string `json:"os"`
	Platform        string `json:"platform"`
	PlatformVersion string `json:"platformVersion"`
	KernelArch      string `json:"kernelArch"`
}

// describeHost gathers host details, falling back to the runtime values
func describeHost() HostDescription {
	desc := HostDescription{
		OS:         runtime.GOOS,
		Platform:   platformName(runtime.GOOS),
		KernelArch: runtime.GOARCH,
	}

	info, err := host.Info()
	if err != nil || info == nil {
		return desc
	}
	if info.OS != "" {
		desc.OS = info.OS
	}
	if info.Platform != "" {
		desc.Platform = info.Platform
	}
	desc.PlatformVersion = info.PlatformVersion
	if info.KernelArch != "" {
		desc.KernelArch = info.KernelArch
	}
	return desc
}

// MarshalZerologObject lets the description be logged as a nested object
func (h HostDescription) MarshalZerologObject(e *zerolog.Event) {
	e.Str("os", h.OS).
		Str("platform", h.Platform).
		Str("platformVersion", h.PlatformVersion).
		Str("kernelArch", h.KernelArch)
}
