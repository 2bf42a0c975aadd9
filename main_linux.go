//go:build linux

package main

import (
	"fmt"
	"os"
)

// prepareEnvironment handles Wayland compatibility before GTK initializes.
// WebKit2GTK has known issues on non-GNOME Wayland compositors
// (protocol errors on KDE, Sway, Hyprland, etc.), so XWayland is forced.
func prepareEnvironment() {
	if os.Getenv("WAYLAND_DISPLAY") == "" {
		return
	}
	// Only override if user hasn't explicitly set GDK_BACKEND
	if os.Getenv("GDK_BACKEND") == "" {
		os.Setenv("GDK_BACKEND", "x11")
		fmt.Println("Wayland detected: using XWayland (GDK_BACKEND=x11) for WebKit2GTK compatibility")
	}
}
