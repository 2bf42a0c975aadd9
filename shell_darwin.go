//go:build darwin

package main

import (
	"fmt"
	"os/exec"
	"strings"
)

// osShell uses the macOS open(1) command
type osShell struct{}

func newOSShell() Shell {
	return osShell{}
}

// OpenPath opens a file or folder with its default application
func (osShell) OpenPath(path string) error {
	return runOpen(path)
}

// ShowItemInFolder reveals the item in Finder
func (osShell) ShowItemInFolder(path string) error {
	return runOpen("-R", path)
}

func runOpen(args ...string) error {
	out, err := exec.Command("open", args...).CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			return fmt.Errorf("open failed: %w", err)
		}
		return fmt.Errorf("open failed: %s", msg)
	}
	return nil
}
