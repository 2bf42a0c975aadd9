//go:build !windows && !darwin

package main

import (
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"

	"github.com/godbus/dbus/v5"
)

const (
	fileManagerBusName = "org.freedesktop.FileManager1"
	fileManagerPath    = "/org/freedesktop/FileManager1"
	fileManagerShow    = "org.freedesktop.FileManager1.ShowItems"
)

// osShell uses xdg-open and the freedesktop file manager D-Bus interface
type osShell struct{}

func newOSShell() Shell {
	return osShell{}
}

// OpenPath opens a file or folder with the desktop's default handler
func (osShell) OpenPath(path string) error {
	return xdgOpen(path)
}

// ShowItemInFolder asks the file manager to select the item, falling back
// to opening the parent directory when no file manager service is running.
func (osShell) ShowItemInFolder(path string) error {
	if err := showItemsOverDBus(path); err == nil {
		return nil
	}
	return xdgOpen(filepath.Dir(path))
}

func showItemsOverDBus(path string) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("failed to connect to session bus: %w", err)
	}

	uri := (&url.URL{Scheme: "file", Path: path}).String()
	obj := conn.Object(fileManagerBusName, dbus.ObjectPath(fileManagerPath))
	if call := obj.Call(fileManagerShow, 0, []string{uri}, ""); call.Err != nil {
		return fmt.Errorf("file manager ShowItems failed: %w", call.Err)
	}
	return nil
}

func xdgOpen(target string) error {
	cmd := exec.Command("xdg-open", target)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start xdg-open: %w", err)
	}
	go cmd.Wait()
	return nil
}
