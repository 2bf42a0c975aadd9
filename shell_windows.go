//go:build windows

package main

import (
	"fmt"
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// osShell uses the Windows shell API and Explorer
type osShell struct{}

func newOSShell() Shell {
	return osShell{}
}

// OpenPath opens a file or folder with its registered handler
func (osShell) OpenPath(path string) error {
	verb, err := windows.UTF16PtrFromString("open")
	if err != nil {
		return err
	}
	file, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return fmt.Errorf("invalid path %s: %w", path, err)
	}
	if err := windows.ShellExecute(0, verb, file, nil, nil, windows.SW_SHOWNORMAL); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return nil
}

// ShowItemInFolder opens Explorer with the item selected
func (osShell) ShowItemInFolder(path string) error {
	cmd := exec.Command("explorer.exe")
	// Explorer needs the quoted path glued to the /select, switch
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine: fmt.Sprintf(`explorer.exe /select,"%s"`, path),
	}

	// Explorer exits non-zero even when it succeeds, so only the launch is checked
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start explorer: %w", err)
	}
	go cmd.Wait()
	return nil
}
