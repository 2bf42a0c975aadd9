package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

// wailsDialogs shows native dialogs through the Wails runtime, owned by the main window
type wailsDialogs struct {
	app *App
}

func (d *wailsDialogs) windowContext() (context.Context, error) {
	if d.app == nil || d.app.ctx == nil {
		return nil, ErrWindowNotReady
	}
	return d.app.ctx, nil
}

// OpenFiles shows a single or multi-select file dialog
func (d *wailsDialogs) OpenFiles(opts DialogOptions) ([]string, error) {
	ctx, err := d.windowContext()
	if err != nil {
		return nil, err
	}

	options := toOpenDialogOptions(opts)
	if opts.Multiple {
		return wailsRuntime.OpenMultipleFilesDialog(ctx, options)
	}

	file, err := wailsRuntime.OpenFileDialog(ctx, options)
	if err != nil || file == "" {
		return nil, err
	}
	return []string{file}, nil
}

// OpenDirectory shows a directory selection dialog
func (d *wailsDialogs) OpenDirectory(opts DialogOptions) (string, error) {
	ctx, err := d.windowContext()
	if err != nil {
		return "", err
	}
	return wailsRuntime.OpenDirectoryDialog(ctx, toOpenDialogOptions(opts))
}

// SaveFile shows a save-as dialog
func (d *wailsDialogs) SaveFile(opts DialogOptions) (string, error) {
	ctx, err := d.windowContext()
	if err != nil {
		return "", err
	}

	dir, name := splitDefaultPath(opts.DefaultPath)
	return wailsRuntime.SaveFileDialog(ctx, wailsRuntime.SaveDialogOptions{
		DefaultDirectory:     dir,
		DefaultFilename:      name,
		Title:                opts.Title,
		Filters:              toWailsFilters(opts.Filters),
		ShowHiddenFiles:      opts.ShowHiddenFiles,
		CanCreateDirectories: true,
	})
}

func toOpenDialogOptions(opts DialogOptions) wailsRuntime.OpenDialogOptions {
	dir, name := splitDefaultPath(opts.DefaultPath)
	if opts.Directory {
		name = ""
	}
	return wailsRuntime.OpenDialogOptions{
		DefaultDirectory:     dir,
		DefaultFilename:      name,
		Title:                opts.Title,
		Filters:              toWailsFilters(opts.Filters),
		ShowHiddenFiles:      opts.ShowHiddenFiles,
		CanCreateDirectories: opts.Directory,
	}
}

func toWailsFilters(filters []FileFilter) []wailsRuntime.FileFilter {
	if len(filters) == 0 {
		return nil
	}
	result := make([]wailsRuntime.FileFilter, 0, len(filters))
	for _, f := range filters {
		pattern := f.pattern()
		result = append(result, wailsRuntime.FileFilter{
			DisplayName: fmt.Sprintf("%s (%s)", f.Name, pattern),
			Pattern:     pattern,
		})
	}
	return result
}

// splitDefaultPath splits a default path into the directory and file name
// expected by native dialogs. Directories that do not exist are dropped
// since some platforms refuse to open the dialog otherwise.
func splitDefaultPath(path string) (dir, name string) {
	if path == "" {
		return "", ""
	}
	if isDir(path) {
		return path, ""
	}

	name = filepath.Base(path)
	if parent := filepath.Dir(path); parent != "." && isDir(parent) {
		dir = parent
	}
	return dir, name
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
