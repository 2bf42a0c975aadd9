package main

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Operation names used for logging at the bridge boundary
const (
	OpOpenFileDialog      = "open-file-dialog"
	OpSaveFileDialog      = "save-file-dialog"
	OpOpenDirectoryDialog = "open-directory-dialog"
	OpReadTextFile        = "read-text-file"
	OpWriteTextFile       = "write-text-file"
	OpOpenFolder          = "open-folder-in-shell"
	OpRevealFile          = "reveal-file-in-folder"
	OpSavePDF             = "save-pdf-artifact"
	OpRevealLastSaved     = "reveal-last-saved-path"
)

// Config constants
const (
	ConfigFileName = "config.yaml"
	ConfigDirName  = "DocBridge"
	DebounceDelay  = 300 * time.Millisecond
	FileMode       = 0644
	DirMode        = 0755
)

// PDF save dialog constants
const (
	PDFDialogTitle  = "Save PDF"
	PDFFilterName   = "PDF Files"
	PDFExtension    = "pdf"
	WildcardPattern = "*"
)

var (
	// ErrNoPDFPath is returned when revealing the last saved PDF before any save.
	ErrNoPDFPath = errors.New("No PDF path available")
	// ErrPathRequired is returned for an empty path argument.
	ErrPathRequired = errors.New("path is required")
	// ErrPathNotAbsolute is returned for relative path arguments.
	ErrPathNotAbsolute = errors.New("path must be absolute")
	// ErrWindowNotReady is returned when a dialog is requested before startup.
	ErrWindowNotReady = errors.New("window is not ready")
)

// Result is the uniform outcome returned across the bridge.
// Success is always serialized; Canceled and Error are mutually exclusive.
type Result struct {
	Success   bool     `json:"success"`
	Canceled  bool     `json:"canceled,omitempty"`
	Error     string   `json:"error,omitempty"`
	Data      string   `json:"data,omitempty"`
	FilePath  string   `json:"filePath,omitempty"`
	FilePaths []string `json:"filePaths,omitempty"`
	Pages     int      `json:"pages,omitempty"`
}

func okResult() Result {
	return Result{Success: true}
}

func canceledResult() Result {
	return Result{Success: false, Canceled: true}
}

func errorResult(err error) Result {
	return Result{Success: false, Error: err.Error()}
}

// FileFilter restricts a dialog to a named set of extensions
type FileFilter struct {
	Name       string   `json:"name"`
	Extensions []string `json:"extensions"`
}

// DialogOptions holds the recognized dialog configuration fields
type DialogOptions struct {
	Title           string       `json:"title,omitempty"`
	DefaultPath     string       `json:"defaultPath,omitempty"`
	ButtonLabel     string       `json:"buttonLabel,omitempty"`
	Filters         []FileFilter `json:"filters,omitempty"`
	Directory       bool         `json:"directory,omitempty"`
	Multiple        bool         `json:"multiple,omitempty"`
	ShowHiddenFiles bool         `json:"showHiddenFiles,omitempty"`

	// Properties accepts Electron style dialog flags such as "openDirectory"
	Properties []string `json:"properties,omitempty"`
}

// Recognized dialog properties
const (
	PropertyOpenFile        = "openFile"
	PropertyOpenDirectory   = "openDirectory"
	PropertyMultiSelections = "multiSelections"
	PropertyShowHiddenFiles = "showHiddenFiles"
)

// dialogProperties lists every accepted property. Those without a native
// equivalent are accepted and ignored.
var dialogProperties = map[string]bool{
	PropertyOpenFile:            true,
	PropertyOpenDirectory:       true,
	PropertyMultiSelections:     true,
	PropertyShowHiddenFiles:     true,
	"createDirectory":           true,
	"promptToCreate":            true,
	"noResolveAliases":          true,
	"treatPackageAsDirectory":   true,
	"dontAddToRecent":           true,
	"showOverwriteConfirmation": true,
}

// normalized folds Properties into the typed flags
func (o DialogOptions) normalized() DialogOptions {
	for _, p := range o.Properties {
		switch p {
		case PropertyOpenDirectory:
			o.Directory = true
		case PropertyMultiSelections:
			o.Multiple = true
		case PropertyShowHiddenFiles:
			o.ShowHiddenFiles = true
		}
	}
	o.Properties = nil
	return o
}

// Validate rejects malformed dialog configuration before it reaches the host.
func (o DialogOptions) Validate() error {
	for _, p := range o.Properties {
		if !dialogProperties[p] {
			return fmt.Errorf("unknown dialog property %q", p)
		}
	}
	for i, f := range o.Filters {
		if strings.TrimSpace(f.Name) == "" {
			return fmt.Errorf("filter %d: name is required", i)
		}
		if len(f.Extensions) == 0 {
			return fmt.Errorf("filter %q: at least one extension is required", f.Name)
		}
		for _, ext := range f.Extensions {
			if err := validateExtension(ext); err != nil {
				return fmt.Errorf("filter %q: %w", f.Name, err)
			}
		}
	}
	return nil
}

func validateExtension(ext string) error {
	if ext == WildcardPattern {
		return nil
	}
	if ext == "" {
		return errors.New("empty extension")
	}
	if strings.ContainsAny(ext, `/\*?;`) {
		return fmt.Errorf("invalid extension %q", ext)
	}
	return nil
}

// pattern converts a filter into the semicolon separated glob list used by native dialogs
func (f FileFilter) pattern() string {
	globs := make([]string, 0, len(f.Extensions))
	for _, ext := range f.Extensions {
		if ext == WildcardPattern {
			globs = append(globs, WildcardPattern)
			continue
		}
		globs = append(globs, "*."+strings.TrimPrefix(ext, "."))
	}
	return strings.Join(globs, ";")
}

// Dialogs shows native file dialogs. An empty selection with a nil error means
// the user dismissed the dialog.
type Dialogs interface {
	OpenFiles(opts DialogOptions) ([]string, error)
	OpenDirectory(opts DialogOptions) (string, error)
	SaveFile(opts DialogOptions) (string, error)
}

// Shell integrates with the OS file browser
type Shell interface {
	OpenPath(path string) error
	ShowItemInFolder(path string) error
}
