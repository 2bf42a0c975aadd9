package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// pdfState holds the transient location of the most recently saved PDF.
// It lives for the process lifetime only.
type pdfState struct {
	mu          sync.RWMutex
	lastPDFPath string
}

func (s *pdfState) get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastPDFPath
}

func (s *pdfState) set(path string) {
	s.mu.Lock()
	s.lastPDFPath = path
	s.mu.Unlock()
}

// Controller executes the privileged file, shell and dialog operations
// requested through the bridge.
type Controller struct {
	dialogs Dialogs
	shell   Shell
	log     zerolog.Logger
	state   pdfState

	// pdfDirectory returns the configured default PDF directory, if any
	pdfDirectory func() string
}

// NewController creates a controller backed by the given host primitives
func NewController(dialogs Dialogs, shell Shell, log zerolog.Logger) *Controller {
	return &Controller{
		dialogs: dialogs,
		shell:   shell,
		log:     log.With().Str("component", "controller").Logger(),
	}
}

// guard runs an operation and converts any error or panic into a failure Result
func (c *Controller) guard(op string, fn func() (Result, error)) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error().Str("op", op).Interface("panic", r).Msg("operation panicked")
			res = errorResult(fmt.Errorf("%s: %v", op, r))
		}
	}()

	res, err := fn()
	if err != nil {
		c.log.Warn().Str("op", op).Err(err).Msg("operation failed")
		return errorResult(err)
	}
	if res.Canceled {
		c.log.Debug().Str("op", op).Msg("operation canceled by user")
	}
	return res
}

// requireAbsolute validates a path argument coming from the presentation layer
func requireAbsolute(path string) error {
	if path == "" {
		return ErrPathRequired
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%w: %s", ErrPathNotAbsolute, path)
	}
	return nil
}

// ShowOpenDialog shows a native open dialog
func (c *Controller) ShowOpenDialog(opts DialogOptions) Result {
	return c.guard(OpOpenFileDialog, func() (Result, error) {
		return c.openDialog(opts)
	})
}

// ShowDirectoryDialog shows a native open dialog forced into directory mode
func (c *Controller) ShowDirectoryDialog(opts DialogOptions) Result {
	return c.guard(OpOpenDirectoryDialog, func() (Result, error) {
		opts.Directory = true
		return c.openDialog(opts)
	})
}

func (c *Controller) openDialog(opts DialogOptions) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid dialog options: %w", err)
	}
	opts = opts.normalized()

	var paths []string
	if opts.Directory {
		dir, err := c.dialogs.OpenDirectory(opts)
		if err != nil {
			return Result{}, err
		}
		if dir != "" {
			paths = []string{dir}
		}
	} else {
		files, err := c.dialogs.OpenFiles(opts)
		if err != nil {
			return Result{}, err
		}
		paths = files
	}

	if len(paths) == 0 {
		return canceledResult(), nil
	}
	return Result{Success: true, FilePaths: paths}, nil
}

// ShowSaveDialog shows a native save dialog
func (c *Controller) ShowSaveDialog(opts DialogOptions) Result {
	return c.guard(OpSaveFileDialog, func() (Result, error) {
		if err := opts.Validate(); err != nil {
			return Result{}, fmt.Errorf("invalid dialog options: %w", err)
		}
		path, err := c.dialogs.SaveFile(opts.normalized())
		if err != nil {
			return Result{}, err
		}
		if path == "" {
			return canceledResult(), nil
		}
		return Result{Success: true, FilePath: path}, nil
	})
}

// ReadTextFile reads an entire UTF-8 text file
func (c *Controller) ReadTextFile(path string) Result {
	return c.guard(OpReadTextFile, func() (Result, error) {
		if err := requireAbsolute(path); err != nil {
			return Result{}, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return Result{}, err
		}
		if !utf8.Valid(data) {
			return Result{}, fmt.Errorf("file %s is not valid UTF-8 text", path)
		}
		return Result{Success: true, Data: string(data)}, nil
	})
}

// WriteTextFile writes text to a file, creating missing parent directories
// and replacing any existing content.
func (c *Controller) WriteTextFile(path, data string) Result {
	return c.guard(OpWriteTextFile, func() (Result, error) {
		if err := requireAbsolute(path); err != nil {
			return Result{}, err
		}
		if err := os.MkdirAll(filepath.Dir(path), DirMode); err != nil {
			return Result{}, err
		}
		if err := os.WriteFile(path, []byte(data), FileMode); err != nil {
			return Result{}, err
		}
		return okResult(), nil
	})
}

// OpenFolder opens a path with the OS default handler
func (c *Controller) OpenFolder(path string) Result {
	return c.guard(OpOpenFolder, func() (Result, error) {
		if err := requireAbsolute(path); err != nil {
			return Result{}, err
		}
		if _, err := os.Stat(path); err != nil {
			return Result{}, err
		}
		if err := c.shell.OpenPath(path); err != nil {
			return Result{}, err
		}
		return okResult(), nil
	})
}

// ShowItemInFolder opens the containing folder with the item selected
func (c *Controller) ShowItemInFolder(path string) Result {
	return c.guard(OpRevealFile, func() (Result, error) {
		if err := requireAbsolute(path); err != nil {
			return Result{}, err
		}
		if err := c.shell.ShowItemInFolder(path); err != nil {
			return Result{}, err
		}
		return okResult(), nil
	})
}

// GetFilePath returns the path unchanged
func (c *Controller) GetFilePath(path string) string {
	return path
}

// GetLastPDFPath returns the most recently saved PDF path, or "" if none
func (c *Controller) GetLastPDFPath() string {
	return c.state.get()
}

// OpenPDFLocation reveals the most recently saved PDF in the file browser
func (c *Controller) OpenPDFLocation() Result {
	return c.guard(OpRevealLastSaved, func() (Result, error) {
		path := c.state.get()
		if path == "" {
			return Result{}, ErrNoPDFPath
		}
		if err := c.shell.ShowItemInFolder(path); err != nil {
			return Result{}, err
		}
		return okResult(), nil
	})
}
