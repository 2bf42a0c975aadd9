package main

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

// fakeDialogs records dialog requests and answers with canned selections
type fakeDialogs struct {
	mu        sync.Mutex
	files     []string
	directory string
	savePath  string
	err       error
	panicWith interface{}
	calls     []dialogCall
}

type dialogCall struct {
	kind string
	opts DialogOptions
}

func (f *fakeDialogs) record(kind string, opts DialogOptions) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, dialogCall{kind: kind, opts: opts})
	if f.panicWith != nil {
		panic(f.panicWith)
	}
}

func (f *fakeDialogs) OpenFiles(opts DialogOptions) ([]string, error) {
	f.record("open", opts)
	return f.files, f.err
}

func (f *fakeDialogs) OpenDirectory(opts DialogOptions) (string, error) {
	f.record("directory", opts)
	return f.directory, f.err
}

func (f *fakeDialogs) SaveFile(opts DialogOptions) (string, error) {
	f.record("save", opts)
	return f.savePath, f.err
}

func (f *fakeDialogs) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeDialogs) lastCall() dialogCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

// fakeShell records the paths it was asked to open or reveal
type fakeShell struct {
	mu       sync.Mutex
	opened   []string
	revealed []string
	err      error
}

func (s *fakeShell) OpenPath(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opened = append(s.opened, path)
	return s.err
}

func (s *fakeShell) ShowItemInFolder(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revealed = append(s.revealed, path)
	return s.err
}

func newTestController(t *testing.T) (*Controller, *fakeDialogs, *fakeShell) {
	t.Helper()
	dialogs := &fakeDialogs{}
	shell := &fakeShell{}
	return NewController(dialogs, shell, zerolog.Nop()), dialogs, shell
}
