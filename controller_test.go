package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThenReadRoundTrip(t *testing.T) {
	c, _, _ := newTestController(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"plain", "hello world"},
		{"empty", ""},
		{"multiline", "line one\nline two\r\nline three\n"},
		{"unicode", "Größe: 12 € — 日本語 ✓"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".txt")

			res := c.WriteTextFile(path, tt.content)
			require.True(t, res.Success, res.Error)

			res = c.ReadTextFile(path)
			require.True(t, res.Success, res.Error)
			assert.Equal(t, tt.content, res.Data)
			assert.Empty(t, res.Error)
		})
	}
}

func TestWriteTextFileCreatesMissingDirectories(t *testing.T) {
	c, _, _ := newTestController(t)
	path := filepath.Join(t.TempDir(), "a", "b", "c", "notes.txt")

	res := c.WriteTextFile(path, "nested")
	require.True(t, res.Success, res.Error)

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Writing again into the existing tree must also succeed
	res = c.WriteTextFile(filepath.Join(filepath.Dir(path), "other.txt"), "x")
	assert.True(t, res.Success, res.Error)
}

func TestWriteTextFileOverwritesExistingContent(t *testing.T) {
	c, _, _ := newTestController(t)
	path := filepath.Join(t.TempDir(), "doc.txt")

	require.True(t, c.WriteTextFile(path, "a much longer original body").Success)
	require.True(t, c.WriteTextFile(path, "short").Success)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "short", string(data))
}

func TestReadTextFileMissing(t *testing.T) {
	c, _, _ := newTestController(t)

	res := c.ReadTextFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.False(t, res.Success)
	assert.False(t, res.Canceled)
	assert.NotEmpty(t, res.Error)
	assert.Empty(t, res.Data)
}

func TestReadTextFileRejectsInvalidUTF8(t *testing.T) {
	c, _, _ := newTestController(t)
	path := filepath.Join(t.TempDir(), "binary.bin")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0xc3}, 0644))

	res := c.ReadTextFile(path)
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "not valid UTF-8")
}

func TestPathArgumentsMustBeAbsolute(t *testing.T) {
	c, _, shell := newTestController(t)

	for name, res := range map[string]Result{
		"read":   c.ReadTextFile("relative/file.txt"),
		"write":  c.WriteTextFile("relative/file.txt", "x"),
		"open":   c.OpenFolder("relative"),
		"reveal": c.ShowItemInFolder("relative/file.txt"),
	} {
		assert.False(t, res.Success, name)
		assert.Contains(t, res.Error, ErrPathNotAbsolute.Error(), name)
	}

	res := c.ReadTextFile("")
	assert.Equal(t, ErrPathRequired.Error(), res.Error)

	assert.Empty(t, shell.opened)
	assert.Empty(t, shell.revealed)
}

func TestShowOpenDialog(t *testing.T) {
	t.Run("selection", func(t *testing.T) {
		c, dialogs, _ := newTestController(t)
		dialogs.files = []string{"/tmp/a.txt", "/tmp/b.txt"}

		res := c.ShowOpenDialog(DialogOptions{Title: "Pick", Multiple: true})
		require.True(t, res.Success, res.Error)
		assert.Equal(t, []string{"/tmp/a.txt", "/tmp/b.txt"}, res.FilePaths)

		call := dialogs.lastCall()
		assert.Equal(t, "open", call.kind)
		assert.Equal(t, "Pick", call.opts.Title)
	})

	t.Run("canceled", func(t *testing.T) {
		c, _, _ := newTestController(t)

		res := c.ShowOpenDialog(DialogOptions{})
		assert.False(t, res.Success)
		assert.True(t, res.Canceled)
		assert.Empty(t, res.Error)
	})

	t.Run("directory option", func(t *testing.T) {
		c, dialogs, _ := newTestController(t)
		dialogs.directory = "/tmp/projects"

		res := c.ShowOpenDialog(DialogOptions{Directory: true})
		require.True(t, res.Success)
		assert.Equal(t, []string{"/tmp/projects"}, res.FilePaths)
		assert.Equal(t, "directory", dialogs.lastCall().kind)
	})
}

func TestShowDirectoryDialogForcesDirectoryMode(t *testing.T) {
	c, dialogs, _ := newTestController(t)
	dialogs.directory = "/tmp/out"

	res := c.ShowDirectoryDialog(DialogOptions{Title: "Output folder"})
	require.True(t, res.Success, res.Error)
	assert.Equal(t, []string{"/tmp/out"}, res.FilePaths)

	call := dialogs.lastCall()
	assert.Equal(t, "directory", call.kind)
	assert.True(t, call.opts.Directory)

	dialogs.directory = ""
	res = c.ShowDirectoryDialog(DialogOptions{})
	assert.True(t, res.Canceled)
}

func TestShowSaveDialog(t *testing.T) {
	c, dialogs, _ := newTestController(t)

	res := c.ShowSaveDialog(DialogOptions{DefaultPath: "/tmp/report.txt"})
	assert.True(t, res.Canceled)
	assert.False(t, res.Success)

	dialogs.savePath = "/tmp/report.txt"
	res = c.ShowSaveDialog(DialogOptions{})
	require.True(t, res.Success)
	assert.Equal(t, "/tmp/report.txt", res.FilePath)
}

func TestInvalidDialogOptionsNeverReachHost(t *testing.T) {
	c, dialogs, _ := newTestController(t)

	bad := []DialogOptions{
		{Filters: []FileFilter{{Name: "", Extensions: []string{"txt"}}}},
		{Filters: []FileFilter{{Name: "Text"}}},
		{Filters: []FileFilter{{Name: "Text", Extensions: []string{"../txt"}}}},
		{Filters: []FileFilter{{Name: "Text", Extensions: []string{"t?t"}}}},
	}

	for _, opts := range bad {
		assert.False(t, c.ShowOpenDialog(opts).Success)
		assert.False(t, c.ShowSaveDialog(opts).Success)
		assert.False(t, c.ShowDirectoryDialog(opts).Success)
	}
	assert.Zero(t, dialogs.callCount())
}

func TestHostErrorsBecomeResults(t *testing.T) {
	c, dialogs, _ := newTestController(t)
	dialogs.err = errors.New("dialog subsystem unavailable")

	res := c.ShowOpenDialog(DialogOptions{})
	assert.False(t, res.Success)
	assert.False(t, res.Canceled)
	assert.Equal(t, "dialog subsystem unavailable", res.Error)
}

func TestGuardRecoversPanics(t *testing.T) {
	c, dialogs, _ := newTestController(t)
	dialogs.panicWith = "boom"

	var res Result
	require.NotPanics(t, func() {
		res = c.ShowSaveDialog(DialogOptions{})
	})
	assert.False(t, res.Success)
	assert.Equal(t, OpSaveFileDialog+": boom", res.Error)
}

func TestOpenFolder(t *testing.T) {
	c, _, shell := newTestController(t)
	dir := t.TempDir()

	res := c.OpenFolder(dir)
	require.True(t, res.Success, res.Error)
	assert.Equal(t, []string{dir}, shell.opened)

	res = c.OpenFolder(filepath.Join(dir, "does-not-exist"))
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Error)
	assert.Len(t, shell.opened, 1)

	shell.err = errors.New("no handler")
	res = c.OpenFolder(dir)
	assert.False(t, res.Success)
	assert.Equal(t, "no handler", res.Error)
}

func TestShowItemInFolder(t *testing.T) {
	c, _, shell := newTestController(t)
	path := filepath.Join(t.TempDir(), "item.txt")

	res := c.ShowItemInFolder(path)
	require.True(t, res.Success, res.Error)
	assert.Equal(t, []string{path}, shell.revealed)
}

func TestGetFilePathIsIdentity(t *testing.T) {
	c, _, _ := newTestController(t)

	for _, p := range []string{"", "relative/x", "/abs/path.txt", `C:\Users\me\file.txt`, "./../weird"} {
		assert.Equal(t, p, c.GetFilePath(p))
	}
}

func TestDialogPropertiesMapOntoOptions(t *testing.T) {
	c, dialogs, _ := newTestController(t)
	dialogs.files = []string{"/tmp/a.txt", "/tmp/b.txt"}

	res := c.ShowOpenDialog(DialogOptions{Properties: []string{PropertyOpenFile, PropertyMultiSelections}})
	require.True(t, res.Success, res.Error)
	call := dialogs.lastCall()
	assert.Equal(t, "open", call.kind)
	assert.True(t, call.opts.Multiple)
	assert.Nil(t, call.opts.Properties)

	dialogs.directory = "/tmp/dir"
	res = c.ShowOpenDialog(DialogOptions{Properties: []string{PropertyOpenDirectory, PropertyShowHiddenFiles}})
	require.True(t, res.Success, res.Error)
	call = dialogs.lastCall()
	assert.Equal(t, "directory", call.kind)
	assert.True(t, call.opts.Directory)
	assert.True(t, call.opts.ShowHiddenFiles)

	dialogs.savePath = "/tmp/out.txt"
	res = c.ShowSaveDialog(DialogOptions{Properties: []string{"showOverwriteConfirmation", PropertyShowHiddenFiles}})
	require.True(t, res.Success, res.Error)
	assert.True(t, dialogs.lastCall().opts.ShowHiddenFiles)
}

func TestUnknownDialogPropertyRejected(t *testing.T) {
	c, dialogs, _ := newTestController(t)

	res := c.ShowOpenDialog(DialogOptions{Properties: []string{"openEverything"}})
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "unknown dialog property")
	assert.Zero(t, dialogs.callCount())
}
