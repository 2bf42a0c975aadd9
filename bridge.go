package main

import "runtime"

// BridgeMethods lists every capability the webview can invoke.
// Bridge must export exactly these methods and nothing else.
var BridgeMethods = []string{
	"ShowOpenDialog",
	"ShowSaveDialog",
	"ShowDirectoryDialog",
	"ReadFile",
	"WriteFile",
	"OpenFolder",
	"ShowItemInFolder",
	"GetFilePath",
	"SavePDF",
	"GetLastPDFPath",
	"OpenPDFLocation",
	"Platform",
}

// Bridge is the only value bound into the webview. Each method forwards
// to the controller without adding logic of its own.
type Bridge struct {
	controller *Controller
}

// NewBridge creates the bridge surface for a controller
func NewBridge(controller *Controller) *Bridge {
	return &Bridge{controller: controller}
}

// File dialogs

// ShowOpenDialog shows a native open dialog
func (b *Bridge) ShowOpenDialog(options DialogOptions) Result {
	return b.controller.ShowOpenDialog(options)
}

// ShowSaveDialog shows a native save dialog
func (b *Bridge) ShowSaveDialog(options DialogOptions) Result {
	return b.controller.ShowSaveDialog(options)
}

// ShowDirectoryDialog shows a native directory picker
func (b *Bridge) ShowDirectoryDialog(options DialogOptions) Result {
	return b.controller.ShowDirectoryDialog(options)
}

// File operations

// ReadFile reads a UTF-8 text file
func (b *Bridge) ReadFile(filePath string) Result {
	return b.controller.ReadTextFile(filePath)
}

// WriteFile writes a text file, creating parent directories
func (b *Bridge) WriteFile(filePath, data string) Result {
	return b.controller.WriteTextFile(filePath, data)
}

// Folder operations

// OpenFolder opens a path with the OS default handler
func (b *Bridge) OpenFolder(folderPath string) Result {
	return b.controller.OpenFolder(folderPath)
}

// ShowItemInFolder reveals a file in the OS file browser
func (b *Bridge) ShowItemInFolder(filePath string) Result {
	return b.controller.ShowItemInFolder(filePath)
}

// GetFilePath returns the path unchanged
func (b *Bridge) GetFilePath(filePath string) string {
	return b.controller.GetFilePath(filePath)
}

// PDF operations

// SavePDF asks for a destination and writes the base64 encoded PDF there
func (b *Bridge) SavePDF(pdfData, fileName, defaultPath string) Result {
	return b.controller.SavePDF(pdfData, fileName, defaultPath)
}

// GetLastPDFPath returns the last saved PDF path, or "" before any save
func (b *Bridge) GetLastPDFPath() string {
	return b.controller.GetLastPDFPath()
}

// OpenPDFLocation reveals the last saved PDF in the OS file browser
func (b *Bridge) OpenPDFLocation() Result {
	return b.controller.OpenPDFLocation()
}

// Platform returns the Node.js style platform identifier
func (b *Bridge) Platform() string {
	return platformName(runtime.GOOS)
}
