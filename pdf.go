package main

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"rsc.io/pdf"
)

// SavePDF asks the user for a destination and writes the base64 encoded PDF there.
// On success the destination becomes the last saved PDF path.
func (c *Controller) SavePDF(pdfData, fileName, defaultPath string) Result {
	return c.guard(OpSavePDF, func() (Result, error) {
		target, err := c.dialogs.SaveFile(DialogOptions{
			Title:       PDFDialogTitle,
			DefaultPath: c.suggestPDFPath(fileName, defaultPath),
			Filters: []FileFilter{
				{Name: PDFFilterName, Extensions: []string{PDFExtension}},
			},
		})
		if err != nil {
			return Result{}, err
		}
		if target == "" {
			return canceledResult(), nil
		}

		content, err := decodePDFPayload(pdfData)
		if err != nil {
			return Result{}, err
		}
		if err := os.WriteFile(target, content, FileMode); err != nil {
			return Result{}, err
		}

		c.state.set(target)
		c.log.Info().Str("path", target).Int("bytes", len(content)).Msg("PDF saved")

		return Result{Success: true, FilePath: target, Pages: countPDFPages(content)}, nil
	})
}

// suggestPDFPath resolves the default location shown in the save dialog
func (c *Controller) suggestPDFPath(fileName, defaultPath string) string {
	if defaultPath == "" {
		if c.pdfDirectory != nil {
			if dir := c.pdfDirectory(); dir != "" && fileName != "" {
				return filepath.Join(dir, fileName)
			}
		}
		return fileName
	}

	if fileName != "" {
		if info, err := os.Stat(defaultPath); err == nil && info.IsDir() {
			return filepath.Join(defaultPath, fileName)
		}
	}
	return defaultPath
}

// decodePDFPayload decodes padded or unpadded standard base64
func decodePDFPayload(data string) ([]byte, error) {
	data = strings.TrimSpace(data)

	content, err := base64.StdEncoding.DecodeString(data)
	if err == nil {
		return content, nil
	}
	if raw, rawErr := base64.RawStdEncoding.DecodeString(data); rawErr == nil {
		return raw, nil
	}
	return nil, fmt.Errorf("failed to decode PDF data: %w", err)
}

// countPDFPages returns the page count of a PDF document, or 0 when the
// content cannot be parsed as one.
func countPDFPages(content []byte) (pages int) {
	defer func() {
		// rsc.io/pdf panics on some malformed documents
		if r := recover(); r != nil {
			pages = 0
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return 0
	}
	return reader.NumPage()
}
