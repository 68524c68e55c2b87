// Package fileio keeps document reads and attachment saves behind one small
// surface so workflow commands stay platform-agnostic.
package fileio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadDocument reads an uploadable document and returns its bytes and base
// name. Only PDF documents are accepted, matching the backend's parser.
func ReadDocument(path string) ([]byte, string, error) {
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return nil, "", fmt.Errorf("unsupported document type: %s (only PDF is accepted)", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read document: %w", err)
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("document is empty: %s", path)
	}

	return data, filepath.Base(path), nil
}

// SaveAttachment writes downloaded bytes into dir under the server-provided
// filename, picking a numbered variant instead of overwriting an existing file.
// Returns the path actually written.
func SaveAttachment(dir, filename string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	target := filepath.Join(dir, filepath.Base(filename))
	ext := filepath.Ext(target)
	stem := strings.TrimSuffix(target, ext)

	for i := 1; ; i++ {
		if _, err := os.Stat(target); os.IsNotExist(err) {
			break
		}
		target = fmt.Sprintf("%s (%d)%s", stem, i, ext)
	}

	if err := os.WriteFile(target, data, 0644); err != nil {
		return "", fmt.Errorf("failed to save attachment: %w", err)
	}
	return target, nil
}
