package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// LoadSource reads and decodes the source document
func LoadSource(path string, logger *zap.Logger) (*SourceDocument, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Warn("Error closing source file", zap.String("path", path), zap.Error(err))
		}
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc SourceDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	logger.Debug("Loaded source document",
		zap.String("path", path),
		zap.Int("bytes", len(data)),
		zap.Int("containers", len(doc.Containers)))
	return &doc, nil
}

// WriteOutput replaces path with data through a temp file and rename
func WriteOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, DirPermissions); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	tmpFile := path + TmpSuffix
	if err := os.WriteFile(tmpFile, data, FilePermissions); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmpFile, err)
	}

	if err := os.Rename(tmpFile, path); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// ReadOutput reads a previously written CSV file
func ReadOutput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read output: %w", err)
	}
	return data, nil
}
