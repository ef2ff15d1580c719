package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func validateManifestPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("manifest path is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve manifest path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("manifest file does not exist: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("manifest path %s is a directory", abs)
	}

	return abs, nil
}
