// Package launchcache remembers which component was last launched from each
// manifest so the picker can start on it.
package launchcache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const fileVersion = "1.0"

// Launch records a single pick.
type Launch struct {
	Component  string    `json:"component"`
	LaunchedAt time.Time `json:"launched_at"`
}

// File is the on-disk layout of the cache.
type File struct {
	Version  string            `json:"version"`
	Launches map[string]Launch `json:"launches"`
}

// Cache persists the last launched component per manifest path.
type Cache struct {
	path     string
	mu       sync.RWMutex
	version  string
	launches map[string]Launch
}

// New creates a Cache backed by path and loads it if the file exists.
func New(path string) (*Cache, error) {
	c := &Cache{
		path:     path,
		version:  fileVersion,
		launches: make(map[string]Launch),
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	if err := c.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return c, nil
}

// DefaultPath returns ~/.rnmanifest/launches.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".rnmanifest", "launches.json"), nil
}

// Load reads the cache from disk, replacing in-memory entries.
func (c *Cache) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.path)
	if err != nil {
		return err
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse launch cache: %w", err)
	}

	c.version = file.Version
	c.launches = file.Launches
	if c.launches == nil {
		c.launches = make(map[string]Launch)
	}

	return nil
}

// Save writes the cache to disk atomically.
func (c *Cache) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := json.MarshalIndent(File{Version: c.version, Launches: c.launches}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal launch cache: %w", err)
	}

	tmpPath := c.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, c.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// Get returns the last launch recorded for a manifest.
func (c *Cache) Get(manifestPath string) (Launch, bool) {
	key := normalize(manifestPath)

	c.mu.RLock()
	defer c.mu.RUnlock()

	launch, ok := c.launches[key]
	return launch, ok
}

// Set records a launch for a manifest.
func (c *Cache) Set(manifestPath string, launch Launch) {
	key := normalize(manifestPath)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.launches[key] = launch
}

// Forget drops the entry for a manifest.
func (c *Cache) Forget(manifestPath string) {
	key := normalize(manifestPath)

	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.launches, key)
}

func normalize(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
