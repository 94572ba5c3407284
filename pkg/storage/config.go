package storage

import (
	"fmt"
	"os"

	"github.com/docker/go-units"
)

// Config describes where accepted uploads are written and how large one may be.
type Config struct {
	// FilePath is the directory receiving opaque-named upload blobs.
	// Default: ".data/uploads"
	FilePath string `toml:"file_path"`

	// FileSize is the per-file limit as a human size ("10MB") or a plain byte count.
	FileSize    string `toml:"file_size"`
	fileSizeVal int64
}

type Env struct {
	FilePath string
	FileSize string
}

// FileSizeBytes returns the parsed FileSize. Valid after Finalize.
func (c *Config) FileSizeBytes() int64 {
	return c.fileSizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the storage configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.FilePath != "" {
		c.FilePath = overlay.FilePath
	}
	if size, err := ParseSize(overlay.FileSize); err == nil {
		c.FileSize = overlay.FileSize
		c.fileSizeVal = size
	}
}

// ParseSize accepts a decimal human size such as "10MB" or a bare number of bytes.
func ParseSize(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty size")
	}
	return units.FromHumanSize(s)
}

func (c *Config) loadDefaults() {
	if c.FilePath == "" {
		c.FilePath = ".data/uploads"
	}
	if c.FileSize == "" {
		c.FileSize = "10MB"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.FilePath != "" {
		if v := os.Getenv(env.FilePath); v != "" {
			c.FilePath = v
		}
	}
	if env.FileSize != "" {
		if v := os.Getenv(env.FileSize); v != "" {
			c.FileSize = v
		}
	}
}

func (c *Config) validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("file_path required")
	}

	size, err := ParseSize(c.FileSize)
	if err != nil {
		return fmt.Errorf("invalid file_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("file_size must be positive")
	}
	c.fileSizeVal = size

	return nil
}
