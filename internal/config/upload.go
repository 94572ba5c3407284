package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/JaimeStill/image-processing/internal/validation"
)

const (
	// EnvUploadPermittedExtensions overrides the permitted extensions (comma-separated).
	EnvUploadPermittedExtensions = "UPLOAD_PERMITTED_EXTENSIONS"
	EnvUploadBoundaryLengthLimit = "UPLOAD_BOUNDARY_LENGTH_LIMIT"
)

// UploadConfig controls which multipart sections the ingest endpoint accepts.
type UploadConfig struct {
	// PermittedExtensions lists accepted extensions with their leading dot.
	// Default: [".txt"]
	PermittedExtensions []string `toml:"permitted_extensions"`
	BoundaryLengthLimit int      `toml:"boundary_length_limit"`
}

// Finalize applies defaults, loads environment overrides, and validates the upload configuration.
// Extensions are normalized to lower case with a leading dot.
func (c *UploadConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	c.normalize()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *UploadConfig) Merge(overlay *UploadConfig) {
	if overlay.PermittedExtensions != nil {
		c.PermittedExtensions = overlay.PermittedExtensions
	}
	if overlay.BoundaryLengthLimit != 0 {
		c.BoundaryLengthLimit = overlay.BoundaryLengthLimit
	}
}

func (c *UploadConfig) loadDefaults() {
	if len(c.PermittedExtensions) == 0 {
		c.PermittedExtensions = []string{".txt"}
	}
	if c.BoundaryLengthLimit == 0 {
		c.BoundaryLengthLimit = validation.DefaultBoundaryLengthLimit
	}
}

func (c *UploadConfig) loadEnv() {
	if v := os.Getenv(EnvUploadPermittedExtensions); v != "" {
		c.PermittedExtensions = strings.Split(v, ",")
	}
	if v := os.Getenv(EnvUploadBoundaryLengthLimit); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.BoundaryLengthLimit = n
		}
	}
}

func (c *UploadConfig) normalize() {
	exts := make([]string, 0, len(c.PermittedExtensions))
	for _, ext := range c.PermittedExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if !slices.Contains(exts, ext) {
			exts = append(exts, ext)
		}
	}
	c.PermittedExtensions = exts
}

func (c *UploadConfig) validate() error {
	if len(c.PermittedExtensions) == 0 {
		return fmt.Errorf("permitted_extensions must not be empty")
	}
	if c.BoundaryLengthLimit < 1 {
		return fmt.Errorf("boundary_length_limit must be positive")
	}
	return nil
}
