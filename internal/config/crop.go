package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/docker/go-units"

	"github.com/JaimeStill/image-processing/internal/images"
)

const (
	EnvCropFetchTimeout      = "CROP_FETCH_TIMEOUT"
	EnvCropFetchRetries      = "CROP_FETCH_RETRIES"
	EnvCropRetryInterval     = "CROP_RETRY_INTERVAL"
	EnvCropMaxSourceSize     = "CROP_MAX_SOURCE_SIZE"
	EnvCropMaxDimension      = "CROP_MAX_DIMENSION"
	EnvCropFormat            = "CROP_FORMAT"
	EnvCropQuality           = "CROP_QUALITY"
	EnvCropLegacyContentType = "CROP_LEGACY_CONTENT_TYPE"
)

// CropConfig controls the remote fetch and the output encoding of the Resize endpoint.
type CropConfig struct {
	FetchTimeout  string `toml:"fetch_timeout"`
	FetchRetries  int    `toml:"fetch_retries"`
	RetryInterval string `toml:"retry_interval"`
	MaxSourceSize string `toml:"max_source_size"`
	MaxDimension  int    `toml:"max_dimension"`
	Format        string `toml:"format"`
	Quality       int    `toml:"quality"`

	// LegacyContentType labels every response image/png whatever the encoding.
	// Default: true
	LegacyContentType *bool `toml:"legacy_content_type"`

	maxSourceSizeVal int64
	formatVal        images.ImageFormat
}

func (c *CropConfig) FetchTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.FetchTimeout)
	return d
}

func (c *CropConfig) RetryIntervalDuration() time.Duration {
	d, _ := time.ParseDuration(c.RetryInterval)
	return d
}

// MaxSourceSizeBytes returns the parsed MaxSourceSize. Valid after Finalize.
func (c *CropConfig) MaxSourceSizeBytes() int64 {
	return c.maxSourceSizeVal
}

// ImageFormat returns the parsed output format. Valid after Finalize.
func (c *CropConfig) ImageFormat() images.ImageFormat {
	return c.formatVal
}

func (c *CropConfig) Legacy() bool {
	return c.LegacyContentType == nil || *c.LegacyContentType
}

// Finalize applies defaults, loads environment overrides, and validates the crop configuration.
func (c *CropConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *CropConfig) Merge(overlay *CropConfig) {
	if overlay.FetchTimeout != "" {
		c.FetchTimeout = overlay.FetchTimeout
	}
	if overlay.FetchRetries != 0 {
		c.FetchRetries = overlay.FetchRetries
	}
	if overlay.RetryInterval != "" {
		c.RetryInterval = overlay.RetryInterval
	}
	if overlay.MaxSourceSize != "" {
		c.MaxSourceSize = overlay.MaxSourceSize
	}
	if overlay.MaxDimension != 0 {
		c.MaxDimension = overlay.MaxDimension
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
	if overlay.Quality != 0 {
		c.Quality = overlay.Quality
	}
	if overlay.LegacyContentType != nil {
		c.LegacyContentType = overlay.LegacyContentType
	}
}

func (c *CropConfig) loadDefaults() {
	if c.FetchTimeout == "" {
		c.FetchTimeout = "10s"
	}
	if c.RetryInterval == "" {
		c.RetryInterval = "250ms"
	}
	if c.MaxSourceSize == "" {
		c.MaxSourceSize = "20MB"
	}
	if c.MaxDimension == 0 {
		c.MaxDimension = 8192
	}
	if c.Format == "" {
		c.Format = string(images.JPEG)
	}
	if c.Quality == 0 {
		c.Quality = images.DefaultQuality
	}
}

func (c *CropConfig) loadEnv() {
	if v := os.Getenv(EnvCropFetchTimeout); v != "" {
		c.FetchTimeout = v
	}
	if v := os.Getenv(EnvCropFetchRetries); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.FetchRetries = n
		}
	}
	if v := os.Getenv(EnvCropRetryInterval); v != "" {
		c.RetryInterval = v
	}
	if v := os.Getenv(EnvCropMaxSourceSize); v != "" {
		c.MaxSourceSize = v
	}
	if v := os.Getenv(EnvCropMaxDimension); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxDimension = n
		}
	}
	if v := os.Getenv(EnvCropFormat); v != "" {
		c.Format = v
	}
	if v := os.Getenv(EnvCropQuality); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Quality = n
		}
	}
	if v := os.Getenv(EnvCropLegacyContentType); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.LegacyContentType = &b
		}
	}
}

func (c *CropConfig) validate() error {
	if d, err := time.ParseDuration(c.FetchTimeout); err != nil || d <= 0 {
		return fmt.Errorf("invalid fetch_timeout: %q", c.FetchTimeout)
	}
	if _, err := time.ParseDuration(c.RetryInterval); err != nil {
		return fmt.Errorf("invalid retry_interval: %w", err)
	}
	if c.FetchRetries < 0 {
		return fmt.Errorf("fetch_retries must not be negative")
	}

	size, err := units.FromHumanSize(c.MaxSourceSize)
	if err != nil {
		return fmt.Errorf("invalid max_source_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_source_size must be positive")
	}
	c.maxSourceSizeVal = size

	if c.MaxDimension < 1 {
		return fmt.Errorf("max_dimension must be positive")
	}

	format, err := images.ParseImageFormat(c.Format)
	if err != nil {
		return fmt.Errorf("invalid format: %q", c.Format)
	}
	c.formatVal = format

	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("quality must be between 1 and 100")
	}
	return nil
}
