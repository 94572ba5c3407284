package main

import (
	"github.com/JaimeStill/image-processing/internal/config"
	"github.com/JaimeStill/image-processing/internal/images"
	"github.com/JaimeStill/image-processing/internal/infrastructure"
	"github.com/JaimeStill/image-processing/internal/uploads"
)

// Domain holds the business systems behind the HTTP handlers.
type Domain struct {
	Uploads uploads.System
	Images  images.System
}

// NewDomain wires each domain system to the shared infrastructure.
func NewDomain(infra *infrastructure.Infrastructure, cfg *config.Config) *Domain {
	fetcher := images.NewFetcher(images.FetchOptions{
		Timeout:       cfg.Crop.FetchTimeoutDuration(),
		Retries:       cfg.Crop.FetchRetries,
		RetryInterval: cfg.Crop.RetryIntervalDuration(),
		MaxSize:       cfg.Crop.MaxSourceSizeBytes(),
	})

	return &Domain{
		Uploads: uploads.New(
			infra.Database.Connection(),
			infra.Storage,
			infra.Logger,
			cfg.API.Pagination,
		),
		Images: images.New(
			fetcher,
			images.Options{
				MaxDimension: cfg.Crop.MaxDimension,
				Format:       cfg.Crop.ImageFormat(),
				Quality:      cfg.Crop.Quality,
			},
			infra.Logger,
		),
	}
}
