package main

import (
	"github.com/JaimeStill/image-processing/internal/config"
	"github.com/JaimeStill/image-processing/internal/infrastructure"
	"github.com/JaimeStill/image-processing/pkg/middleware"
)

func buildMiddleware(infra *infrastructure.Infrastructure, cfg *config.Config) middleware.System {
	mw := middleware.New()
	mw.Use(middleware.TrimSlash())
	mw.Use(middleware.CORS(&cfg.API.CORS))
	mw.Use(middleware.Logger(infra.Logger))
	return mw
}
