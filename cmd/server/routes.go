package main

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/image-processing/internal/config"
	"github.com/JaimeStill/image-processing/internal/images"
	"github.com/JaimeStill/image-processing/internal/infrastructure"
	"github.com/JaimeStill/image-processing/internal/uploads"
	"github.com/JaimeStill/image-processing/pkg/lifecycle"
	"github.com/JaimeStill/image-processing/pkg/openapi"
	"github.com/JaimeStill/image-processing/pkg/routes"
	"github.com/JaimeStill/image-processing/web"
)

const basePath = "/ImageProcessing"

// registerRoutes configures all HTTP routes for the service.
func registerRoutes(r routes.System, infra *infrastructure.Infrastructure, domain *Domain, cfg *config.Config) error {
	views, err := web.Templates(basePath)
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}

	uploadHandler := uploads.NewHandler(
		domain.Uploads,
		infra.Logger,
		cfg.API.Pagination,
		uploads.Options{
			PermittedExtensions: cfg.Upload.PermittedExtensions,
			BoundaryLengthLimit: cfg.Upload.BoundaryLengthLimit,
			FileSizeLimit:       cfg.Storage.FileSizeBytes(),
			FilePath:            cfg.Storage.FilePath,
		},
		views,
		web.Layout,
		web.IndexView,
	)
	r.RegisterGroup(uploadHandler.Routes())

	imageHandler := images.NewHandler(domain.Images, infra.Logger, cfg.Crop.Legacy())
	r.RegisterGroup(imageHandler.Routes())

	r.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/healthz",
		Handler: handleHealthCheck,
		OpenAPI: &openapi.Operation{
			Summary: "Health check endpoint",
			Tags:    []string{"Infrastructure"},
			Responses: map[int]*openapi.Response{
				200: {Description: "Service is healthy"},
			},
		},
	})

	r.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/readyz",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			handleReadinessCheck(w, infra.Lifecycle)
		},
		OpenAPI: &openapi.Operation{
			Summary: "Readiness check endpoint",
			Tags:    []string{"Infrastructure"},
			Responses: map[int]*openapi.Response{
				200: {Description: "Service is ready"},
				503: {Description: "Service not ready"},
			},
		},
	})

	components := openapi.NewComponents()
	components.AddSchemas(uploads.Spec.Schemas())
	components.AddSchemas(images.Spec.Schemas())

	spec := generateSpec(r, components, cfg)
	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return fmt.Errorf("marshal spec: %w", err)
	}

	r.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/openapi.json",
		Handler: openapi.ServeSpec(specBytes),
	})

	return nil
}

func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func handleReadinessCheck(w http.ResponseWriter, ready lifecycle.ReadinessChecker) {
	if !ready.Ready() {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("NOT READY"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}
