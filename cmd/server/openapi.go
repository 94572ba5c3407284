package main

import (
	"github.com/JaimeStill/image-processing/internal/config"
	"github.com/JaimeStill/image-processing/pkg/openapi"
	"github.com/JaimeStill/image-processing/pkg/routes"
)

// generateSpec builds the document from every registered route that carries an operation.
// Group tags apply to operations that declare none of their own.
func generateSpec(rs routes.System, components *openapi.Components, cfg *config.Config) *openapi.Spec {
	spec := &openapi.Spec{
		OpenAPI: "3.1.0",
		Info: &openapi.Info{
			Title:       cfg.API.OpenAPI.Title,
			Version:     cfg.Version,
			Description: cfg.API.OpenAPI.Description,
		},
		Components: components,
		Paths:      make(map[string]*openapi.PathItem),
	}

	for _, group := range rs.Groups() {
		processGroup(spec, "", group)
	}

	for _, route := range rs.Routes() {
		if route.OpenAPI == nil {
			continue
		}
		spec.AddOperation(route.Pattern, route.Method, route.OpenAPI)
	}

	return spec
}

func processGroup(spec *openapi.Spec, parentPrefix string, group routes.Group) {
	prefix := parentPrefix + group.Prefix

	for _, route := range group.Routes {
		if route.OpenAPI == nil {
			continue
		}

		op := route.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = group.Tags
		}

		spec.AddOperation(prefix+route.Pattern, route.Method, op)
	}

	for _, child := range group.Children {
		processGroup(spec, prefix, child)
	}
}
