package routes

import (
	"net/http"

	"github.com/JaimeStill/image-processing/pkg/openapi"
)

// Route binds a method and pattern to a handler. OpenAPI is optional; routes without it
// are served but left out of the generated document.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}
