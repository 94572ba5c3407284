package images

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/image-processing/pkg/handlers"
	"github.com/JaimeStill/image-processing/pkg/routes"
)

// LegacyContentType labels every crop response regardless of its encoding.
const LegacyContentType = "image/png"

// Handler provides the Resize endpoint.
type Handler struct {
	sys    System
	logger *slog.Logger
	legacy bool
}

// NewHandler creates a crop handler. With legacy set, responses carry
// LegacyContentType instead of the MIME type of the actual encoding.
func NewHandler(sys System, logger *slog.Logger, legacy bool) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "images"),
		legacy: legacy,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/ImageProcessing",
		Tags:        []string{"Images"},
		Description: "Remote image crop and scale",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/Resize", Handler: h.Resize, OpenAPI: Spec.Resize},
		},
	}
}

func (h *Handler) Resize(w http.ResponseWriter, r *http.Request) {
	req, err := CropRequestFromQuery(r.URL.Query())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Crop(r.Context(), req)
	if err != nil {
		status := MapHTTPStatus(err)
		if status == http.StatusBadRequest {
			handlers.RespondError(w, h.logger, status, err)
			return
		}
		handlers.RespondStatus(w, h.logger, status, err)
		return
	}

	contentType := result.Format.ContentType()
	if h.legacy {
		contentType = LegacyContentType
	}

	handlers.RespondBinary(w, http.StatusOK, contentType, result.Data)
}
