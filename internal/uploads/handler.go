package uploads

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/JaimeStill/image-processing/internal/validation"
	"github.com/JaimeStill/image-processing/pkg/handlers"
	"github.com/JaimeStill/image-processing/pkg/pagination"
	"github.com/JaimeStill/image-processing/pkg/routes"
	"github.com/JaimeStill/image-processing/pkg/web"
	"github.com/google/uuid"
)

// Options carries the ingest limits the handler enforces.
type Options struct {
	PermittedExtensions []string
	BoundaryLengthLimit int
	FileSizeLimit       int64
	FilePath            string
}

// Handler provides the ImageProcessing upload endpoints and index view.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
	opts       Options
	views      *web.TemplateSet
	layout     string
	index      string
}

// NewHandler creates an upload handler. views renders the index through layout.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config, opts Options, views *web.TemplateSet, layout, index string) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "uploads"),
		pagination: pagination,
		opts:       opts,
		views:      views,
		layout:     layout,
		index:      index,
	}
}

// Routes returns the upload routes. The group prefix is shared with the crop handler.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/ImageProcessing",
		Tags:        []string{"Uploads"},
		Description: "Validated multipart file ingest",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Index, OpenAPI: Spec.Index},
			{Method: "POST", Pattern: "/Upload", Handler: h.Upload, OpenAPI: Spec.Upload},
			{Method: "GET", Pattern: "/Files", Handler: h.List, OpenAPI: Spec.List},
			{Method: "GET", Pattern: "/Files/{id}", Handler: h.Find, OpenAPI: Spec.Find},
			{Method: "GET", Pattern: "/Files/{id}/Content", Handler: h.Content, OpenAPI: Spec.Content},
		},
	}
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)

	result, err := h.sys.List(r.Context(), page)
	if err != nil {
		handlers.RespondStatus(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	data := web.PageData{Title: "Image Processing", Data: result}
	if err := h.views.Render(w, h.layout, h.index, data); err != nil {
		h.logger.Error("render index failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)

	result, err := h.sys.List(r.Context(), page)
	if err != nil {
		handlers.RespondStatus(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find handles GET /ImageProcessing/Files/{id} and returns the record metadata.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondStatus(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Content handles GET /ImageProcessing/Files/{id}/Content and returns the stored
// bytes as an attachment named after the original file.
func (h *Handler) Content(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	file, err := h.sys.Content(r.Context(), id)
	if err != nil {
		handlers.RespondStatus(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.FileName}))
	handlers.RespondBinary(w, http.StatusOK, "application/octet-stream", file.Content)
}

// Upload streams the multipart body section by section. Every file section is
// validated and committed before the next one is read; a rejected section ends
// the request without undoing earlier sections.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")
	if !validation.IsMultipart(contentType) {
		h.reject(w, validation.MsgNotMultipart)
		return
	}

	boundary, err := validation.ExtractBoundary(contentType, h.opts.BoundaryLengthLimit)
	if err != nil {
		h.logger.Debug("boundary rejected", "error", err)
		h.reject(w, validation.MsgNotMultipart)
		return
	}

	reader := multipart.NewReader(r.Body, boundary)

	for {
		part, err := reader.NextRawPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			h.logger.Debug("read section failed", "error", err)
			h.reject(w, validation.MsgUploadFailed)
			return
		}

		status, errs, err := h.section(r, part)
		part.Close()

		if err != nil {
			handlers.RespondStatus(w, h.logger, status, err)
			return
		}
		if !errs.Valid() {
			handlers.RespondValidation(w, h.logger, errs)
			return
		}
	}

	w.WriteHeader(http.StatusCreated)
}

// section processes one multipart section. It returns validation errors for a
// client fault or a status and error for a server fault.
func (h *Handler) section(r *http.Request, part *multipart.Part) (int, validation.Errors, error) {
	header := part.Header.Get("Content-Disposition")
	if header == "" {
		h.logger.Debug("section without content-disposition skipped")
		return 0, nil, nil
	}

	d, err := validation.ParseDisposition(header)
	if err != nil {
		h.logger.Debug("content-disposition rejected", "error", err)
		return 0, validation.Single(validation.FieldFile, validation.MsgMalformedSection), nil
	}

	if validation.IsPlainFormField(d) {
		return 0, validation.Single(validation.FieldFile, validation.MsgPlainField), nil
	}

	storageName, err := NewStorageName()
	if err != nil {
		return http.StatusInternalServerError, nil, err
	}

	data, errs := validation.ReadAndValidateSection(part, d, h.opts.PermittedExtensions, h.opts.FileSizeLimit)
	if !errs.Valid() {
		return 0, errs, nil
	}

	file, err := h.sys.Create(r.Context(), CreateCommand{
		FileName:    d.FileName,
		StorageName: storageName,
		Content:     data,
	})
	if err != nil {
		if errors.Is(err, ErrStoreFailed) {
			h.logger.Error("store section failed", "display_name", d.DisplayName(), "error", err)
			return 0, validation.Single(validation.FieldFile, validation.MsgUploadFailed), nil
		}
		return MapHTTPStatus(err), nil, err
	}

	h.logger.Info("uploaded file",
		"display_name", d.DisplayName(),
		"file_path", h.opts.FilePath,
		"storage_name", storageName,
		"id", file.ID,
		"size", file.Size,
	)
	return 0, nil, nil
}

func (h *Handler) reject(w http.ResponseWriter, msg string) {
	handlers.RespondValidation(w, h.logger, validation.Single(validation.FieldFile, msg))
}
