// Package handlers provides HTTP response utilities shared by every endpoint.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
)

// RespondJSON writes a JSON response with the given status code and data.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError logs the error and writes {"error": "<message>"}.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	logger.Error("handler error", "error", err, "status", status)
	RespondJSON(w, status, map[string]string{"error": err.Error()})
}

// RespondStatus logs err and writes {"error": "<status text>"}. The cause never
// reaches the client.
func RespondStatus(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	logger.Error("handler error", "error", err, "status", status)
	RespondJSON(w, status, map[string]string{"error": http.StatusText(status)})
}

// RespondValidation writes a 400 whose body maps each field to its messages,
// e.g. {"File": ["The file is empty"]}.
func RespondValidation(w http.ResponseWriter, logger *slog.Logger, errs map[string][]string) {
	logger.Warn("validation failed", "errors", errs)
	RespondJSON(w, http.StatusBadRequest, errs)
}

// RespondBinary writes data verbatim with an explicit content type and length.
func RespondBinary(w http.ResponseWriter, status int, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(status)
	w.Write(data)
}
