package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/image-processing/pkg/handlers"
	"github.com/JaimeStill/image-processing/pkg/logging"
)

func TestRespondJSON(t *testing.T) {
	w := httptest.NewRecorder()
	handlers.RespondJSON(w, http.StatusOK, map[string]int{"total": 3})

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/json")
	}
	if strings.TrimSpace(w.Body.String()) != `{"total":3}` {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestRespondError(t *testing.T) {
	var logs bytes.Buffer
	logger := logging.NewWithWriter(&logging.Config{Level: logging.LevelInfo, Format: logging.FormatText}, &logs)

	w := httptest.NewRecorder()
	handlers.RespondError(w, logger, http.StatusNotFound, errors.New("image not found"))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "image not found" {
		t.Errorf("error = %q, want %q", body["error"], "image not found")
	}
	if !strings.Contains(logs.String(), "handler error") {
		t.Error("RespondError did not log")
	}
}

func TestRespondStatus(t *testing.T) {
	var logs bytes.Buffer
	logger := logging.NewWithWriter(&logging.Config{Level: logging.LevelInfo, Format: logging.FormatText}, &logs)

	w := httptest.NewRecorder()
	handlers.RespondStatus(w, logger, http.StatusNotFound, errors.New("dial tcp 10.0.0.7:8443: connection refused"))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if strings.Contains(w.Body.String(), "10.0.0.7") {
		t.Errorf("body = %q, want cause withheld", w.Body.String())
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "Not Found" {
		t.Errorf("error = %q, want %q", body["error"], "Not Found")
	}
	if !strings.Contains(logs.String(), "10.0.0.7") {
		t.Error("RespondStatus did not log the cause")
	}
}

func TestRespondValidation(t *testing.T) {
	w := httptest.NewRecorder()
	handlers.RespondValidation(w, logging.Discard(), map[string][]string{"File": {"The file is empty"}})

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}

	var body map[string][]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body["File"]) != 1 || body["File"][0] != "The file is empty" {
		t.Errorf("File = %v", body["File"])
	}
}

func TestRespondBinary(t *testing.T) {
	w := httptest.NewRecorder()
	data := []byte{0xff, 0xd8, 0xff}
	handlers.RespondBinary(w, http.StatusOK, "image/png", data)

	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want %q", ct, "image/png")
	}
	if cl := w.Header().Get("Content-Length"); cl != "3" {
		t.Errorf("Content-Length = %q, want %q", cl, "3")
	}
	if !bytes.Equal(w.Body.Bytes(), data) {
		t.Errorf("body = %v, want %v", w.Body.Bytes(), data)
	}
}
