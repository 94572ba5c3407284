package openapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/image-processing/pkg/openapi"
)

func TestNewComponents(t *testing.T) {
	c := openapi.NewComponents()

	for _, name := range []string{"Error", "ValidationProblem"} {
		if _, ok := c.Schemas[name]; !ok {
			t.Errorf("missing schema: %s", name)
		}
	}
	for _, name := range []string{"BadRequest", "NotFound", "Validation"} {
		if _, ok := c.Responses[name]; !ok {
			t.Errorf("missing response: %s", name)
		}
	}

	c.AddSchemas(map[string]*openapi.Schema{"File": {Type: "object"}})
	if _, ok := c.Schemas["File"]; !ok {
		t.Error("AddSchemas() did not add File")
	}
}

func TestSpec_AddOperation(t *testing.T) {
	spec := &openapi.Spec{OpenAPI: "3.1.0", Info: &openapi.Info{Title: "t", Version: "1"}}

	get := &openapi.Operation{Summary: "Index"}
	post := &openapi.Operation{Summary: "Upload"}
	spec.AddOperation("/ImageProcessing", http.MethodGet, get)
	spec.AddOperation("/ImageProcessing/Upload", http.MethodPost, post)

	if spec.Paths["/ImageProcessing"].Get != get {
		t.Error("GET operation not attached")
	}
	if spec.Paths["/ImageProcessing/Upload"].Post != post {
		t.Error("POST operation not attached")
	}
}

func TestMarshalJSON_ServeSpec(t *testing.T) {
	spec := &openapi.Spec{
		OpenAPI: "3.1.0",
		Info:    &openapi.Info{Title: "Image Processing API", Version: "0.1.0"},
		Paths: map[string]*openapi.PathItem{
			"/ImageProcessing/Resize": {
				Post: &openapi.Operation{
					Responses: map[int]*openapi.Response{
						200: openapi.ResponseBinary("Cropped image", "image/png", "image/jpeg"),
					},
				},
			},
		},
	}

	data, err := openapi.MarshalJSON(spec)
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}

	w := httptest.NewRecorder()
	openapi.ServeSpec(data)(w, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	var doc map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("served document is not JSON: %v", err)
	}
	if doc["openapi"] != "3.1.0" {
		t.Errorf("openapi = %v, want 3.1.0", doc["openapi"])
	}
}

func TestQueryParam(t *testing.T) {
	p := openapi.QueryParam("sourceX", "integer", "Left edge", true)

	if p.In != "query" || !p.Required || p.Schema.Type != "integer" {
		t.Errorf("QueryParam() = %+v", p)
	}
}
