package openapi

// NewComponents returns the shared schemas and responses every document carries.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"Error": {
				Type: "object",
				Properties: map[string]*Schema{
					"error": {Type: "string"},
				},
			},
			"ValidationProblem": {
				Type:        "object",
				Description: "Field name mapped to its validation messages",
				AdditionalProperties: &Schema{
					Type:  "array",
					Items: &Schema{Type: "string"},
				},
				Example: map[string][]string{"File": {"The file type isn't permitted"}},
			},
		},
		Responses: map[string]*Response{
			"BadRequest": ResponseJSON("Invalid request", "Error"),
			"NotFound":   {Description: "Resource not found"},
			"Validation": ResponseJSON("Validation failed", "ValidationProblem"),
		},
	}
}

// AddSchemas merges schemas into the components, replacing existing names.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	for name, schema := range schemas {
		c.Schemas[name] = schema
	}
}

// AddResponses merges responses into the components, replacing existing names.
func (c *Components) AddResponses(responses map[string]*Response) {
	for name, response := range responses {
		c.Responses[name] = response
	}
}
