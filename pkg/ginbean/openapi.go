package ginbean

import (
	"encoding/json"
	"net/http"
	"reflect"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nakamurakj/bean-validation/pkg/beanvalidator/schema"
	"github.com/nakamurakj/bean-validation/pkg/logger"
)

var errorResponseType = reflect.TypeFor[ErrorResponse]()

// SchemaHandler returns a handler that serves the OpenAPI document.
func (api *API) SchemaHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := api.GenerateOpenAPI()
		if err != nil {
			api.logger.Error("failed to generate schema document", logger.Error(err))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to generate schema document"})
			return
		}
		c.JSON(http.StatusOK, doc)
	}
}

// GenerateOpenAPI generates an OpenAPI 3.1 document of the registered
// endpoints. Request bodies carry their constraints as JSON Schema.
func (api *API) GenerateOpenAPI() (map[string]any, error) {
	api.mu.RLock()
	defer api.mu.RUnlock()

	errorSchema, err := schema.GenerateForType(errorResponseType)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(api.endpoints))
	for k := range api.endpoints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	paths := make(map[string]any)
	for _, key := range keys {
		endpoint := api.endpoints[key]
		openAPIPath := ConvertGinPathToOpenAPI(endpoint.Path)
		pathItem, _ := paths[openAPIPath].(map[string]any)
		if pathItem == nil {
			pathItem = make(map[string]any)
			paths[openAPIPath] = pathItem
		}
		op, err := buildOperation(endpoint, openAPIPath, errorSchema)
		if err != nil {
			return nil, err
		}
		pathItem[strings.ToLower(endpoint.Method)] = op
	}

	return map[string]any{
		"openapi": "3.1.0",
		"info": map[string]any{
			"title":       api.info.Title,
			"version":     api.info.Version,
			"description": api.info.Description,
		},
		"paths": paths,
	}, nil
}

// MarshalOpenAPI returns the OpenAPI document as JSON bytes
func (api *API) MarshalOpenAPI() ([]byte, error) {
	doc, err := api.GenerateOpenAPI()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(doc, "", "  ")
}

func buildOperation(endpoint *EndpointSpec, openAPIPath string, errorSchema any) (map[string]any, error) {
	op := make(map[string]any)
	if endpoint.Summary != "" {
		op["summary"] = endpoint.Summary
	}
	if endpoint.Description != "" {
		op["description"] = endpoint.Description
	}
	if len(endpoint.Tags) > 0 {
		op["tags"] = endpoint.Tags
	}

	if names := ExtractPathParameters(openAPIPath); len(names) > 0 {
		params := make([]any, 0, len(names))
		for _, name := range names {
			params = append(params, map[string]any{
				"name":     name,
				"in":       "path",
				"required": true,
				"schema":   map[string]any{"type": "string"},
			})
		}
		op["parameters"] = params
	}

	responses := map[string]any{
		"200": map[string]any{"description": "OK"},
	}
	if endpoint.RequestType != nil {
		body, err := schema.GenerateForType(endpoint.RequestType)
		if err != nil {
			return nil, err
		}
		op["requestBody"] = map[string]any{
			"required": true,
			"content":  jsonContent(body),
		}
		responses["400"] = map[string]any{"description": "Malformed request body", "content": jsonContent(errorSchema)}
		if !endpoint.SkipValidation {
			responses["422"] = map[string]any{"description": "Constraint violations", "content": jsonContent(errorSchema)}
		}
	}
	op["responses"] = responses
	return op, nil
}

func jsonContent(s any) map[string]any {
	return map[string]any{"application/json": map[string]any{"schema": s}}
}

// ConvertGinPathToOpenAPI converts Gin path format to OpenAPI format
// e.g., /members/:id -> /members/{id}
func ConvertGinPathToOpenAPI(ginPath string) string {
	segments := strings.Split(ginPath, "/")
	for i, seg := range segments {
		if len(seg) > 1 && (seg[0] == ':' || seg[0] == '*') {
			segments[i] = "{" + seg[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}

// ExtractPathParameters extracts parameter names from an OpenAPI path
// e.g., /members/{id}/orders/{orderId} -> ["id", "orderId"]
func ExtractPathParameters(path string) []string {
	var params []string
	for _, seg := range strings.Split(path, "/") {
		if len(seg) > 2 && strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			params = append(params, seg[1:len(seg)-1])
		}
	}
	return params
}
