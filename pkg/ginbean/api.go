// Package ginbean validates gin request bodies against declared bean
// constraints and publishes the constraints as an OpenAPI document.
package ginbean

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"sync"

	"github.com/gin-gonic/gin"

	bv "github.com/nakamurakj/bean-validation/pkg/beanvalidator"
	"github.com/nakamurakj/bean-validation/pkg/logger"
)

const validatedKey = "validated_request"

// API holds the registered endpoints.
type API struct {
	mu        sync.RWMutex
	endpoints map[string]*EndpointSpec // key: "METHOD /path"
	info      APIInfo
	evaluator *bv.Evaluator
	logger    *slog.Logger
}

type APIInfo struct {
	Title       string
	Version     string
	Description string
}

type EndpointSpec struct {
	Method         string
	Path           string
	Summary        string
	Description    string
	Tags           []string
	SkipValidation bool
	RequestType    reflect.Type

	decode func([]byte) (any, error)
}

// ViolationResponse is one entry of a 422 response.
type ViolationResponse struct {
	Code    string `json:"code"`
	Type    string `json:"type"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every rejected request.
type ErrorResponse struct {
	Error      string              `json:"error"`
	Details    string              `json:"details,omitempty"`
	Violations []ViolationResponse `json:"violations,omitempty"`
}

// New creates a new API instance
func New(title, version string, opts ...Option) *API {
	api := &API{
		endpoints: make(map[string]*EndpointSpec),
		info:      APIInfo{Title: title, Version: version},
		evaluator: bv.NewEvaluator(),
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(api)
	}
	return api
}

// Body registers method and path with T as the request body and returns
// middleware that rejects requests whose body violates T's constraints.
//
//	router.POST("/members", ginbean.Body[Member](api, "POST", "/members"), createMember)
func Body[T any](api *API, method, path string, opts ...SchemaOption) gin.HandlerFunc {
	return api.Endpoint(method, path, append(opts, WithRequest[T]())...)
}

// Endpoint registers an endpoint and returns its validating middleware.
func (api *API) Endpoint(method, path string, opts ...SchemaOption) gin.HandlerFunc {
	spec := &EndpointSpec{Method: method, Path: path}
	for _, opt := range opts {
		opt(spec)
	}

	api.mu.Lock()
	api.endpoints[method+" "+path] = spec
	api.mu.Unlock()

	return func(c *gin.Context) {
		if spec.SkipValidation || spec.decode == nil {
			c.Next()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
			return
		}
		obj, err := spec.decode(body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON", Details: err.Error()})
			return
		}

		violations, err := api.evaluator.Validate(obj)
		if err != nil {
			api.handleError(c, spec, err)
			return
		}
		if len(violations) > 0 {
			api.logger.Debug("request rejected",
				slog.String("endpoint", method+" "+path),
				slog.Any("fields", violations.Fields()))
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error:      "validation failed",
				Violations: toResponse(violations),
			})
			return
		}

		c.Set(validatedKey, obj)
		c.Next()
	}
}

func (api *API) handleError(c *gin.Context, spec *EndpointSpec, err error) {
	status := http.StatusInternalServerError
	msg := "constraint configuration error"
	if bv.IsArgumentError(err) && !errors.Is(err, bv.ErrNotBean) {
		status, msg = http.StatusBadRequest, "request body is required"
	}
	level := slog.LevelError
	if status < http.StatusInternalServerError {
		level = slog.LevelWarn
	}
	api.logger.Log(c.Request.Context(), level, "request validation failed",
		slog.String("endpoint", spec.Method+" "+spec.Path),
		logger.Error(err))
	c.AbortWithStatusJSON(status, ErrorResponse{Error: msg})
}

func toResponse(vs bv.Violations) []ViolationResponse {
	out := make([]ViolationResponse, len(vs))
	for i, v := range vs {
		out[i] = ViolationResponse{
			Code:    v.ErrorCode(),
			Type:    v.Constraint.String(),
			Field:   v.Field,
			Message: v.Message,
		}
	}
	return out
}

// GetValidated retrieves the validated request body stored by Body or Endpoint.
func GetValidated[T any](c *gin.Context) (*T, bool) {
	val, exists := c.Get(validatedKey)
	if !exists {
		return nil, false
	}
	typed, ok := val.(*T)
	return typed, ok
}
