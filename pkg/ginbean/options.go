package ginbean

import (
	"encoding/json"
	"log/slog"
	"reflect"

	bv "github.com/nakamurakj/bean-validation/pkg/beanvalidator"
)

// Option configures an API.
type Option func(*API)

// WithEvaluator sets the evaluator used for request bodies.
func WithEvaluator(e *bv.Evaluator) Option {
	return func(api *API) {
		if e != nil {
			api.evaluator = e
		}
	}
}

// WithLogger sets the logger for rejected requests and configuration errors.
func WithLogger(l *slog.Logger) Option {
	return func(api *API) {
		if l != nil {
			api.logger = l
		}
	}
}

// WithAPIDescription sets the description shown in the generated document.
func WithAPIDescription(d string) Option {
	return func(api *API) {
		api.info.Description = d
	}
}

// SchemaOption configures an endpoint.
type SchemaOption func(*EndpointSpec)

// WithSummary sets the endpoint summary
func WithSummary(s string) SchemaOption {
	return func(spec *EndpointSpec) {
		spec.Summary = s
	}
}

// WithDescription sets the endpoint description
func WithDescription(d string) SchemaOption {
	return func(spec *EndpointSpec) {
		spec.Description = d
	}
}

// WithTags adds tags to the endpoint
func WithTags(tags ...string) SchemaOption {
	return func(spec *EndpointSpec) {
		spec.Tags = append(spec.Tags, tags...)
	}
}

// WithRequest declares T as the JSON request body. The body is decoded
// into a new T and its declared constraints are evaluated.
func WithRequest[T any]() SchemaOption {
	return func(spec *EndpointSpec) {
		spec.RequestType = reflect.TypeFor[T]()
		spec.decode = func(data []byte) (any, error) {
			obj := new(T)
			if err := json.Unmarshal(data, obj); err != nil {
				return nil, err
			}
			return obj, nil
		}
	}
}

// WithSkipValidation registers the endpoint in the document without
// checking requests.
func WithSkipValidation() SchemaOption {
	return func(spec *EndpointSpec) {
		spec.SkipValidation = true
	}
}
