package beanvalidator

import "log/slog"

// EvaluatorOption configures an Evaluator.
type EvaluatorOption interface {
	apply(*Evaluator)
}

type optionFunc func(*Evaluator)

func (f optionFunc) apply(e *Evaluator) { f(e) }

// WithLogger sets the logger used for debug tracing of each constraint.
// A nil logger keeps the default, which discards everything.
func WithLogger(logger *slog.Logger) EvaluatorOption {
	return optionFunc(func(e *Evaluator) {
		if logger != nil {
			e.logger = logger
		}
	})
}
