package enhancer

import (
	"log/slog"
	"net/http"

	"github.com/cockroachdb/errors"
)

type llmOption func(*Enhancer) error

// WithClient registers a provider builder under a name matched against
// Config.Provider.
func WithClient(name string, build BuilderFunc) llmOption {
	return func(e *Enhancer) error {
		if name == "" {
			return errors.New("provider name cannot be empty")
		}

		e.builders[name] = build

		return nil
	}
}

// WithFactory replaces the built-in provider registry wholesale.
func WithFactory(factory Factory) llmOption {
	return func(e *Enhancer) error {
		e.factory = factory

		return nil
	}
}

// WithDefaultModel sets the model used when a configuration does not name one.
func WithDefaultModel(model string) llmOption {
	return func(e *Enhancer) error {
		e.defaultModel = model

		return nil
	}
}

// WithHttpClient sets the *http.Client handed to provider builders.
func WithHttpClient(client *http.Client) llmOption {
	return func(e *Enhancer) error {
		e.httpClient = client

		return nil
	}
}

// WithLogger sets the logger used for dispatch decisions.
//
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) llmOption {
	return func(e *Enhancer) error {
		if logger != nil {
			e.logger = logger
		}

		return nil
	}
}
