package internal

import (
	"log/slog"
	"net/http"
)

// Adapter defines the interface for internal configuration and utility
// methods that provider builders can access from the main enhancer.
type Adapter interface {
	// DefaultModel returns the model used when a configuration names none.
	DefaultModel() string
	// HttpClient returns the *http.Client instance used for making HTTP requests.
	HttpClient() *http.Client
	// Logger returns the logger configured on the enhancer.
	Logger() *slog.Logger
}
