package enhancer

import "github.com/cockroachdb/errors"

// Validation failures raised before any provider client is resolved.
// Callers match on the message text, so it must stay stable.
var (
	ErrNoPrompt        = errors.New("No prompt text provided")
	ErrNoConfiguration = errors.New("No valid API configuration provided")
)
