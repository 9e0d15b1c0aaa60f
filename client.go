package enhancer

import "context"

// ModelDescriptor describes the model a client was resolved for.
type ModelDescriptor struct {
	Id             string
	ContextWindow  int
	MaxTokens      int
	SupportsImages bool
}

// Client is a handle to a configured LLM provider.
//
// A usable client implements at least one of the two completion capabilities
// below. Which one a call exercises is decided once per call, with
// DirectCompleter taking precedence, and never both.
type Client interface {
	Model() ModelDescriptor
}

// DirectCompleter is a client exposing a single-shot completion method that
// returns the final text after full generation.
type DirectCompleter interface {
	Client

	// CompletePrompt sends the prompt text exactly as given and returns the
	// completed text.
	CompletePrompt(ctx context.Context, prompt string) (string, error)
}

// MessageStreamer is a client that only exposes streaming chat. The enhanced
// text is reassembled client-side from the stream it returns.
type MessageStreamer interface {
	Client

	// CreateMessage opens a one-shot streaming generation for the given
	// system prompt and messages.
	CreateMessage(ctx context.Context, system string, messages []Message) (Stream, error)
}

// Factory resolves a configuration into a provider client.
//
// Resolution is synchronous and may fail; its errors surface to the caller of
// Enhance unchanged.
type Factory interface {
	Build(cfg Config) (Client, error)
}
