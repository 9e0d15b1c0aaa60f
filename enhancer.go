// Package enhancer sends one-shot "prompt enhancement" requests to a
// configured LLM provider and returns the resulting text.
package enhancer

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
)

// Enhancer is the main entrypoint for enhancing prompts through an LLM
// provider.
//
// Each call resolves its own provider client from the configured factory,
// then either runs the provider's single-shot completion or, when the client
// only speaks streaming chat, reassembles the streamed fragments client-side.
type Enhancer struct {
	factory  Factory
	builders map[string]BuilderFunc

	httpClient   *http.Client
	defaultModel string
	logger       *slog.Logger
}

// New creates a new Enhancer with the given options.
//
// Example usage:
//
//	enh, err := enhancer.New(
//		enhancer.WithClient("openai", openai.Build),
//		enhancer.WithDefaultModel("gpt-4o-mini"),
//	)
func New(opts ...llmOption) (*Enhancer, error) {
	e := Enhancer{
		builders:   make(map[string]BuilderFunc),
		httpClient: http.DefaultClient,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(&e); err != nil {
			return nil, err
		}
	}

	if e.factory == nil {
		e.factory = registry{&e}
	}

	return &e, nil
}

// Enhance sends the prompt text to the provider selected by cfg and returns
// the enhanced text.
//
// The prompt is forwarded verbatim: any template substitution around the
// user's text is the caller's responsibility, before calling Enhance.
//
// Validation failures are reported as ErrNoPrompt and ErrNoConfiguration.
// Factory and provider errors are returned unchanged, with no retry and no
// partial result.
func (e *Enhancer) Enhance(ctx context.Context, cfg Config, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrNoPrompt
	}
	if cfg.IsZero() {
		return "", ErrNoConfiguration
	}

	client, err := e.factory.Build(cfg)
	if err != nil {
		return "", err
	}

	switch c := client.(type) {
	case DirectCompleter:
		e.logger.DebugContext(ctx, "enhancing through single-shot completion",
			slog.String("provider", cfg.Provider))

		return c.CompletePrompt(ctx, prompt)

	case MessageStreamer:
		e.logger.DebugContext(ctx, "enhancing through streaming fallback",
			slog.String("provider", cfg.Provider))

		stream, err := c.CreateMessage(ctx, "", []Message{UserMessage(prompt)})
		if err != nil {
			return "", err
		}

		return CollectText(stream)
	}

	return "", errors.Newf("provider '%s' exposes no completion capability", cfg.Provider)
}

// Enhancer implementation of internal.Adapter, giving provider builders
// access to the environment they are built in.

func (e *Enhancer) DefaultModel() string {
	return e.defaultModel
}

func (e *Enhancer) HttpClient() *http.Client {
	return e.httpClient
}

func (e *Enhancer) Logger() *slog.Logger {
	return e.logger
}
