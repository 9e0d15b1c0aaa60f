package aistudio

import (
	"context"
	"io"
	"iter"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"google.golang.org/genai"

	enhancer "github.com/promptforge/enhancer"
	"github.com/promptforge/enhancer/internal"
)

// AiStudio is a streaming-only chat client over the Gemini API. It exposes no
// single-shot completion method, so the enhancer reassembles its stream
// client-side.
type AiStudio struct {
	client *genai.Client
	model  string

	backend  genai.Backend
	project  string
	location string
}

// Build resolves a configuration into an AI Studio client with no provider
// options. It matches enhancer.BuilderFunc.
func Build(env internal.Adapter, cfg enhancer.Config) (enhancer.Client, error) {
	return New(env, cfg)
}

// Builder returns an enhancer.BuilderFunc applying the given provider options
// to every client it builds.
func Builder(opts ...opt) enhancer.BuilderFunc {
	return func(env internal.Adapter, cfg enhancer.Config) (enhancer.Client, error) {
		return New(env, cfg, opts...)
	}
}

func New(env internal.Adapter, cfg enhancer.Config, opts ...opt) (*AiStudio, error) {
	llm := AiStudio{
		model:   cfg.Model,
		backend: genai.BackendGeminiAPI,
	}

	if llm.model == "" {
		llm.model = env.DefaultModel()
	}

	for _, opt := range opts {
		opt(&llm)
	}

	clientCfg := genai.ClientConfig{
		Backend:    llm.backend,
		Project:    llm.project,
		Location:   llm.location,
		HTTPClient: env.HttpClient(),
	}

	if clientCfg.Backend == genai.BackendGeminiAPI {
		if cfg.ApiKey == "" {
			return nil, errors.New("missing API key for AI Studio provider")
		}

		clientCfg.APIKey = cfg.ApiKey
	}

	client, err := genai.NewClient(context.Background(), &clientCfg)
	if err != nil {
		return nil, err
	}

	llm.client = client

	return &llm, nil
}

func (p *AiStudio) Model() enhancer.ModelDescriptor {
	return enhancer.ModelDescriptor{Id: p.model}
}

// CreateMessage opens a one-shot streaming generation for the given messages.
func (p *AiStudio) CreateMessage(ctx context.Context, system string, messages []enhancer.Message) (enhancer.Stream, error) {
	contents := lo.Map(messages, func(msg enhancer.Message, _ int) *genai.Content {
		return &genai.Content{
			Role: genai.RoleUser,
			Parts: lo.Map(msg.Content, func(block enhancer.ContentBlock, _ int) *genai.Part {
				return genai.NewPartFromText(block.Text)
			}),
		}
	})

	cfg := genai.GenerateContentConfig{}

	if system != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(system)},
		}
	}

	next, stop := iter.Pull2(p.client.Models.GenerateContentStream(ctx, p.model, contents, &cfg))

	return &stream{next: next, stop: stop}, nil
}

// stream adapts the SDK's push iterator to the pull-based enhancer.Stream.
//
// Token accounting from the last chunk is replayed as a trailing usage event
// once the SDK iterator is exhausted.
type stream struct {
	next func() (*genai.GenerateContentResponse, error, bool)
	stop func()

	usage *enhancer.Usage
}

func (s *stream) Recv() (enhancer.StreamEvent, error) {
	response, err, ok := s.next()
	if !ok {
		if s.usage != nil {
			ev := enhancer.StreamEvent{Kind: enhancer.EventUsage, Usage: s.usage}
			s.usage = nil

			return ev, nil
		}

		return enhancer.StreamEvent{}, io.EOF
	}

	if err != nil {
		return enhancer.StreamEvent{}, err
	}

	if response.UsageMetadata != nil {
		s.usage = &enhancer.Usage{
			InputTokens:  int(response.UsageMetadata.PromptTokenCount),
			OutputTokens: int(response.UsageMetadata.CandidatesTokenCount),
		}
	}

	return enhancer.StreamEvent{Kind: enhancer.EventText, Text: response.Text()}, nil
}

func (s *stream) Close() error {
	s.stop()

	return nil
}
