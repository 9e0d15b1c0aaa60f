package openai

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/fatih/structs"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	enhancer "github.com/promptforge/enhancer"
	"github.com/promptforge/enhancer/internal"
)

// OpenAi is a single-shot completion client over the OpenAI chat completions
// API. Providers speaking the same wire dialect can reuse it through a custom
// base URL.
type OpenAi struct {
	client openai.Client
	model  string

	baseUrl     string
	extraFields any
}

// Build resolves a configuration into an OpenAI client with no provider
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

func New(env internal.Adapter, cfg enhancer.Config, opts ...opt) (*OpenAi, error) {
	if cfg.ApiKey == "" {
		return nil, errors.New("missing API key for OpenAI provider")
	}

	llm := OpenAi{
		model:   cfg.Model,
		baseUrl: cfg.BaseUrl,
	}

	if llm.model == "" {
		llm.model = env.DefaultModel()
	}

	for _, opt := range opts {
		opt(&llm)
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(cfg.ApiKey),
	}

	if llm.baseUrl != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(llm.baseUrl))
	}
	if env.HttpClient() != nil {
		clientOpts = append(clientOpts, option.WithHTTPClient(env.HttpClient()))
	}

	llm.client = openai.NewClient(clientOpts...)

	return &llm, nil
}

func (p *OpenAi) Model() enhancer.ModelDescriptor {
	return enhancer.ModelDescriptor{Id: p.model}
}

// CompletePrompt sends the prompt as a single user message and returns the
// first choice's content.
func (p *OpenAi) CompletePrompt(ctx context.Context, prompt string) (string, error) {
	cfg := openai.ChatCompletionNewParams{
		Model: p.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	}

	if p.extraFields != nil {
		cfg.SetExtraFields(structs.Map(p.extraFields))
	}

	response, err := p.client.Chat.Completions.New(ctx, cfg)
	if err != nil {
		return "", err
	}

	if len(response.Choices) == 0 {
		return "", errors.New("provider returned no candidates")
	}

	return response.Choices[0].Message.Content, nil
}
