package openai

type opt func(*OpenAi)

// WithBaseUrl points the client at an OpenAI-compatible endpoint, overriding
// any base URL carried by the configuration.
func WithBaseUrl(url string) opt {
	return func(p *OpenAi) {
		p.baseUrl = url
	}
}

// WithExtraFields merges provider-specific fields into the top level of every
// request body.
//
// The value must be a struct; field names are taken from `structs` tags.
func WithExtraFields(fields any) opt {
	return func(p *OpenAi) {
		p.extraFields = fields
	}
}
