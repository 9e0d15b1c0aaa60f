package aistudio

import "google.golang.org/genai"

type opt func(*AiStudio)

// WithBackend selects which GenAI backend to target.
func WithBackend(backend genai.Backend) opt {
	return func(p *AiStudio) {
		p.backend = backend
	}
}

// WithVertex targets the Vertex AI backend for a project and location,
// authenticating through ambient Google credentials instead of an API key.
func WithVertex(project, location string) opt {
	return func(p *AiStudio) {
		p.backend = genai.BackendVertexAI
		p.project = project
		p.location = location
	}
}
