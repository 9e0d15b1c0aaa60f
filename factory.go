package enhancer

import (
	"github.com/cockroachdb/errors"

	"github.com/promptforge/enhancer/internal"
)

// BuilderFunc builds a provider client from a per-call configuration.
//
// Builders are registered by name through WithClient and receive the enhancer
// environment in addition to the configuration.
type BuilderFunc func(env internal.Adapter, cfg Config) (Client, error)

// registry is the default Factory. It resolves a configuration against the
// builders registered on the enhancer, keyed by Config.Provider.
type registry struct {
	e *Enhancer
}

func (r registry) Build(cfg Config) (Client, error) {
	if len(r.e.builders) == 0 {
		return nil, errors.New("no provider was configured")
	}

	build, ok := r.e.builders[cfg.Provider]
	if !ok {
		return nil, errors.Newf("unknown provider '%s'", cfg.Provider)
	}

	return build(r.e, cfg)
}
