package enhancer

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
)

// AsyncResult is the outcome of one prompt in a concurrent enhancement.
type AsyncResult struct {
	Text  string
	Error error
}

// All enhances several prompts concurrently against the same configuration.
//
// The returned slice holds one result per prompt, in the same order. Each
// enhancement resolves its own client handle, so calls do not share state.
func All(ctx context.Context, e *Enhancer, cfg Config, prompts ...string) []AsyncResult {
	var wg sync.WaitGroup

	results := make([]AsyncResult, len(prompts))

	for idx, prompt := range prompts {
		wg.Add(1)

		go func() {
			defer wg.Done()

			text, err := e.Enhance(ctx, cfg, prompt)
			if err != nil {
				results[idx] = AsyncResult{Error: err}
				return
			}

			results[idx] = AsyncResult{Text: text}
		}()
	}

	wg.Wait()

	return results
}

// Race enhances several prompts concurrently and returns the first success,
// or a combined error once all of them failed.
func Race(ctx context.Context, e *Enhancer, cfg Config, prompts ...string) AsyncResult {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c := make(chan AsyncResult, len(prompts))

	for _, prompt := range prompts {
		go func() {
			text, err := e.Enhance(ctx, cfg, prompt)
			if err != nil {
				c <- AsyncResult{Error: err}
				return
			}

			c <- AsyncResult{Text: text}
		}()
	}

	errored := 0

	for {
		select {
		case <-ctx.Done():
			return AsyncResult{Error: ctx.Err()}

		case value := <-c:
			switch value.Error {
			case nil:
				return value

			default:
				errored += 1

				if errored == len(prompts) {
					return AsyncResult{Error: errors.New("all requests failed")}
				}
			}
		}
	}
}
