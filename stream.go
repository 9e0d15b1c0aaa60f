package enhancer

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

type StreamEventKind string

const (
	EventText  StreamEventKind = "text"
	EventUsage StreamEventKind = "usage"
)

// Usage carries the token accounting a provider may emit at the end of a
// stream. It never contributes to the enhanced text.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalCost    float64
}

// StreamEvent is a single event yielded by a provider stream. Events of an
// unknown kind are skipped during aggregation.
type StreamEvent struct {
	Kind StreamEventKind

	Text  string
	Usage *Usage
}

// Stream yields StreamEvent values until io.EOF.
//
// A stream is single-use: once Recv returned io.EOF or an error it cannot be
// restarted, only re-created through a new CreateMessage call.
type Stream interface {
	Recv() (StreamEvent, error)
	Close() error
}

// CollectText drains a stream, concatenating text events in arrival order and
// ignoring all other event kinds.
//
// A mid-stream error aborts aggregation: the text accumulated so far is
// discarded and the error is returned as-is, so a caller never sees a
// truncated success.
func CollectText(stream Stream) (string, error) {
	defer stream.Close()

	var sb strings.Builder

	for {
		ev, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return sb.String(), nil
			}

			return "", err
		}

		if ev.Kind == EventText {
			sb.WriteString(ev.Text)
		}
	}
}
