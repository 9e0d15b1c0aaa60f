package enhancer

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestCollectText(t *testing.T) {
	stream := &eventStream{
		events: []StreamEvent{
			{Kind: EventText, Text: "one "},
			{Kind: EventUsage, Usage: &Usage{OutputTokens: 2}},
			{Kind: EventText, Text: "two "},
			{Kind: "unknown", Text: "should not appear"},
			{Kind: EventText, Text: "three"},
		},
	}

	text, err := CollectText(stream)

	assert.Nil(t, err)
	assert.Equal(t, "one two three", text)
	assert.True(t, stream.closed)
}

func TestCollectTextEmptyStream(t *testing.T) {
	stream := &eventStream{}

	text, err := CollectText(stream)

	assert.Nil(t, err)
	assert.Empty(t, text)
	assert.True(t, stream.closed)
}

func TestCollectTextDiscardsPartialOnError(t *testing.T) {
	e := errors.New("connection reset")

	stream := &eventStream{
		events: []StreamEvent{
			{Kind: EventText, Text: "partial "},
			{Kind: EventText, Text: "text"},
		},
		err: e,
	}

	text, err := CollectText(stream)

	assert.ErrorIs(t, err, e)
	assert.Empty(t, text)
	assert.True(t, stream.closed)
}

func TestCollectTextImmediateError(t *testing.T) {
	stream := &eventStream{err: errors.New("boom")}

	text, err := CollectText(stream)

	assert.EqualError(t, err, "boom")
	assert.Empty(t, text)
	assert.True(t, stream.closed)
}
