package enhancer

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

type MockFactory struct {
	mock.Mock
}

func NewMockFactory() *MockFactory {
	return &MockFactory{}
}

func (f *MockFactory) Build(cfg Config) (Client, error) {
	args := f.Called(cfg)

	if client := args.Get(0); client != nil {
		return client.(Client), args.Error(1)
	}

	return nil, args.Error(1)
}

type MockDirectClient struct {
	mock.Mock
}

func NewMockDirectClient() *MockDirectClient {
	return &MockDirectClient{}
}

func (c *MockDirectClient) Model() ModelDescriptor {
	args := c.Called()

	return args.Get(0).(ModelDescriptor)
}

func (c *MockDirectClient) CompletePrompt(ctx context.Context, prompt string) (string, error) {
	args := c.Called(ctx, prompt)

	return args.String(0), args.Error(1)
}

type MockStreamingClient struct {
	mock.Mock
}

func NewMockStreamingClient() *MockStreamingClient {
	return &MockStreamingClient{}
}

func (c *MockStreamingClient) Model() ModelDescriptor {
	args := c.Called()

	return args.Get(0).(ModelDescriptor)
}

func (c *MockStreamingClient) CreateMessage(ctx context.Context, system string, messages []Message) (Stream, error) {
	args := c.Called(ctx, system, messages)

	if stream := args.Get(0); stream != nil {
		return stream.(Stream), args.Error(1)
	}

	return nil, args.Error(1)
}

// bareClient implements Client but neither completion capability.
type bareClient struct{}

func (bareClient) Model() ModelDescriptor {
	return ModelDescriptor{}
}

// eventStream replays a fixed sequence of events, then fails with err or ends
// normally.
type eventStream struct {
	events []StreamEvent
	err    error
	closed bool
}

func (s *eventStream) Recv() (StreamEvent, error) {
	if len(s.events) == 0 {
		if s.err != nil {
			return StreamEvent{}, s.err
		}

		return StreamEvent{}, io.EOF
	}

	ev := s.events[0]
	s.events = s.events[1:]

	return ev, nil
}

func (s *eventStream) Close() error {
	s.closed = true

	return nil
}
