package completion

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type fakeModel struct {
	reply   string
	err     error
	prompts []string
}

func (m *fakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	for _, msg := range messages {
		for _, part := range msg.Parts {
			if text, ok := part.(llms.TextContent); ok {
				m.prompts = append(m.prompts, text.Text)
			}
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: m.reply}}}, nil
}

func (m *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

func TestLangChainCompleter_ReturnsReply(t *testing.T) {
	model := &fakeModel{reply: "**HEADING: JANE**"}
	c := NewLangChainCompleter(model)

	reply, err := c.Complete(context.Background(), "rewrite this")
	require.NoError(t, err)
	assert.Equal(t, "**HEADING: JANE**", reply)
	assert.Equal(t, []string{"rewrite this"}, model.prompts)
}

func TestLangChainCompleter_TransportError(t *testing.T) {
	transport := errors.New("connection refused")
	c := NewLangChainCompleter(&fakeModel{err: transport})

	_, err := c.Complete(context.Background(), "prompt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCompletionFailed))
	assert.True(t, errors.Is(err, transport))
}

func TestLangChainCompleter_EmptyReply(t *testing.T) {
	c := NewLangChainCompleter(&fakeModel{reply: "  \n"})

	_, err := c.Complete(context.Background(), "prompt")
	assert.True(t, errors.Is(err, ErrCompletionFailed))
}

func TestFunc(t *testing.T) {
	var got string
	c := Func(func(_ context.Context, prompt string) (string, error) {
		got = prompt
		return "ok", nil
	})

	reply, err := c.Complete(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "ok", reply)
	assert.Equal(t, "hello", got)
}

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap(nil))

	timeout := errors.New("timeout")
	err := Wrap(timeout)
	assert.ErrorIs(t, err, ErrCompletionFailed)
	assert.ErrorIs(t, err, timeout)

	already := failed(timeout)
	assert.Same(t, already, Wrap(already))
}
