package completion

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

// LangChainCompleter sends prompts through any langchaingo model.
type LangChainCompleter struct {
	llm  llms.Model
	opts []llms.CallOption
}

func NewLangChainCompleter(llm llms.Model, opts ...llms.CallOption) *LangChainCompleter {
	return &LangChainCompleter{llm: llm, opts: opts}
}

// NewOpenAI builds a completer backed by the OpenAI chat API.
func NewOpenAI(apiKey, model string) (*LangChainCompleter, error) {
	if model == "" {
		model = "gpt-4o-mini"
	}
	llm, err := openai.New(openai.WithToken(apiKey), openai.WithModel(model))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize openai: %w", err)
	}
	return NewLangChainCompleter(llm), nil
}

// NewOllama builds a completer backed by a local Ollama server.
func NewOllama(serverURL, model string) (*LangChainCompleter, error) {
	if model == "" {
		model = "llama3"
	}
	if serverURL == "" {
		serverURL = "http://localhost:11434"
	}
	llm, err := ollama.New(ollama.WithModel(model), ollama.WithServerURL(serverURL))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ollama: %w", err)
	}
	return NewLangChainCompleter(llm), nil
}

func (c *LangChainCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	reply, err := llms.GenerateFromSinglePrompt(ctx, c.llm, prompt, c.opts...)
	if err != nil {
		return "", failed(err)
	}
	return checkReply(reply)
}
