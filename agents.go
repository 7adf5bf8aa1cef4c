package main

import (
	"context"
	"fmt"

	"github.com/muhammadolammi/jobfit/internal/completion"
	"go.uber.org/zap"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/genai"
)

const (
	agentName          = "jobfit assistant"
	defaultGeminiModel = "gemini-2.5-pro"
)

func GetAgent(ctx context.Context, apiKey, modelName, agentName string) (agent.Agent, error) {
	if modelName == "" {
		modelName = defaultGeminiModel
	}
	model, err := gemini.NewModel(ctx, modelName, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create model: %w", err)
	}

	customAgent, err := llmagent.New(llmagent.Config{
		Name:        agentName,
		Model:       model,
		Description: "Analyze and rewrite resumes",
		Instruction: instruction(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}
	return customAgent, nil
}

// newCompleter picks the completion backend named by LLM_PROVIDER.
func newCompleter(ctx context.Context, cfg LLMConfig, logger *zap.Logger) (completion.Completer, error) {
	switch cfg.Provider {
	case "", "gemini":
		a, err := GetAgent(ctx, cfg.GoogleApiKey, cfg.Model, agentName)
		if err != nil {
			return nil, err
		}
		return completion.NewAgentCompleter(a, logger)
	case "openai":
		return completion.NewOpenAI(cfg.OpenAIApiKey, cfg.Model)
	case "ollama":
		return completion.NewOllama(cfg.OllamaUrl, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.Provider)
	}
}
