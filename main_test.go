package main

import (
	"context"
	"testing"

	"github.com/muhammadolammi/jobfit/internal/completion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("JOBFIT_TEST_PORT", "9000")
	assert.Equal(t, "9000", getEnv("JOBFIT_TEST_PORT", "8000"))
	assert.Equal(t, "8000", getEnv("JOBFIT_TEST_UNSET", "8000"))
}

func TestNewCompleter(t *testing.T) {
	ctx := context.Background()

	c, err := newCompleter(ctx, LLMConfig{Provider: "openai", OpenAIApiKey: "sk-test"}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &completion.LangChainCompleter{}, c)

	c, err = newCompleter(ctx, LLMConfig{Provider: "ollama"}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &completion.LangChainCompleter{}, c)

	_, err = newCompleter(ctx, LLMConfig{Provider: "claude"}, zap.NewNop())
	assert.ErrorContains(t, err, "unknown LLM_PROVIDER")
}

func TestAppConfig_IsProduction(t *testing.T) {
	assert.True(t, (&AppConfig{Env: "production"}).IsProduction())
	assert.False(t, (&AppConfig{Env: "development"}).IsProduction())
}
