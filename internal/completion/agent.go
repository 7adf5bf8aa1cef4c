package completion

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

const agentUserID = "jobfit"

// AgentCompleter runs prompts through an ADK agent. Each call gets its own
// in-memory session which is deleted once the reply has been read.
type AgentCompleter struct {
	appName  string
	runner   *runner.Runner
	sessions session.Service
	logger   *zap.Logger
}

func NewAgentCompleter(a agent.Agent, logger *zap.Logger) (*AgentCompleter, error) {
	sessions := session.InMemoryService()
	r, err := runner.New(runner.Config{
		AppName:        a.Name(),
		Agent:          a,
		SessionService: sessions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create runner: %w", err)
	}
	return &AgentCompleter{
		appName:  a.Name(),
		runner:   r,
		sessions: sessions,
		logger:   logger,
	}, nil
}

func (c *AgentCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	created, err := c.sessions.Create(ctx, &session.CreateRequest{
		AppName:   c.appName,
		UserID:    agentUserID,
		SessionID: uuid.NewString(),
	})
	if err != nil {
		return "", failed(fmt.Errorf("failed to create session: %w", err))
	}
	sess := created.Session
	defer func() {
		err := c.sessions.Delete(context.WithoutCancel(ctx), &session.DeleteRequest{
			AppName:   sess.AppName(),
			UserID:    sess.UserID(),
			SessionID: sess.ID(),
		})
		if err != nil {
			c.logger.Warn("failed to delete agent session", zap.String("session_id", sess.ID()), zap.Error(err))
		}
	}()

	stream := c.runner.Run(ctx, sess.UserID(), sess.ID(), &genai.Content{
		Role: "user",
		Parts: []*genai.Part{
			{Text: prompt},
		},
	}, agent.RunConfig{})

	var output string
	for event, err := range stream {
		if err != nil {
			return "", failed(err)
		}
		if event != nil && event.IsFinalResponse() && event.Content != nil && len(event.Content.Parts) > 0 {
			output = event.Content.Parts[0].Text
		}
	}
	return checkReply(output)
}
