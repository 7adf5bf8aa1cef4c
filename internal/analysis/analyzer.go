package analysis

import (
	"context"

	"github.com/muhammadolammi/jobfit/internal/completion"
	"github.com/muhammadolammi/jobfit/internal/prompt"
	"go.uber.org/zap"
)

type Analyzer struct {
	completer completion.Completer
	logger    *zap.Logger
}

func NewAnalyzer(completer completion.Completer, logger *zap.Logger) *Analyzer {
	return &Analyzer{completer: completer, logger: logger}
}

// Analyze asks the model how well cvText fits jobDescription. A reply that
// is not valid JSON comes back as a *ParseError.
func (a *Analyzer) Analyze(ctx context.Context, cvText, jobDescription string) (Result, error) {
	reply, err := a.completer.Complete(ctx, prompt.Analysis(cvText, jobDescription))
	if err != nil {
		a.logger.Error("completion failed", zap.Error(err))
		return Result{}, completion.Wrap(err)
	}

	result, err := Interpret(reply)
	if err != nil {
		a.logger.Warn("analysis reply was not valid json", zap.Int("reply_bytes", len(reply)), zap.Error(err))
		return Result{}, err
	}
	a.logger.Info("analysis completed",
		zap.Int("match_score", result.MatchScore),
		zap.Int("suggestions", len(result.Suggestions)),
	)
	return result, nil
}
