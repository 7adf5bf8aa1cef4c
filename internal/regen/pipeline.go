// Package regen rewrites résumés with an AI model and renders the result
// as a DOCX file.
//
// Every operation runs the same linear sequence: validate input, build the
// prompt, make one completion call, render the reply. The first failure
// ends the run; nothing is retried.
package regen

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadolammi/jobfit/internal/completion"
	"github.com/muhammadolammi/jobfit/internal/prompt"
	"github.com/muhammadolammi/jobfit/internal/render"
	"go.uber.org/zap"
)

// ErrEmptyEditSet is returned before any model call when no edit survives
// filtering.
var ErrEmptyEditSet = errors.New("no usable edits supplied")

// Outcome is a rendered document and the marked-up text it was built from.
// The caller owns the file at Path and must remove it.
type Outcome struct {
	Path string
	Text string
}

type Pipeline struct {
	completer completion.Completer
	tempDir   string
	logger    *zap.Logger
	now       func() time.Time
}

func New(completer completion.Completer, tempDir string, logger *zap.Logger) *Pipeline {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &Pipeline{
		completer: completer,
		tempDir:   tempDir,
		logger:    logger,
		now:       time.Now,
	}
}

// FilterEdits drops empty and whitespace-only edits and trims the rest,
// keeping their order.
func FilterEdits(edits []string) []string {
	filtered := make([]string, 0, len(edits))
	for _, edit := range edits {
		if edit = strings.TrimSpace(edit); edit != "" {
			filtered = append(filtered, edit)
		}
	}
	return filtered
}

// Regenerate rewrites originalText applying every usable edit and renders
// the improved text to a DOCX named after filename.
func (p *Pipeline) Regenerate(ctx context.Context, originalText string, edits []string, filename string) (Outcome, error) {
	edits = FilterEdits(edits)
	if len(edits) == 0 {
		return Outcome{}, ErrEmptyEditSet
	}

	improved, err := p.complete(ctx, "regenerate", prompt.Modification(originalText, edits))
	if err != nil {
		return Outcome{}, err
	}
	return p.save(render.Parse(improved), improved, filename)
}

// Build writes a new résumé from structured profile fields.
func (p *Pipeline) Build(ctx context.Context, profile prompt.Profile, filename string) (Outcome, error) {
	text, err := p.complete(ctx, "build", prompt.Generation(profile))
	if err != nil {
		return Outcome{}, err
	}
	return p.save(render.Parse(text), text, filename)
}

// CoverLetter drafts a cover letter for cvText and jobDescription.
func (p *Pipeline) CoverLetter(ctx context.Context, cvText, jobDescription string, contact prompt.Contact, filename string) (Outcome, error) {
	text, err := p.complete(ctx, "cover_letter", prompt.CoverLetter(cvText, jobDescription, contact))
	if err != nil {
		return Outcome{}, err
	}
	doc := render.CoverLetter(text, render.Letterhead{
		Name:     contact.Name,
		Email:    contact.Email,
		Phone:    contact.Phone,
		LinkedIn: contact.LinkedIn,
	}, p.now())
	return p.save(doc, text, filename)
}

func (p *Pipeline) complete(ctx context.Context, operation, promptText string) (string, error) {
	start := time.Now()
	reply, err := p.completer.Complete(ctx, promptText)
	if err != nil {
		p.logger.Error("completion failed", zap.String("operation", operation), zap.Error(err))
		return "", completion.Wrap(err)
	}
	p.logger.Info("completion received",
		zap.String("operation", operation),
		zap.Int("reply_bytes", len(reply)),
		zap.Duration("took", time.Since(start)),
	)
	return reply, nil
}

func (p *Pipeline) save(doc render.Document, text, filename string) (Outcome, error) {
	path := filepath.Join(p.tempDir, uuid.NewString()+"-"+outputName(filename))
	if err := render.SaveDOCX(doc, path); err != nil {
		return Outcome{}, err
	}
	return Outcome{Path: path, Text: text}, nil
}

// outputName reduces filename to a bare .docx file name.
func outputName(filename string) string {
	name := filepath.Base(strings.TrimSpace(filename))
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = "document"
	}
	if !strings.EqualFold(filepath.Ext(name), ".docx") {
		name = strings.TrimSuffix(name, filepath.Ext(name)) + ".docx"
	}
	return name
}
