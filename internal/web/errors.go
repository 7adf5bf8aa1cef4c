package web

import (
	"errors"
	"net/http"

	"github.com/muhammadolammi/jobfit/internal/analysis"
	"github.com/muhammadolammi/jobfit/internal/completion"
	"github.com/muhammadolammi/jobfit/internal/extract"
	"github.com/muhammadolammi/jobfit/internal/regen"
	"github.com/muhammadolammi/jobfit/internal/render"
	"go.uber.org/zap"
)

// userError is a failure caused by the request itself. Its message is shown
// as is.
type userError struct {
	status int
	msg    string
}

func (e *userError) Error() string { return e.msg }

func reject(status int, msg string) error {
	return &userError{status: status, msg: msg}
}

// statusFor maps a pipeline error to the status code and message shown to
// the user.
func statusFor(err error) (int, string) {
	var ue *userError
	switch {
	case errors.As(err, &ue):
		return ue.status, ue.msg
	case errors.Is(err, extract.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType, "Unsupported file type. Please upload a PDF or DOCX file."
	case errors.Is(err, regen.ErrEmptyEditSet):
		return http.StatusUnprocessableEntity, "Select or write at least one suggestion to apply."
	case errors.Is(err, completion.ErrCompletionFailed):
		return http.StatusBadGateway, "The AI service did not respond. Please try again."
	case errors.Is(err, analysis.ErrParse):
		return http.StatusBadGateway, "The AI reply could not be read."
	case errors.Is(err, render.ErrRenderFailure):
		return http.StatusInternalServerError, "The document could not be created."
	default:
		return http.StatusInternalServerError, "Something went wrong. Please try again."
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	} else {
		s.logger.Info("request rejected", zap.String("path", r.URL.Path), zap.Error(err))
	}

	p := page{Title: "Error", Error: msg}
	var pe *analysis.ParseError
	if errors.As(err, &pe) {
		p.Raw = pe.Raw
	}
	s.render(w, r, status, "error", p)
}
