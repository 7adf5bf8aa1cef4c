package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadolammi/jobfit/internal/analysis"
	"github.com/muhammadolammi/jobfit/internal/auth"
	"github.com/muhammadolammi/jobfit/internal/database"
	"github.com/muhammadolammi/jobfit/internal/drafts"
	"github.com/muhammadolammi/jobfit/internal/events"
	"github.com/muhammadolammi/jobfit/internal/extract"
	"go.uber.org/zap"
)

type analyzeForm struct {
	JobDescription string `validate:"required"`
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "home", page{Title: "JobFit - CV Analyzer"})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.fail(w, r, reject(http.StatusRequestEntityTooLarge, "The file is larger than 10 MB."))
			return
		}
		s.fail(w, r, reject(http.StatusBadRequest, "Could not read the upload."))
		return
	}
	defer r.MultipartForm.RemoveAll()

	form := analyzeForm{JobDescription: strings.TrimSpace(r.FormValue("job_description"))}
	if err := s.check(form); err != nil {
		s.fail(w, r, err)
		return
	}

	file, header, err := r.FormFile("cv_file")
	if err != nil {
		s.fail(w, r, reject(http.StatusUnprocessableEntity, "Please choose a CV file to upload."))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.fail(w, r, reject(http.StatusBadRequest, "Could not read the upload."))
		return
	}

	kind := extract.KindFromFilename(header.Filename)
	if kind == extract.KindUnknown {
		kind = extract.KindFromMIME(header.Header.Get("Content-Type"))
	}
	cvText, err := extract.Extract(kind, data)
	if err != nil {
		if !errors.Is(err, extract.ErrUnsupportedFormat) {
			err = reject(http.StatusUnprocessableEntity, "The file could not be read. Is it a valid PDF or DOCX?")
		}
		s.fail(w, r, err)
		return
	}
	if strings.TrimSpace(cvText) == "" {
		s.fail(w, r, reject(http.StatusUnprocessableEntity, "No text could be found in the uploaded file."))
		return
	}

	result, err := s.cfg.Analyzer.Analyze(r.Context(), cvText, form.JobDescription)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	claims := auth.ClaimsFrom(r.Context())
	analysisID := s.saveAnalysis(r.Context(), claims, form.JobDescription, result)

	draftID := s.cfg.Drafts.Save(drafts.Draft{
		CVText:         cvText,
		JobDescription: form.JobDescription,
		FileName:       header.Filename,
		Analysis:       result,
		AnalysisID:     analysisID,
	})

	s.render(w, r, http.StatusOK, "results", page{
		Title:    "Analysis Results",
		DraftID:  draftID,
		FileName: header.Filename,
		Result:   result,
	})
}

// saveAnalysis records the result and announces it. Failures are logged and
// do not fail the request.
func (s *Server) saveAnalysis(ctx context.Context, claims *auth.Claims, jobDescription string, result analysis.Result) uuid.NullUUID {
	var userID uuid.NullUUID
	if claims != nil {
		if id, err := claims.UserUUID(); err == nil {
			userID = uuid.NullUUID{UUID: id, Valid: true}
		}
	}

	params := database.CreateAnalysisParams{
		UserID:            userID,
		JobDescription:    s.plain(jobDescription),
		MatchScore:        int32(result.MatchScore),
		MatchingSkills:    mustJSON(result.MatchingSkills),
		MissingSkills:     mustJSON(result.MissingSkills),
		Suggestions:       mustJSON(result.Suggestions),
		CoverLetterPoints: mustJSON(result.CoverLetterPoints),
	}
	row, err := s.cfg.DB.CreateAnalysis(ctx, params)
	if err != nil {
		s.logger.Warn("failed to save analysis", zap.Error(err))
		return uuid.NullUUID{}
	}

	update := events.Update{
		AnalysisID: row.ID,
		Status:     events.StatusCompleted,
		MatchScore: result.MatchScore,
		Timestamp:  time.Now(),
	}
	if userID.Valid {
		update.UserID = userID.UUID.String()
	}
	if err := s.cfg.Events.Publish(ctx, update); err != nil {
		s.logger.Warn("failed to publish update", zap.String("analysis_id", row.ID.String()), zap.Error(err))
	}
	return uuid.NullUUID{UUID: row.ID, Valid: true}
}

func mustJSON(items []string) json.RawMessage {
	if items == nil {
		items = []string{}
	}
	b, _ := json.Marshal(items)
	return b
}
