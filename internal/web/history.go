package web

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/muhammadolammi/jobfit/internal/auth"
	"github.com/muhammadolammi/jobfit/internal/database"
	"go.uber.org/zap"
)

const historyLimit = 50

type accountView struct {
	Name  string
	Email string
	Since string
}

type analysisView struct {
	ID                string
	CreatedAt         string
	MatchScore        int32
	JobDescription    string
	MatchingSkills    []string
	MissingSkills     []string
	Suggestions       []string
	CoverLetterPoints []string
}

type documentView struct {
	ID        string
	Kind      string
	CreatedAt string
	Name      string
	URL       string
}

func newAnalysisView(a database.CvAnalysis, jdLimit int) analysisView {
	return analysisView{
		ID:                a.ID.String(),
		CreatedAt:         a.CreatedAt.Format("2006-01-02 15:04"),
		MatchScore:        a.MatchScore,
		JobDescription:    excerpt(a.JobDescription, jdLimit),
		MatchingSkills:    decodeList(a.MatchingSkills),
		MissingSkills:     decodeList(a.MissingSkills),
		Suggestions:       decodeList(a.Suggestions),
		CoverLetterPoints: decodeList(a.CoverLetterPoints),
	}
}

func newDocumentView(d database.GeneratedDocument) documentView {
	return documentView{
		ID:        d.ID.String(),
		Kind:      strings.ReplaceAll(d.Kind, "_", " "),
		CreatedAt: d.CreatedAt.Format("2006-01-02 15:04"),
		Name:      path.Base(d.ObjectKey),
		URL:       "/history/documents/" + d.ID.String(),
	}
}

func (s *Server) currentUser(r *http.Request) (uuid.UUID, error) {
	return auth.ClaimsFrom(r.Context()).UserUUID()
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := s.currentUser(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	user, err := s.cfg.DB.GetUserByID(r.Context(), userID)
	if errors.Is(err, sql.ErrNoRows) {
		auth.ClearTokenCookie(w)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err != nil {
		s.fail(w, r, err)
		return
	}

	analyses, err := s.cfg.DB.ListAnalysesByUser(r.Context(), database.ListAnalysesByUserParams{
		UserID: uuid.NullUUID{UUID: userID, Valid: true},
		Limit:  historyLimit,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	docs, err := s.cfg.DB.ListGeneratedDocumentsByUser(r.Context(), database.ListGeneratedDocumentsByUserParams{
		UserID: userID,
		Limit:  historyLimit,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}

	p := page{
		Title: "History",
		Account: &accountView{
			Name:  user.Name,
			Email: user.Email,
			Since: user.CreatedAt.Format("January 2006"),
		},
	}
	for _, a := range analyses {
		p.Analyses = append(p.Analyses, newAnalysisView(a, 160))
	}
	for _, d := range docs {
		p.Documents = append(p.Documents, newDocumentView(d))
	}
	s.render(w, r, http.StatusOK, "history", p)
}

// handleAnalysisDetail shows one saved analysis with the documents generated
// from it. Analyses owned by someone else are reported as missing.
func (s *Server) handleAnalysisDetail(w http.ResponseWriter, r *http.Request) {
	userID, err := s.currentUser(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	notFound := reject(http.StatusNotFound, "Analysis not found.")

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, notFound)
		return
	}
	a, err := s.cfg.DB.GetAnalysis(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && (!a.UserID.Valid || a.UserID.UUID != userID)) {
		s.fail(w, r, notFound)
		return
	}
	if err != nil {
		s.fail(w, r, err)
		return
	}

	docs, err := s.cfg.DB.ListGeneratedDocumentsByUser(r.Context(), database.ListGeneratedDocumentsByUserParams{
		UserID: userID,
		Limit:  historyLimit,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}

	view := newAnalysisView(a, len(a.JobDescription))
	p := page{Title: "Analysis " + view.CreatedAt, Analyses: []analysisView{view}}
	for _, d := range docs {
		if d.AnalysisID.Valid && d.AnalysisID.UUID == a.ID {
			p.Documents = append(p.Documents, newDocumentView(d))
		}
	}
	s.render(w, r, http.StatusOK, "analysis", p)
}

func (s *Server) ownedDocument(r *http.Request) (database.GeneratedDocument, error) {
	userID, err := s.currentUser(r)
	if err != nil {
		return database.GeneratedDocument{}, err
	}
	notFound := reject(http.StatusNotFound, "Document not found.")

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return database.GeneratedDocument{}, notFound
	}
	doc, err := s.cfg.DB.GetGeneratedDocument(r.Context(), database.GetGeneratedDocumentParams{ID: id, UserID: userID})
	if errors.Is(err, sql.ErrNoRows) {
		return database.GeneratedDocument{}, notFound
	}
	return doc, err
}

// handleStoredDocument streams a stored document through the app, so history
// links keep working after presigned URLs expire.
func (s *Server) handleStoredDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.ownedDocument(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	data, err := s.cfg.Objects.Download(r.Context(), doc.ObjectKey)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	name := path.Base(doc.ObjectKey)
	w.Header().Set("Content-Type", docxType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	http.ServeContent(w, r, name, doc.CreatedAt, bytes.NewReader(data))
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.ownedDocument(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.cfg.Objects.Delete(r.Context(), doc.ObjectKey); err != nil {
		s.fail(w, r, err)
		return
	}
	err = s.cfg.DB.DeleteGeneratedDocument(r.Context(), database.DeleteGeneratedDocumentParams{ID: doc.ID, UserID: doc.UserID})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.logger.Info("document deleted", zap.String("document_id", doc.ID.String()), zap.String("key", doc.ObjectKey))
	http.Redirect(w, r, "/history", http.StatusSeeOther)
}

func decodeList(raw json.RawMessage) []string {
	var items []string
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &items)
	}
	return items
}

func excerpt(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
