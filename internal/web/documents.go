package web

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/muhammadolammi/jobfit/internal/auth"
	"github.com/muhammadolammi/jobfit/internal/database"
	"github.com/muhammadolammi/jobfit/internal/drafts"
	"github.com/muhammadolammi/jobfit/internal/prompt"
	"github.com/muhammadolammi/jobfit/internal/regen"
	"github.com/muhammadolammi/jobfit/internal/storage"
	"go.uber.org/zap"
)

const (
	kindResume      = "resume"
	kindCoverLetter = "cover_letter"
	docxType        = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var profileFields = []string{
	"name", "email", "phone", "linkedin", "summary", "skills",
	"edu_degree", "edu_university", "edu_year",
}

func (s *Server) draft(r *http.Request) (drafts.Draft, error) {
	d, ok := s.cfg.Drafts.Get(r.FormValue("draft_id"))
	if !ok {
		return drafts.Draft{}, reject(http.StatusNotFound, "This analysis has expired. Please upload your CV again.")
	}
	return d, nil
}

func (s *Server) handleModify(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.fail(w, r, reject(http.StatusBadRequest, "Could not read the form."))
		return
	}
	d, err := s.draft(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	edits := append([]string{}, r.PostForm["suggestions"]...)
	edits = append(edits, r.PostForm["custom_suggestion"]...)

	name := "improved_" + strings.TrimSuffix(filepath.Base(d.FileName), filepath.Ext(d.FileName)) + ".docx"
	out, err := s.cfg.Pipeline.Regenerate(r.Context(), d.CVText, edits, name)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.deliver(w, r, out, name, kindResume, d.AnalysisID)
}

func (s *Server) handleBuildForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "build", page{Title: "Build your CV"})
}

func (s *Server) handleBuild(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.fail(w, r, reject(http.StatusBadRequest, "Could not read the form."))
		return
	}
	profile := profileFromForm(r)
	if err := s.check(profile); err != nil {
		status, msg := statusFor(err)
		s.render(w, r, status, "build", page{Title: "Build your CV", Error: msg, Form: formValues(r, profileFields...)})
		return
	}

	name := storage.SanitizeFilename(profile.Name) + "_resume.docx"
	out, err := s.cfg.Pipeline.Build(r.Context(), profile, name)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.deliver(w, r, out, name, kindResume, uuid.NullUUID{})
}

func profileFromForm(r *http.Request) prompt.Profile {
	p := prompt.Profile{
		Name:     strings.TrimSpace(r.FormValue("name")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Phone:    strings.TrimSpace(r.FormValue("phone")),
		LinkedIn: strings.TrimSpace(r.FormValue("linkedin")),
		Summary:  strings.TrimSpace(r.FormValue("summary")),
		Skills:   strings.TrimSpace(r.FormValue("skills")),
		Education: prompt.Education{
			Degree:     strings.TrimSpace(r.FormValue("edu_degree")),
			University: strings.TrimSpace(r.FormValue("edu_university")),
			Year:       strings.TrimSpace(r.FormValue("edu_year")),
		},
	}

	titles := r.PostForm["exp_title"]
	companies := r.PostForm["exp_company"]
	durations := r.PostForm["exp_duration"]
	duties := r.PostForm["exp_responsibilities"]
	for i, title := range titles {
		p.Experience = append(p.Experience, prompt.Experience{
			Title:            strings.TrimSpace(title),
			Company:          at(companies, i),
			Duration:         at(durations, i),
			Responsibilities: at(duties, i),
		})
	}
	return p
}

func at(values []string, i int) string {
	if i < len(values) {
		return strings.TrimSpace(values[i])
	}
	return ""
}

func (s *Server) handleCoverLetter(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.fail(w, r, reject(http.StatusBadRequest, "Could not read the form."))
		return
	}
	d, err := s.draft(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	contact := prompt.Contact{
		Name:     strings.TrimSpace(r.FormValue("name")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Phone:    strings.TrimSpace(r.FormValue("phone")),
		LinkedIn: strings.TrimSpace(r.FormValue("linkedin")),
	}
	if claims := auth.ClaimsFrom(r.Context()); claims != nil {
		if contact.Name == "" {
			contact.Name = claims.Name
		}
		if contact.Email == "" {
			contact.Email = claims.Email
		}
	}

	name := "cover_letter.docx"
	out, err := s.cfg.Pipeline.CoverLetter(r.Context(), d.CVText, d.JobDescription, contact, name)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.deliver(w, r, out, name, kindCoverLetter, d.AnalysisID)
}

// deliver hands a rendered document to the user. Signed-in users get it
// uploaded to storage and linked through a presigned URL, and the local file
// is removed. Anonymous users download it once from /download/{id}.
func (s *Server) deliver(w http.ResponseWriter, r *http.Request, out regen.Outcome, name, kind string, analysisID uuid.NullUUID) {
	p := page{Title: "Your document", FileName: name, Kind: kind, Preview: out.Text}

	claims := auth.ClaimsFrom(r.Context())
	if claims == nil {
		p.Link = "/download/" + s.cfg.Drafts.AddFile(drafts.File{Path: out.Path, Name: name})
		s.render(w, r, http.StatusOK, "document", p)
		return
	}

	defer os.Remove(out.Path)
	link, err := s.store(r.Context(), claims, out.Path, name, kind, analysisID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	p.Link = link
	s.render(w, r, http.StatusOK, "document", p)
}

// store uploads the document under a suffixed copy of its name and records
// it. The object is removed again when the record cannot be written.
func (s *Server) store(ctx context.Context, claims *auth.Claims, localPath, name, kind string, analysisID uuid.NullUUID) (string, error) {
	userID, err := claims.UserUUID()
	if err != nil {
		return "", err
	}
	key, err := s.cfg.Objects.Upload(ctx, localPath, storage.UniqueName(name), claims.UserID)
	if err != nil {
		return "", err
	}
	_, err = s.cfg.DB.CreateGeneratedDocument(ctx, database.CreateGeneratedDocumentParams{
		UserID:     userID,
		AnalysisID: analysisID,
		Kind:       kind,
		ObjectKey:  key,
	})
	if err != nil {
		if delErr := s.cfg.Objects.Delete(ctx, key); delErr != nil {
			s.logger.Warn("failed to remove orphaned document", zap.String("key", key), zap.Error(delErr))
		}
		return "", fmt.Errorf("failed to record document: %w", err)
	}
	return s.cfg.Objects.DownloadURL(ctx, key)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	f, ok := s.cfg.Drafts.File(id)
	if !ok {
		s.fail(w, r, reject(http.StatusNotFound, "This download has expired."))
		return
	}

	file, err := os.Open(f.Path)
	if err != nil {
		s.cfg.Drafts.RemoveFile(id)
		s.fail(w, r, reject(http.StatusNotFound, "This download has expired."))
		return
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", docxType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": f.Name}))
	ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
	http.ServeContent(ww, r, f.Name, info.ModTime(), file)
	file.Close()
	// Range requests leave the file for the rest of the download.
	if ww.Status() == http.StatusOK {
		s.cfg.Drafts.RemoveFile(id)
	}
}
