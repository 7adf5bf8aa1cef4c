package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/muhammadolammi/jobfit/internal/analysis"
	"github.com/muhammadolammi/jobfit/internal/auth"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// page is the data every template receives. Handlers fill in the fields
// their page uses.
type page struct {
	Title     string
	User      *auth.Claims
	Error     string
	Raw       string
	DraftID   string
	FileName  string
	Result    analysis.Result
	Link      string
	Preview   string
	Kind      string
	Form      map[string]string
	Account   *accountView
	Analyses  []analysisView
	Documents []documentView
}

func parsePages() (map[string]*template.Template, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(files))
	for _, f := range files {
		if f == layoutFile {
			continue
		}
		t, err := template.New(path.Base(layoutFile)).ParseFS(templateFS, layoutFile, f)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", f, err)
		}
		pages[strings.TrimSuffix(path.Base(f), ".html")] = t
	}
	return pages, nil
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, p page) {
	t, ok := s.pages[name]
	if !ok {
		s.logger.Error("unknown template", zap.String("name", name))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	p.User = auth.ClaimsFrom(r.Context())

	var buf bytes.Buffer
	if err := t.Execute(&buf, p); err != nil {
		s.logger.Error("failed to render page", zap.String("name", name), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
