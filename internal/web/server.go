// Package web serves the JobFit pages.
package web

import (
	"context"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/muhammadolammi/jobfit/internal/analysis"
	"github.com/muhammadolammi/jobfit/internal/auth"
	"github.com/muhammadolammi/jobfit/internal/database"
	"github.com/muhammadolammi/jobfit/internal/drafts"
	"github.com/muhammadolammi/jobfit/internal/events"
	"github.com/muhammadolammi/jobfit/internal/regen"
	"go.uber.org/zap"
)

const maxUploadSize = 10 << 20

// Store is the slice of the query layer the handlers use.
type Store interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (database.User, error)
	CreateAnalysis(ctx context.Context, arg database.CreateAnalysisParams) (database.CvAnalysis, error)
	GetAnalysis(ctx context.Context, id uuid.UUID) (database.CvAnalysis, error)
	ListAnalysesByUser(ctx context.Context, arg database.ListAnalysesByUserParams) ([]database.CvAnalysis, error)
	CreateGeneratedDocument(ctx context.Context, arg database.CreateGeneratedDocumentParams) (database.GeneratedDocument, error)
	GetGeneratedDocument(ctx context.Context, arg database.GetGeneratedDocumentParams) (database.GeneratedDocument, error)
	ListGeneratedDocumentsByUser(ctx context.Context, arg database.ListGeneratedDocumentsByUserParams) ([]database.GeneratedDocument, error)
	DeleteGeneratedDocument(ctx context.Context, arg database.DeleteGeneratedDocumentParams) error
}

type ObjectStore interface {
	Upload(ctx context.Context, localPath, logicalName, userID string) (string, error)
	DownloadURL(ctx context.Context, key string) (string, error)
	Download(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

type Config struct {
	Analyzer      *analysis.Analyzer
	Pipeline      *regen.Pipeline
	Auth          *auth.Service
	DB            Store
	Objects       ObjectStore
	Events        events.Publisher
	Drafts        *drafts.Store
	Logger        *zap.Logger
	SecureCookies bool
}

type Server struct {
	cfg      Config
	logger   *zap.Logger
	pages    map[string]*template.Template
	validate *validator.Validate
	policy   *bluemonday.Policy
}

func New(cfg Config) (*Server, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, err
	}
	if cfg.Events == nil {
		cfg.Events = events.NopPublisher{}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Server{
		cfg:      cfg,
		logger:   cfg.Logger,
		pages:    pages,
		validate: validator.New(),
		policy:   bluemonday.StrictPolicy(),
	}, nil
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(auth.Middleware(s.cfg.Auth))

	r.Get("/", s.handleHome)
	r.Post("/analyze", s.handleAnalyze)
	r.Post("/modify", s.handleModify)
	r.Get("/build", s.handleBuildForm)
	r.Post("/build", s.handleBuild)
	r.Post("/cover-letter", s.handleCoverLetter)
	r.Get("/download/{id}", s.handleDownload)

	r.Get("/signup", s.handleSignupForm)
	r.Post("/signup", s.handleSignup)
	r.Get("/login", s.handleLoginForm)
	r.Post("/login", s.handleLogin)
	r.Post("/logout", s.handleLogout)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth)
		r.Get("/history", s.handleHistory)
		r.Get("/history/{id}", s.handleAnalysisDetail)
		r.Get("/history/documents/{id}", s.handleStoredDocument)
		r.Post("/history/documents/{id}/delete", s.handleDeleteDocument)
	})
	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			s.logger.Info("request",
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)))
		}()
		next.ServeHTTP(ww, r)
	})
}
