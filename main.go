package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/muhammadolammi/jobfit/internal/analysis"
	"github.com/muhammadolammi/jobfit/internal/auth"
	"github.com/muhammadolammi/jobfit/internal/database"
	"github.com/muhammadolammi/jobfit/internal/drafts"
	"github.com/muhammadolammi/jobfit/internal/events"
	"github.com/muhammadolammi/jobfit/internal/logger"
	"github.com/muhammadolammi/jobfit/internal/regen"
	"github.com/muhammadolammi/jobfit/internal/storage"
	"github.com/muhammadolammi/jobfit/internal/web"
	"go.uber.org/zap"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("empty %s in environment", key)
	}
	return v
}

func loadConfig() AppConfig {
	cfg := AppConfig{
		Port:      getEnv("PORT", "8000"),
		DBUrl:     mustEnv("DB_URL"),
		JWTSecret: mustEnv("JWT_SECRET"),
		LLM: LLMConfig{
			Provider:     getEnv("LLM_PROVIDER", "gemini"),
			Model:        os.Getenv("LLM_MODEL"),
			GoogleApiKey: os.Getenv("GOOGLE_API_KEY"),
			OpenAIApiKey: os.Getenv("OPENAI_API_KEY"),
			OllamaUrl:    os.Getenv("OLLAMA_URL"),
		},
		R2: storage.R2Config{
			AccountID: mustEnv("R2_ACCCOUNT_ID"),
			Bucket:    mustEnv("R2_BUCKET"),
			AccessKey: mustEnv("R2_ACCESS_KEY"),
			SecretKey: mustEnv("R2_SECRET_KEY"),
		},
		RABBITMQUrl: os.Getenv("RABBITMQ_URL"),
		LogFilePath: getEnv("LOG_FILE_PATH", "jobfit.log"),
		Env:         getEnv("GO_ENV", "development"),
		TmpDir:      getEnv("TMP_DIR", os.TempDir()),
	}

	switch cfg.LLM.Provider {
	case "gemini":
		if cfg.LLM.GoogleApiKey == "" {
			log.Fatal("empty GOOGLE_API_KEY in env")
		}
	case "openai":
		if cfg.LLM.OpenAIApiKey == "" {
			log.Fatal("empty OPENAI_API_KEY in env")
		}
	}
	return cfg
}

func main() {
	_ = godotenv.Load()
	cfg := loadConfig()

	zlog := logger.New(cfg.LogFilePath, cfg.Env)
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := os.MkdirAll(cfg.TmpDir, 0o755); err != nil {
		log.Fatalf("error creating TMP_DIR: %v", err)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		log.Fatal("error opening db. err: ", err)
	}
	defer db.Close()
	dbqueries := database.New(db)

	objects, err := storage.NewR2(ctx, cfg.R2, zlog)
	if err != nil {
		log.Fatal("error creating r2 client: ", err)
	}

	completer, err := newCompleter(ctx, cfg.LLM, zlog)
	if err != nil {
		log.Fatalf("failed to create completer: %v", err)
	}

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.RABBITMQUrl != "" {
		p, err := events.Dial(cfg.RABBITMQUrl, zlog)
		if err != nil {
			log.Fatalf("error connecting to RabbitMQ. err:  %v", err)
		}
		defer p.Close()
		publisher = p
	} else {
		zlog.Info("RABBITMQ_URL not set, analysis events disabled")
	}

	server, err := web.New(web.Config{
		Analyzer:      analysis.NewAnalyzer(completer, zlog.Named("analysis")),
		Pipeline:      regen.New(completer, cfg.TmpDir, zlog.Named("regen")),
		Auth:          auth.NewService(dbqueries, []byte(cfg.JWTSecret)),
		DB:            dbqueries,
		Objects:       objects,
		Events:        publisher,
		Drafts:        drafts.New(drafts.DefaultTTL, zlog),
		Logger:        zlog.Named("web"),
		SecureCookies: cfg.IsProduction(),
	})
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      3 * time.Minute,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		zlog.Info("server starting", zap.String("port", cfg.Port), zap.String("llm_provider", cfg.LLM.Provider))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zlog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("shutdown", zap.Error(err))
	}
}
