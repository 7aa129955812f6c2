// Package server provides the HTTP REST API for the interview prep service.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/jordan/interview-ace/internal/bank"
	"github.com/jordan/interview-ace/internal/config"
	"github.com/jordan/interview-ace/internal/db"
	"github.com/jordan/interview-ace/internal/llm"
)

// Server represents the HTTP server and its wired dependencies.
type Server struct {
	httpServer       *http.Server
	db               *db.DB
	llm              llm.Client
	sessions         *SessionService
	userService      *UserService
	authHandler      *AuthHandler
	interviewHandler *InterviewHandler
	logger           zerolog.Logger
}

// New connects the database, builds the model client and registers routes.
func New(cfg *config.AppConfig, logger zerolog.Logger) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureIndexes(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	client, err := llm.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create model client: %w", err)
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	sessionConfig, err := config.NewSessionConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create session config: %w", err)
	}

	s := &Server{
		db:       database,
		llm:      client,
		sessions: NewSessionService(sessionConfig),
		logger:   logger,
	}
	s.userService = NewUserService(database, passwordConfig)
	s.authHandler = NewAuthHandler(s.userService, s.sessions)
	s.interviewHandler = NewInterviewHandler(bank.New(cfg.QuestionBankPath), client, cfg.UploadDir, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /register", s.authHandler.Register)
	mux.HandleFunc("POST /login", s.authHandler.Login)
	mux.HandleFunc("GET /logout", s.authHandler.Logout)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /roles", s.interviewHandler.Roles)
	mux.HandleFunc("GET /levels", s.interviewHandler.Levels)
	mux.HandleFunc("POST /process-resume", s.requireSession(s.interviewHandler.ProcessResume))
	mux.HandleFunc("POST /submit-manual", s.requireSession(s.interviewHandler.SubmitManual))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      withLogging(logger, withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // generation calls can run long
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Info().Str("addr", s.httpServer.Addr).Msg("server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal().Err(err).Msg("server error")
		}
	}()

	<-stop
	s.logger.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.llm.Close()
	if err := s.db.Close(ctx); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}

	s.logger.Info().Msg("server stopped")
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// errorResponse writes the standard {"error": message} body.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	errorJSON(w, status, message)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func errorJSON(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
