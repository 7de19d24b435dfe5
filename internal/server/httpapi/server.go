// Package httpapi exposes the HTTP surface of the server: the public auth
// endpoints and the token-protected project/task endpoints.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/projecthub/internal/logging"
)

type Server struct {
	address   string
	logger    logging.Logger
	users     UserService
	projects  ProjectService
	jwtSecret []byte
}

func NewServer(address string, l logging.Logger, us UserService, ps ProjectService, secretKey string) *Server {
	return &Server{
		address:   address,
		logger:    l.With("module", "httpapi"),
		users:     us,
		projects:  ps,
		jwtSecret: []byte(secretKey),
	}
}

// Routes builds the request multiplexer. Every /api route and the verify
// endpoint sit behind requireAuth.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /auth/signup", s.handleSignup)
	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.HandleFunc("GET /auth/verify", s.requireAuth(s.handleVerify))

	mux.HandleFunc("POST /api/projects", s.requireAuth(s.handleCreateProject))
	mux.HandleFunc("GET /api/projects", s.requireAuth(s.handleListProjects))
	mux.HandleFunc("GET /api/projects/{projectId}", s.requireAuth(s.handleGetProject))
	mux.HandleFunc("PUT /api/projects/{projectId}", s.requireAuth(s.handleUpdateProject))
	mux.HandleFunc("DELETE /api/projects/{projectId}", s.requireAuth(s.handleDeleteProject))

	mux.HandleFunc("POST /api/tasks", s.requireAuth(s.handleCreateTask))

	return mux
}

// Run starts the HTTP server and shuts it down gracefully when ctx is
// cancelled.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}
