package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"netdiag/internal/models"
)

// Server serves stored diagnoses as JSON
type Server struct {
	db   models.Database
	port int
	srv  *http.Server
}

// New creates a new web server
func New(db models.Database, port int) *Server {
	s := &Server{
		db:   db,
		port: port,
	}
	s.srv = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the API routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/records", s.handleRecords)
	mux.HandleFunc("/api/stats", s.handleStats)
	mux.HandleFunc("/api/causes", s.handleCauses)
	mux.HandleFunc("/api/runs/", s.handleRun)

	return mux
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	logrus.Info("[ WEB ] server starting on port ", s.port)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for active ones
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
