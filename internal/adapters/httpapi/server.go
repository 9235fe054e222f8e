package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Stats es lo que exponemos del proceso; lo implementa *paginator.Paginator.
type Stats interface {
	Active() int
}

type Server struct {
	stats   Stats
	log     *zap.Logger
	mux     *http.ServeMux
	started time.Time

	mu  sync.Mutex
	srv *http.Server
}

func New(stats Stats, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{stats: stats, log: log.Named("http"), mux: http.NewServeMux(), started: time.Now()}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("/healthz", s.handleHealth)
}

func (s *Server) Handler() http.Handler { return s.mux }

type healthResponse struct {
	Status           string `json:"status"`
	Uptime           string `json:"uptime"`
	ActivePaginators int    `json:"active_paginators"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:           "ok",
		Uptime:           time.Since(s.started).Truncate(time.Second).String(),
		ActivePaginators: s.stats.Active(),
	})
}

// Start bloquea hasta que el server se cierre.
func (s *Server) Start(addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.mux, ReadHeaderTimeout: 5 * time.Second}
	s.mu.Lock()
	s.srv = srv
	s.mu.Unlock()

	s.log.Info("listening", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}
