package httpserver

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"xiangqi/internal/server/game"
)

// Server 把 /api/* 交给 Handler，其余路径交给静态文件
type Server struct {
	h      *Handler
	webDir string
	routes http.Handler

	mu     sync.Mutex
	srv    *http.Server
	closed bool
}

func NewServer(games *game.Manager, webDir string) *Server {
	s := &Server{h: NewHandler(games), webDir: webDir}
	mux := http.NewServeMux()
	mux.Handle("/api/", s.h)
	RegisterStaticRoutes(mux, webDir)
	s.routes = mux
	return s
}

func (s *Server) Handler() *Handler {
	return s.h
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.routes.ServeHTTP(w, r)
}

// ListenAndServe 阻塞直到 Shutdown；正常关闭返回 nil
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.routes,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.srv = srv
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.srv = nil
		s.mu.Unlock()
	}()

	log.Info().Str("addr", addr).Str("web_dir", s.webDir).Msg("HTTP server listening")
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown 优雅关闭；之后的 ListenAndServe 直接返回
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.closed = true
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}
