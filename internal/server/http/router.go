package httpserver

import (
	"net/http"
	"strings"
)

// Server 把 /api/* 和静态页面挂到同一个 mux 上
type Server struct {
	mux *http.ServeMux
}

// NewServer webDir 为空时只提供 API
func NewServer(api http.Handler, webDir string) *Server {
	mux := http.NewServeMux()
	mux.Handle("/api/", api)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	if strings.TrimSpace(webDir) != "" {
		mux.Handle("/", http.FileServer(http.Dir(webDir)))
	}
	return &Server{mux: mux}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
