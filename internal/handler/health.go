package handler

import "net/http"

// GetHealth handles GET /health.
// It returns HTTP 200 with the literal text body "Healthy" — the one
// endpoint on the API that is text/plain rather than JSON.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Healthy"))
}
