package handler

import (
	"net/http"

	"github.com/tlcheah2/backend-coding-test/spec"
)

// docsPage renders the embedded OpenAPI document with Scalar's standalone
// viewer. Serving the page from the binary keeps docs and code in sync.
const docsPage = `<!doctype html>
<html>
  <head>
    <title>Rides API Docs</title>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
  </head>
  <body>
    <script id="api-reference" data-url="/openapi.yaml"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
  </body>
</html>`

// GetOpenAPISpec handles GET /openapi.yaml, serving the embedded spec.
func (s *Server) GetOpenAPISpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}

// GetDocs handles GET /docs, serving the API reference UI.
func (s *Server) GetDocs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(docsPage))
}
