// Package docs serves the embedded OpenAPI description of the tour API.
package docs

import (
	_ "embed"
	"net/http"
)

//go:embed openapi.json
var openAPISpec []byte

// ServeOpenAPI returns the raw OpenAPI document consumed by the
// swagger UI mounted under /swagger/.
func ServeOpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(openAPISpec)
}
