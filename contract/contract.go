// Package contract is the single source of truth for the HTTP API surface:
// one Route per operation, consumed by the server when registering handlers
// and by the Go client when building requests. Paths use ":id" placeholders.
package contract

import (
	"fmt"
	"net/http"
	"strings"
)

// Route pairs an HTTP method with a parameterized path.
type Route struct {
	Method string
	Path   string
}

var (
	ProfileGet    = Route{http.MethodGet, "/api/profile"}
	ProfileUpdate = Route{http.MethodPost, "/api/profile"} // POST upserts the singleton profile

	PublicationsList   = Route{http.MethodGet, "/api/publications"}
	PublicationsCreate = Route{http.MethodPost, "/api/publications"}
	PublicationsUpdate = Route{http.MethodPut, "/api/publications/:id"}
	PublicationsDelete = Route{http.MethodDelete, "/api/publications/:id"}

	ProjectsList   = Route{http.MethodGet, "/api/projects"}
	ProjectsCreate = Route{http.MethodPost, "/api/projects"}
	ProjectsUpdate = Route{http.MethodPut, "/api/projects/:id"}
	ProjectsDelete = Route{http.MethodDelete, "/api/projects/:id"}

	NewsList   = Route{http.MethodGet, "/api/news"}
	NewsCreate = Route{http.MethodPost, "/api/news"}
	NewsDelete = Route{http.MethodDelete, "/api/news/:id"}
)

// URL substitutes the route's placeholders with the given values. The
// replacement is a plain string operation; no escaping is applied.
func (r Route) URL(params map[string]any) string {
	url := r.Path
	for key, value := range params {
		url = strings.ReplaceAll(url, ":"+key, fmt.Sprint(value))
	}
	return url
}

// Pattern returns the path in chi's "{id}" placeholder form for router
// registration.
func (r Route) Pattern() string {
	pattern := r.Path
	for {
		start := strings.Index(pattern, ":")
		if start < 0 {
			return pattern
		}
		end := strings.IndexByte(pattern[start:], '/')
		if end < 0 {
			end = len(pattern)
		} else {
			end += start
		}
		pattern = pattern[:start] + "{" + pattern[start+1:end] + "}" + pattern[end:]
	}
}
