package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
)

// routeOf returns the matched route template, falling back to the raw path.
func routeOf(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tmpl, err := route.GetPathTemplate(); err == nil {
			return tmpl
		}
	}
	return r.URL.Path
}
