// Package httpparams adapts net/http requests to scopehint.Params.
package httpparams

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	scopehint "github.com/goliatone/go-scopehint"
)

// Query exposes the URL query string of r.
func Query(r *http.Request) scopehint.Params {
	if r == nil || r.URL == nil {
		return scopehint.ParamMap(nil)
	}
	return queryParams(r.URL.Query())
}

// Chi prefers chi route parameters and falls back to the query string, so
// both /section/general/website/1 and /section/general?website=1 select the
// same scope.
func Chi(r *http.Request) scopehint.Params {
	return chiParams{request: r, query: Query(r)}
}

type queryParams url.Values

func (q queryParams) Param(name string) string {
	return url.Values(q).Get(name)
}

type chiParams struct {
	request *http.Request
	query   scopehint.Params
}

func (c chiParams) Param(name string) string {
	if c.request != nil {
		if value := chi.URLParam(c.request, name); value != "" {
			return value
		}
	}
	return c.query.Param(name)
}
