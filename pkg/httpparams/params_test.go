package httpparams

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	scopehint "github.com/goliatone/go-scopehint"
)

func TestQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/section/general?website=2&store=0", nil)
	params := Query(req)
	if got := params.Param(scopehint.ParamWebsite); got != "2" {
		t.Fatalf("expected website 2, got %q", got)
	}
	selection := scopehint.SelectionFromParams(params)
	if selection.WebsiteID != "2" || selection.StoreID != "" {
		t.Fatalf("unexpected selection %+v", selection)
	}
	if got := Query(nil).Param(scopehint.ParamStore); got != "" {
		t.Fatalf("expected empty param for nil request, got %q", got)
	}
}

func TestChiPrefersRouteParams(t *testing.T) {
	var got scopehint.Selection
	router := chi.NewRouter()
	handler := func(w http.ResponseWriter, r *http.Request) {
		got = scopehint.SelectionFromParams(Chi(r))
		w.WriteHeader(http.StatusNoContent)
	}
	router.Get("/section/{section}/website/{website}", handler)
	router.Get("/section/{section}", handler)

	cases := []struct {
		target string
		want   scopehint.Selection
	}{
		{"/section/general/website/1?website=9&store=3", scopehint.Selection{WebsiteID: "1", StoreID: "3"}},
		{"/section/general?store=2", scopehint.Selection{StoreID: "2"}},
		{"/section/general", scopehint.Selection{}},
	}
	for _, tc := range cases {
		got = scopehint.Selection{}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.target, nil))
		if rec.Code != http.StatusNoContent {
			t.Fatalf("%s: unexpected status %d", tc.target, rec.Code)
		}
		if got != tc.want {
			t.Fatalf("%s: want %+v got %+v", tc.target, tc.want, got)
		}
	}
}
