package cli

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/graphplot/graphplot/pkg/config"
	"github.com/graphplot/graphplot/pkg/graph"
)

func TestHandleRender(t *testing.T) {
	g := graph.Cycle(5)
	handler := handleRender(g, config.Default())

	tests := []struct {
		name        string
		query       string
		wantStatus  int
		wantContent string
	}{
		{"default layout png", "", http.StatusOK, "image/png"},
		{"explicit layout", "?layout=circular", http.StatusOK, "image/png"},
		{"dot format", "?layout=circular&format=dot", http.StatusOK, "text/vnd.graphviz"},
		{"custom seed", "?layout=random&seed=7", http.StatusOK, "image/png"},
		{"unknown layout", "?layout=hexagonal", http.StatusBadRequest, ""},
		{"unknown format", "?format=pdf", http.StatusBadRequest, ""},
		{"malformed seed", "?seed=abc", http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/render"+tt.query, nil)
			rec := httptest.NewRecorder()
			handler(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body: %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantContent != "" {
				ct := rec.Header().Get("Content-Type")
				if !strings.HasPrefix(ct, tt.wantContent) {
					t.Errorf("Content-Type = %q, want prefix %q", ct, tt.wantContent)
				}
			}
		})
	}
}

func TestHandleIndexLinksLayouts(t *testing.T) {
	g := graph.Path(3)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handleIndex(g)(rec, req)

	body := rec.Body.String()
	for _, name := range []string{"circular", "spring", "planar"} {
		if !strings.Contains(body, "layout="+name) {
			t.Errorf("index page missing link for %s", name)
		}
	}
}
