package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/boardgate/boardgate/testutil"
)

func TestRoutes(t *testing.T) {
	st := testutil.SetupTestStore(t)
	mux := NewRouter(st)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{
			name:       "health check",
			method:     "GET",
			path:       "/health",
			wantStatus: http.StatusOK,
		},
		{
			name:       "root banner",
			method:     "GET",
			path:       "/",
			wantStatus: http.StatusOK,
		},
		{
			name:       "board is public",
			method:     "GET",
			path:       "/board",
			wantStatus: http.StatusOK,
		},
		{
			name:       "login requires POST",
			method:     "GET",
			path:       "/session/login",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "vote requires POST",
			method:     "GET",
			path:       "/phases/1/votes",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "vote requires session",
			method:     "POST",
			path:       "/phases/1/votes",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "reset requires session",
			method:     "POST",
			path:       "/phases/1/reset",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "remove requires session",
			method:     "DELETE",
			path:       "/phases/1/votes/1045728316",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "me without session",
			method:     "GET",
			path:       "/session/me",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Expected status %d, got %d. Body: %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestHealthBody(t *testing.T) {
	st := testutil.SetupTestStore(t)
	mux := NewRouter(st)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Body.String() != "OK" {
		t.Errorf("Expected OK body, got %q", w.Body.String())
	}
}
