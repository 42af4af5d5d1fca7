package httpserver

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	authUsecase "taskflow/internal/auth/usecase"
	dashboardUsecase "taskflow/internal/dashboard/usecase"
	"taskflow/internal/task/repository/localstore"
	taskUsecase "taskflow/internal/task/usecase"
	"taskflow/pkg/kvstore"
	"taskflow/pkg/log"
)

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	l := log.NewNop()

	store, err := kvstore.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	taskUC := taskUsecase.New(l, localstore.New(store, localstore.DefaultSlot, l))
	if err := taskUC.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	srv, err := New(l, Config{
		Port:        8080,
		Mode:        "test",
		Environment: "development",
		TaskUC:      taskUC,
		AuthUC:      authUsecase.New(l, authUsecase.Config{DefaultDailyCount: 5}),
		DashboardUC: dashboardUsecase.New(l, taskUC),
	})
	if err != nil {
		t.Fatal(err)
	}
	return srv
}

func TestNewValidation(t *testing.T) {
	if _, err := New(log.NewNop(), Config{Mode: "test"}); err == nil {
		t.Error("expected error without port")
	}
	if _, err := New(log.NewNop(), Config{Mode: "test", Port: 8080}); err == nil {
		t.Error("expected error without usecases")
	}
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t)
	h := srv.Handler()

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"health", http.MethodGet, "/health", http.StatusOK},
		{"ready", http.MethodGet, "/ready", http.StatusOK},
		{"live", http.MethodGet, "/live", http.StatusOK},
		{"page", http.MethodGet, "/", http.StatusOK},
		{"static", http.MethodGet, "/static/app.js", http.StatusOK},
		{"tasks need session", http.MethodGet, "/api/v1/tasks", http.StatusUnauthorized},
		{"dashboard needs session", http.MethodGet, "/api/v1/dashboard", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			if w.Code != tt.want {
				t.Errorf("%s %s = %d, want %d", tt.method, tt.path, w.Code, tt.want)
			}
		})
	}
}

func TestLoginFlow(t *testing.T) {
	h := newTestServer(t).Handler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		bytes.NewBufferString(`{"email":"ana@example.com","password":"secret1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("login: %d %s", w.Code, w.Body.String())
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected session cookie")
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if !strings.Contains(w.Body.String(), "ana!") {
		t.Errorf("expected dashboard for ana, got %s", w.Body.String())
	}
}

func TestRunShutdown(t *testing.T) {
	srv := newTestServer(t)
	srv.port = 0

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()
	cancel()

	if err := <-done; err != nil {
		t.Errorf("Run returned %v", err)
	}
}
