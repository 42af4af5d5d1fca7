package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taskflow/config"
	"taskflow/internal/task"
	"taskflow/pkg/log"
)

func testConfig(dir string) *config.Config {
	cfg := &config.Config{}
	cfg.HTTPServer.Port = 8080
	cfg.HTTPServer.Mode = "test"
	cfg.Environment.Name = "development"
	cfg.Storage.Dir = dir
	cfg.Storage.Slot = "tasks"
	cfg.Session.TTL = time.Hour
	cfg.Dashboard.DefaultDailyCount = 5
	return cfg
}

func TestOpenTaskStorePersists(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t.TempDir())

	first, err := OpenTaskStore(ctx, cfg, log.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := first.Add(ctx, task.AddInput{Title: "Plan the week"}); err != nil {
		t.Fatal(err)
	}

	second, err := OpenTaskStore(ctx, cfg, log.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	list := second.List(ctx)
	if len(list.Tasks) != 1 || list.Tasks[0].Title != "Plan the week" {
		t.Errorf("expected persisted task, got %+v", list.Tasks)
	}
}

func TestNewServer(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t.TempDir())

	taskUC, err := OpenTaskStore(ctx, cfg, log.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	srv, err := NewServer(cfg, log.NewNop(), taskUC)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}
