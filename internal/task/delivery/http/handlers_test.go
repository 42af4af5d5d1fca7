package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"taskflow/internal/auth"
	authUsecase "taskflow/internal/auth/usecase"
	"taskflow/internal/middleware"
	"taskflow/internal/task/repository/localstore"
	taskUsecase "taskflow/internal/task/usecase"
	"taskflow/pkg/kvstore"
	"taskflow/pkg/log"
)

type testEnv struct {
	r      *gin.Engine
	cookie *http.Cookie
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	l := log.NewNop()

	store, err := kvstore.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	taskUC := taskUsecase.New(l, localstore.New(store, localstore.DefaultSlot, l))
	if err := taskUC.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	authUC := authUsecase.New(l, authUsecase.Config{DefaultDailyCount: 5})
	out, err := authUC.Login(context.Background(), auth.LoginInput{Email: "ana@example.com", Password: "secret1"})
	if err != nil {
		t.Fatal(err)
	}

	mw := middleware.New(l, authUC, middleware.CookieConfig{})
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1/tasks"), New(l, taskUC), mw)

	return testEnv{
		r:      r,
		cookie: &http.Cookie{Name: mw.CookieName(), Value: out.Session.Token},
	}
}

type envelope[T any] struct {
	ErrorCode int `json:"error_code"`
	Data      T   `json:"data"`
}

func (e testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(e.cookie)
	w := httptest.NewRecorder()
	e.r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var env envelope[T]
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	return env.Data
}

func (e testEnv) add(t *testing.T, title string) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/v1/tasks", createReq{Title: title})
	if w.Code != http.StatusOK {
		t.Fatalf("add %q: %d %s", title, w.Code, w.Body.String())
	}
	out := decode[mutationResp](t, w)
	if out.Task == nil {
		t.Fatalf("add %q: no task returned", title)
	}
	return out.Task.ID
}

func titles(tasks []taskResp) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func TestRequiresSession(t *testing.T) {
	env := newTestEnv(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
	w := httptest.NewRecorder()
	env.r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestDragScenario(t *testing.T) {
	env := newTestEnv(t)
	a := env.add(t, "A")
	b := env.add(t, "B")

	env.do(t, http.MethodPost, "/api/v1/tasks/drag/start", dragReq{ID: a})
	over := decode[dragResp](t, env.do(t, http.MethodPost, "/api/v1/tasks/drag/over", dragReq{ID: b}))
	if over.State != "dragging" || over.Hover != b {
		t.Fatalf("unexpected drag state %+v", over)
	}

	drop := decode[dropResp](t, env.do(t, http.MethodPost, "/api/v1/tasks/drag/drop", dragReq{ID: b}))
	if !drop.Moved {
		t.Fatal("expected move")
	}
	if got := titles(drop.Tasks); got[0] != "B" || got[1] != "A" {
		t.Fatalf("expected [B A], got %v", got)
	}

	env.do(t, http.MethodPost, "/api/v1/tasks/"+b+"/toggle", nil)
	list := decode[listResp](t, env.do(t, http.MethodGet, "/api/v1/tasks", nil))
	if list.Stats.Completed != 1 || list.Stats.Total != 2 || list.Stats.Percentage != 50 {
		t.Errorf("unexpected stats %+v", list.Stats)
	}

	env.do(t, http.MethodDelete, "/api/v1/tasks/"+a, nil)
	list = decode[listResp](t, env.do(t, http.MethodGet, "/api/v1/tasks", nil))
	if len(list.Tasks) != 1 || list.Tasks[0].ID != b || list.Stats.Total != 1 {
		t.Errorf("unexpected list after delete %+v", list)
	}
}

func TestDropWithoutDrag(t *testing.T) {
	env := newTestEnv(t)
	a := env.add(t, "A")
	env.add(t, "B")

	drop := decode[dropResp](t, env.do(t, http.MethodPost, "/api/v1/tasks/drag/drop", dragReq{ID: a}))
	if drop.Moved {
		t.Error("drop without drag must not move")
	}

	env.do(t, http.MethodPost, "/api/v1/tasks/drag/start", dragReq{ID: a})
	drop = decode[dropResp](t, env.do(t, http.MethodPost, "/api/v1/tasks/drag/drop", dragReq{ID: a}))
	if drop.Moved || drop.Tasks[0].ID != a {
		t.Error("drop on self must not move")
	}

	env.do(t, http.MethodPost, "/api/v1/tasks/drag/start", dragReq{ID: a})
	cancel := decode[dragResp](t, env.do(t, http.MethodPost, "/api/v1/tasks/drag/cancel", nil))
	if cancel.State != "idle" {
		t.Errorf("expected idle after cancel, got %s", cancel.State)
	}
}

func TestOrder(t *testing.T) {
	env := newTestEnv(t)
	a := env.add(t, "A")
	b := env.add(t, "B")

	w := env.do(t, http.MethodPut, "/api/v1/tasks/order", orderReq{IDs: []string{b, a}})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := titles(decode[listResp](t, w).Tasks); got[0] != "B" {
		t.Errorf("expected B first, got %v", got)
	}

	w = env.do(t, http.MethodPut, "/api/v1/tasks/order", orderReq{IDs: []string{a, a}})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for duplicate ids, got %d", w.Code)
	}
}

func TestSlotsAndEdit(t *testing.T) {
	env := newTestEnv(t)

	slots := decode[slotsResp](t, env.do(t, http.MethodPost, "/api/v1/tasks/slots", slotsReq{Count: 3}))
	if len(slots.Created) != 3 || !slots.Created[0].Placeholder {
		t.Fatalf("expected 3 placeholders, got %+v", slots.Created)
	}

	stats := decode[struct {
		Total int `json:"total"`
	}](t, env.do(t, http.MethodGet, "/api/v1/tasks/stats", nil))
	if stats.Total != 0 {
		t.Errorf("placeholders must not count, total=%d", stats.Total)
	}

	done := true
	w := env.do(t, http.MethodPut, "/api/v1/tasks/"+slots.Created[0].ID, updateReq{Title: "Write", Completed: &done})
	edited := decode[mutationResp](t, w)
	if !edited.Changed || edited.Task.Title != "Write" || !edited.Task.Completed {
		t.Errorf("unexpected edit result %+v", edited)
	}

	if w := env.do(t, http.MethodPost, "/api/v1/tasks/slots", slotsReq{Count: -1}); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for negative count, got %d", w.Code)
	}

	missing := decode[mutationResp](t, env.do(t, http.MethodDelete, "/api/v1/tasks/nope", nil))
	if missing.Changed {
		t.Error("deleting unknown id must be a no-op")
	}
}

func TestDragRequestErrors(t *testing.T) {
	env := newTestEnv(t)

	tcs := map[string]struct {
		body    string
		wantMsg string
	}{
		"malformed json": {body: `{"id":`, wantMsg: "bad request"},
		"wrong type":     {body: `{"id":42}`, wantMsg: "bad request"},
		"missing id":     {body: `{}`, wantMsg: "id is required"},
		"blank id":       {body: `{"id":"  "}`, wantMsg: "id is required"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/drag/start", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			req.AddCookie(env.cookie)
			w := httptest.NewRecorder()
			env.r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			var body struct {
				Message string `json:"message"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatal(err)
			}
			if body.Message != tc.wantMsg {
				t.Errorf("message = %q, want %q", body.Message, tc.wantMsg)
			}
		})
	}
}
