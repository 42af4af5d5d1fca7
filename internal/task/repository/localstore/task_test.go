package localstore_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"taskflow/internal/model"
	"taskflow/internal/task/repository"
	"taskflow/internal/task/repository/localstore"
	"taskflow/pkg/kvstore"
	"taskflow/pkg/log"
)

type memStore struct {
	data   map[string][]byte
	getErr error
	putErr error
}

func newMemStore() *memStore { return &memStore{data: map[string][]byte{}} }

func (m *memStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, kvstore.ErrNotFound
	}
	return v, nil
}

func (m *memStore) Put(ctx context.Context, key string, value []byte) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.data[key] = value
	return nil
}

func (m *memStore) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func TestLoadTasks_Absent(t *testing.T) {
	repo := localstore.New(newMemStore(), "", log.NewNop())
	tasks, err := repo.LoadTasks(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tasks == nil || len(tasks) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", tasks)
	}
}

func TestLoadTasks_MalformedIsAbsent(t *testing.T) {
	cases := map[string]string{
		"not json":     `{{{`,
		"wrong shape":  `{"id":"1"}`,
		"missing id":   `[{"title":"A"}]`,
		"duplicate id": `[{"id":"1","title":"A"},{"id":"1","title":"B"}]`,
		"bad time":     `[{"id":"1","createdAt":"yesterday"}]`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			store := newMemStore()
			store.data[localstore.DefaultSlot] = []byte(raw)
			repo := localstore.New(store, localstore.DefaultSlot, log.NewNop())

			tasks, err := repo.LoadTasks(context.Background())
			if err != nil {
				t.Fatalf("malformed data must not error, got %v", err)
			}
			if len(tasks) != 0 {
				t.Errorf("expected empty list, got %d tasks", len(tasks))
			}
		})
	}
}

func TestLoadTasks_StoreFailure(t *testing.T) {
	store := newMemStore()
	store.getErr = errors.New("permission denied")
	repo := localstore.New(store, "", log.NewNop())

	if _, err := repo.LoadTasks(context.Background()); !errors.Is(err, repository.ErrFailedToLoad) {
		t.Errorf("expected ErrFailedToLoad, got %v", err)
	}
}

func TestSaveTasks_Failure(t *testing.T) {
	store := newMemStore()
	store.putErr = errors.New("disk full")
	repo := localstore.New(store, "", log.NewNop())

	if err := repo.SaveTasks(context.Background(), nil); !errors.Is(err, repository.ErrFailedToSave) {
		t.Errorf("expected ErrFailedToSave, got %v", err)
	}
}

func TestRoundTrip_FileStore(t *testing.T) {
	ctx := context.Background()
	fs, err := kvstore.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	repo := localstore.New(fs, "tasks", log.NewNop())

	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	want := []model.Task{
		{ID: "b", Title: "B", Description: "second", Completed: true, CreatedAt: created},
		{ID: "a", Title: "A", CreatedAt: created.Add(time.Minute)},
		{ID: "slot", CreatedAt: created.Add(2 * time.Minute)},
	}
	if err := repo.SaveTasks(ctx, want); err != nil {
		t.Fatalf("SaveTasks: %v", err)
	}

	got, err := repo.LoadTasks(ctx)
	if err != nil {
		t.Fatalf("LoadTasks: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\nwant %+v\ngot  %+v", want, got)
	}

	raw, _ := fs.Get(ctx, "tasks")
	if string(raw[:1]) != "[" {
		t.Errorf("slot must hold a JSON array, got %s", raw)
	}
}

func TestSaveTasks_EmptyListIsArray(t *testing.T) {
	store := newMemStore()
	repo := localstore.New(store, "", log.NewNop())

	if err := repo.SaveTasks(context.Background(), nil); err != nil {
		t.Fatalf("SaveTasks: %v", err)
	}
	if got := string(store.data[localstore.DefaultSlot]); got != "[]" {
		t.Errorf("expected [], got %s", got)
	}
}
