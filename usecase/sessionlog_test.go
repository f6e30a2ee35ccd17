package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/kinesia-app/kinesia/domains/sessionlog"
	"github.com/kinesia-app/kinesia/infrastructure/cachestore"
	"github.com/kinesia-app/kinesia/notionbridge"
)

type fakeSessionLogRepo struct {
	logs      map[string]sessionlog.Log
	listCalls int
}

func newFakeSessionLogRepo() *fakeSessionLogRepo {
	return &fakeSessionLogRepo{logs: make(map[string]sessionlog.Log)}
}

func (r *fakeSessionLogRepo) InitSchema(ctx context.Context) error { return nil }

func (r *fakeSessionLogRepo) Create(ctx context.Context, l *sessionlog.Log) error {
	if l.ID == "" {
		l.ID = fmt.Sprintf("log-%d", len(r.logs)+1)
	}
	r.logs[l.ID] = *l
	return nil
}

func (r *fakeSessionLogRepo) ListByAppointment(ctx context.Context, ownerID, appointmentID string) ([]sessionlog.Log, error) {
	r.listCalls++
	var out []sessionlog.Log
	for _, l := range r.logs {
		if l.OwnerID == ownerID && l.AppointmentID == appointmentID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeSessionLogRepo) GetByID(ctx context.Context, ownerID, id string) (*sessionlog.Log, error) {
	l, ok := r.logs[id]
	if !ok || l.OwnerID != ownerID {
		return nil, sessionlog.ErrLogNotFound
	}
	return &l, nil
}

func (r *fakeSessionLogRepo) Update(ctx context.Context, l *sessionlog.Log) error {
	if _, ok := r.logs[l.ID]; !ok {
		return sessionlog.ErrLogNotFound
	}
	r.logs[l.ID] = *l
	return nil
}

func (r *fakeSessionLogRepo) Delete(ctx context.Context, ownerID, id string) error {
	if _, ok := r.logs[id]; !ok {
		return sessionlog.ErrLogNotFound
	}
	delete(r.logs, id)
	return nil
}

func TestSessionLogListReadsThroughCache(t *testing.T) {
	ctx := context.Background()
	store := cachestore.NewMemoryStore()
	repo := newFakeSessionLogRepo()
	service := NewSessionLogService(repo, store)

	created, err := service.Create(ctx, "prac-1", sessionlog.CreateLogRequest{
		AppointmentID: "appt-1",
		Entry:         "ESR on supraspinatus",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	for i := 0; i < 2; i++ {
		logs, err := service.ListByAppointment(ctx, "prac-1", "appt-1")
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(logs) != 1 || logs[0].Entry != "ESR on supraspinatus" {
			t.Fatalf("unexpected logs %+v", logs)
		}
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected 1 repository read, got %d", repo.listCalls)
	}
	if !cacheHas(t, store, notionbridge.AppointmentLogsKey("prac-1", "appt-1")) {
		t.Fatal("log listing should be cached after the first read")
	}

	// An update invalidates the entry; the next read is fresh.
	entry := "revisited"
	if _, err := service.Update(ctx, "prac-1", created.ID, sessionlog.UpdateLogRequest{Entry: &entry}); err != nil {
		t.Fatalf("update: %v", err)
	}
	logs, err := service.ListByAppointment(ctx, "prac-1", "appt-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(logs) != 1 || logs[0].Entry != "revisited" {
		t.Fatalf("stale logs after update: %+v", logs)
	}
	if repo.listCalls != 2 {
		t.Fatalf("expected a fresh read after the write, got %d repository reads", repo.listCalls)
	}
}
