package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/kinesia-app/kinesia/domains/appointment"
	"github.com/kinesia-app/kinesia/infrastructure/cachestore"
	"github.com/kinesia-app/kinesia/notionbridge"
)

type fakeAppointmentRepo struct {
	appointments map[string]appointment.Appointment
	getCalls     int
	betweenCalls int
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[string]appointment.Appointment)}
}

func (r *fakeAppointmentRepo) InitSchema(ctx context.Context) error { return nil }

func (r *fakeAppointmentRepo) Create(ctx context.Context, a *appointment.Appointment) error {
	if a.ID == "" {
		a.ID = "appt-1"
	}
	r.appointments[a.ID] = *a
	return nil
}

func (r *fakeAppointmentRepo) ListByOwner(ctx context.Context, ownerID string) ([]appointment.Appointment, error) {
	var out []appointment.Appointment
	for _, a := range r.appointments {
		if a.OwnerID == ownerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) ListBetween(ctx context.Context, ownerID string, from, to time.Time) ([]appointment.Appointment, error) {
	r.betweenCalls++
	var out []appointment.Appointment
	for _, a := range r.appointments {
		if a.OwnerID == ownerID && !a.StartsAt.Before(from) && a.StartsAt.Before(to) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) GetByID(ctx context.Context, ownerID, id string) (*appointment.Appointment, error) {
	r.getCalls++
	a, ok := r.appointments[id]
	if !ok || a.OwnerID != ownerID {
		return nil, appointment.ErrAppointmentNotFound
	}
	return &a, nil
}

func (r *fakeAppointmentRepo) Update(ctx context.Context, a *appointment.Appointment) error {
	if _, ok := r.appointments[a.ID]; !ok {
		return appointment.ErrAppointmentNotFound
	}
	r.appointments[a.ID] = *a
	return nil
}

func (r *fakeAppointmentRepo) Delete(ctx context.Context, ownerID, id string) error {
	if _, ok := r.appointments[id]; !ok {
		return appointment.ErrAppointmentNotFound
	}
	delete(r.appointments, id)
	return nil
}

func TestAppointmentWriteInvalidatesCaches(t *testing.T) {
	ctx := context.Background()
	store := cachestore.NewMemoryStore()
	service := NewAppointmentService(newFakeAppointmentRepo(), store)

	start := time.Now().Add(time.Hour)
	created, err := service.Create(ctx, "prac-1", appointment.CreateAppointmentRequest{
		ClientID: "c1",
		StartsAt: start,
		EndsAt:   start.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != appointment.StatusScheduled {
		t.Fatalf("new appointments start scheduled, got %s", created.Status)
	}

	seedKeys := []string{
		notionbridge.Key("prac-1", notionbridge.KeyAppointmentsAll),
		notionbridge.Key("prac-1", notionbridge.KeyTodaysAppointments),
		notionbridge.AppointmentKey("prac-1", created.ID),
		notionbridge.AppointmentLogsKey("prac-1", created.ID),
	}
	for _, key := range seedKeys {
		if err := store.Set(ctx, key, []byte(`[]`), time.Hour); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	completed := appointment.StatusCompleted
	if _, err := service.Update(ctx, "prac-1", created.ID, appointment.UpdateAppointmentRequest{Status: &completed}); err != nil {
		t.Fatalf("update: %v", err)
	}

	for _, key := range seedKeys {
		if cacheHas(t, store, key) {
			t.Fatalf("expected %s to be invalidated", key)
		}
	}
}

func TestAppointmentReadsServeThroughCache(t *testing.T) {
	ctx := context.Background()
	store := cachestore.NewMemoryStore()
	repo := newFakeAppointmentRepo()
	service := NewAppointmentService(repo, store)

	start := time.Now().Add(time.Hour)
	created, err := service.Create(ctx, "prac-1", appointment.CreateAppointmentRequest{
		ClientID: "c1",
		StartsAt: start,
		EndsAt:   start.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Today's listing: one repository read, then cache hits.
	if _, err := service.ListToday(ctx, "prac-1"); err != nil {
		t.Fatalf("list today: %v", err)
	}
	if _, err := service.ListToday(ctx, "prac-1"); err != nil {
		t.Fatalf("list today: %v", err)
	}
	if repo.betweenCalls != 1 {
		t.Fatalf("expected 1 repository read for today's listing, got %d", repo.betweenCalls)
	}

	// Per-appointment metadata behaves the same.
	if _, err := service.GetByID(ctx, "prac-1", created.ID); err != nil {
		t.Fatalf("get: %v", err)
	}
	if _, err := service.GetByID(ctx, "prac-1", created.ID); err != nil {
		t.Fatalf("get: %v", err)
	}
	if repo.getCalls != 1 {
		t.Fatalf("expected 1 repository read for metadata, got %d", repo.getCalls)
	}

	// An update drops the cached entries; the next read sees the change.
	completed := appointment.StatusCompleted
	if _, err := service.Update(ctx, "prac-1", created.ID, appointment.UpdateAppointmentRequest{Status: &completed}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := service.GetByID(ctx, "prac-1", created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != appointment.StatusCompleted {
		t.Fatalf("stale metadata after update, got status %s", got.Status)
	}
}

func TestAppointmentCreateRejectsInvertedInterval(t *testing.T) {
	service := NewAppointmentService(newFakeAppointmentRepo(), cachestore.NewMemoryStore())

	start := time.Now()
	_, err := service.Create(context.Background(), "prac-1", appointment.CreateAppointmentRequest{
		ClientID: "c1",
		StartsAt: start,
		EndsAt:   start.Add(-time.Hour),
	})
	if err == nil {
		t.Fatal("expected validation error when ends_at precedes starts_at")
	}
}
