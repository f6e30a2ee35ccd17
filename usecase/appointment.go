package usecase

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kinesia-app/kinesia/domains/appointment"
	domainCache "github.com/kinesia-app/kinesia/domains/cache"
	"github.com/kinesia-app/kinesia/notionbridge"
	"github.com/kinesia-app/kinesia/validations"
)

type appointmentService struct {
	repo  appointment.Repository
	store domainCache.Store
}

func NewAppointmentService(repo appointment.Repository, store domainCache.Store) appointment.IAppointmentUsecase {
	return &appointmentService{repo: repo, store: store}
}

func (s *appointmentService) Create(ctx context.Context, ownerID string, req appointment.CreateAppointmentRequest) (appointment.Appointment, error) {
	if err := validations.ValidateCreateAppointment(req); err != nil {
		return appointment.Appointment{}, err
	}

	a := appointment.Appointment{
		OwnerID:  ownerID,
		ClientID: req.ClientID,
		Title:    req.Title,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
		Status:   appointment.StatusScheduled,
		Notes:    req.Notes,
	}
	if err := s.repo.Create(ctx, &a); err != nil {
		return appointment.Appointment{}, err
	}

	s.invalidate(ctx, ownerID, a.ID)
	return a, nil
}

func (s *appointmentService) List(ctx context.Context, ownerID string) ([]appointment.Appointment, error) {
	key := notionbridge.Key(ownerID, notionbridge.KeyAppointmentsAll)
	return cachedRead(ctx, s.store, key, notionbridge.TTLList, "Appointment", func() ([]appointment.Appointment, error) {
		return s.repo.ListByOwner(ctx, ownerID)
	})
}

// ListToday returns the owner's appointments in the current local day.
// The short TTL bounds staleness across the midnight rollover.
func (s *appointmentService) ListToday(ctx context.Context, ownerID string) ([]appointment.Appointment, error) {
	key := notionbridge.Key(ownerID, notionbridge.KeyTodaysAppointments)
	return cachedRead(ctx, s.store, key, notionbridge.TTLList, "Appointment", func() ([]appointment.Appointment, error) {
		now := time.Now()
		from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		to := from.Add(24 * time.Hour)
		return s.repo.ListBetween(ctx, ownerID, from, to)
	})
}

func (s *appointmentService) GetByID(ctx context.Context, ownerID, id string) (appointment.Appointment, error) {
	key := notionbridge.AppointmentKey(ownerID, id)
	return cachedRead(ctx, s.store, key, notionbridge.TTLAppointmentMeta, "Appointment", func() (appointment.Appointment, error) {
		a, err := s.repo.GetByID(ctx, ownerID, id)
		if err != nil {
			return appointment.Appointment{}, err
		}
		return *a, nil
	})
}

func (s *appointmentService) Update(ctx context.Context, ownerID, id string, req appointment.UpdateAppointmentRequest) (appointment.Appointment, error) {
	a, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return appointment.Appointment{}, err
	}

	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.StartsAt != nil {
		a.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		a.EndsAt = *req.EndsAt
	}
	if req.Status != nil {
		a.Status = *req.Status
	}
	if req.Notes != nil {
		a.Notes = *req.Notes
	}

	if err := validations.ValidateAppointment(*a); err != nil {
		return appointment.Appointment{}, err
	}
	if err := s.repo.Update(ctx, a); err != nil {
		return appointment.Appointment{}, err
	}

	s.invalidate(ctx, ownerID, id)
	return *a, nil
}

func (s *appointmentService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	s.invalidate(ctx, ownerID, id)
	return nil
}

// invalidate drops the cached listings plus the per-appointment entries
// after any write. Best effort; failures only log.
func (s *appointmentService) invalidate(ctx context.Context, ownerID, appointmentID string) {
	keys := []string{
		notionbridge.Key(ownerID, notionbridge.KeyAppointmentsAll),
		notionbridge.Key(ownerID, notionbridge.KeyTodaysAppointments),
		notionbridge.AppointmentKey(ownerID, appointmentID),
		notionbridge.AppointmentLogsKey(ownerID, appointmentID),
	}
	for _, key := range keys {
		if err := s.store.Delete(ctx, key); err != nil {
			logrus.Warnf("[Appointment] cache invalidation for %s failed: %v", key, err)
		}
	}
}
