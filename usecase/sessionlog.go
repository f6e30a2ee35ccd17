package usecase

import (
	"context"

	"github.com/sirupsen/logrus"

	domainCache "github.com/kinesia-app/kinesia/domains/cache"
	"github.com/kinesia-app/kinesia/domains/sessionlog"
	"github.com/kinesia-app/kinesia/notionbridge"
	"github.com/kinesia-app/kinesia/validations"
)

type sessionLogService struct {
	repo  sessionlog.Repository
	store domainCache.Store
}

func NewSessionLogService(repo sessionlog.Repository, store domainCache.Store) sessionlog.ISessionLogUsecase {
	return &sessionLogService{repo: repo, store: store}
}

func (s *sessionLogService) Create(ctx context.Context, ownerID string, req sessionlog.CreateLogRequest) (sessionlog.Log, error) {
	if err := validations.ValidateCreateLog(req); err != nil {
		return sessionlog.Log{}, err
	}

	l := sessionlog.Log{
		OwnerID:       ownerID,
		AppointmentID: req.AppointmentID,
		Entry:         req.Entry,
		ModeIDs:       req.ModeIDs,
		MuscleIDs:     req.MuscleIDs,
		ChakraIDs:     req.ChakraIDs,
		ChannelIDs:    req.ChannelIDs,
		AcupointIDs:   req.AcupointIDs,
	}
	if err := s.repo.Create(ctx, &l); err != nil {
		return sessionlog.Log{}, err
	}

	s.invalidate(ctx, ownerID, l.AppointmentID)
	return l, nil
}

func (s *sessionLogService) ListByAppointment(ctx context.Context, ownerID, appointmentID string) ([]sessionlog.Log, error) {
	key := notionbridge.AppointmentLogsKey(ownerID, appointmentID)
	return cachedRead(ctx, s.store, key, notionbridge.TTLAppointmentLogs, "SessionLog", func() ([]sessionlog.Log, error) {
		return s.repo.ListByAppointment(ctx, ownerID, appointmentID)
	})
}

func (s *sessionLogService) Update(ctx context.Context, ownerID, id string, req sessionlog.UpdateLogRequest) (sessionlog.Log, error) {
	l, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return sessionlog.Log{}, err
	}

	if req.Entry != nil {
		l.Entry = *req.Entry
	}
	if req.ModeIDs != nil {
		l.ModeIDs = req.ModeIDs
	}
	if req.MuscleIDs != nil {
		l.MuscleIDs = req.MuscleIDs
	}
	if req.ChakraIDs != nil {
		l.ChakraIDs = req.ChakraIDs
	}
	if req.ChannelIDs != nil {
		l.ChannelIDs = req.ChannelIDs
	}
	if req.AcupointIDs != nil {
		l.AcupointIDs = req.AcupointIDs
	}

	if err := s.repo.Update(ctx, l); err != nil {
		return sessionlog.Log{}, err
	}

	s.invalidate(ctx, ownerID, l.AppointmentID)
	return *l, nil
}

func (s *sessionLogService) Delete(ctx context.Context, ownerID, id string) error {
	l, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	s.invalidate(ctx, ownerID, l.AppointmentID)
	return nil
}

func (s *sessionLogService) invalidate(ctx context.Context, ownerID, appointmentID string) {
	key := notionbridge.AppointmentLogsKey(ownerID, appointmentID)
	if err := s.store.Delete(ctx, key); err != nil {
		logrus.Warnf("[SessionLog] cache invalidation for %s failed: %v", key, err)
	}
}
