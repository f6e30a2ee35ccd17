package usecase

import (
	"context"
	"errors"

	"github.com/kinesia-app/kinesia/domains/reference"
	"github.com/kinesia-app/kinesia/notionbridge"
)

type referenceService struct {
	provider *notionbridge.ReferenceProvider
}

func NewReferenceService(provider *notionbridge.ReferenceProvider) reference.IReferenceUsecase {
	return &referenceService{provider: provider}
}

func (s *referenceService) GetAll(ctx context.Context) (reference.DataSet, error) {
	if s.provider.Snapshot().Empty() {
		s.provider.RefetchAll(ctx)
	}
	return s.current()
}

func (s *referenceService) Refresh(ctx context.Context) (reference.DataSet, error) {
	s.provider.RefetchAll(ctx)
	return s.current()
}

func (s *referenceService) NeedsConfig() bool {
	return s.provider.NeedsConfig()
}

func (s *referenceService) IsCached() bool {
	return s.provider.IsCached()
}

func (s *referenceService) current() (reference.DataSet, error) {
	if msg := s.provider.Err(); msg != "" {
		return s.provider.Snapshot(), errors.New(msg)
	}
	return s.provider.Snapshot(), nil
}
