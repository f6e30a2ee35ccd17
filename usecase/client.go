package usecase

import (
	"context"

	"github.com/sirupsen/logrus"

	domainCache "github.com/kinesia-app/kinesia/domains/cache"
	"github.com/kinesia-app/kinesia/domains/client"
	"github.com/kinesia-app/kinesia/notionbridge"
	"github.com/kinesia-app/kinesia/validations"
)

type clientService struct {
	repo  client.Repository
	store domainCache.Store
}

func NewClientService(repo client.Repository, store domainCache.Store) client.IClientUsecase {
	return &clientService{repo: repo, store: store}
}

func (s *clientService) Create(ctx context.Context, ownerID string, req client.CreateClientRequest) (client.Client, error) {
	if err := validations.ValidateCreateClient(req); err != nil {
		return client.Client{}, err
	}

	c := client.Client{
		OwnerID:     ownerID,
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Phone:       req.Phone,
		Notes:       req.Notes,
		Enabled:     true,
	}
	if err := s.repo.Create(ctx, &c); err != nil {
		return client.Client{}, err
	}

	s.invalidateLists(ctx, ownerID)
	return c, nil
}

// List serves the client listing through the cache; writes invalidate it.
func (s *clientService) List(ctx context.Context, ownerID string) ([]client.Client, error) {
	key := notionbridge.Key(ownerID, notionbridge.KeyClientsList)
	return cachedRead(ctx, s.store, key, notionbridge.TTLList, "Client", func() ([]client.Client, error) {
		return s.repo.ListByOwner(ctx, ownerID)
	})
}

func (s *clientService) GetByID(ctx context.Context, ownerID, id string) (client.Client, error) {
	c, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return client.Client{}, err
	}
	return *c, nil
}

func (s *clientService) Update(ctx context.Context, ownerID, id string, req client.UpdateClientRequest) (client.Client, error) {
	c, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return client.Client{}, err
	}

	if req.DisplayName != nil {
		c.DisplayName = *req.DisplayName
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Notes != nil {
		c.Notes = *req.Notes
	}
	if req.Enabled != nil {
		c.Enabled = *req.Enabled
	}

	if err := validations.ValidateClient(*c); err != nil {
		return client.Client{}, err
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return client.Client{}, err
	}

	s.invalidateLists(ctx, ownerID)
	return *c, nil
}

func (s *clientService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	s.invalidateLists(ctx, ownerID)
	return nil
}

// invalidateLists drops the cached client listings after any write.
// Invalidation is best effort; a failed delete only logs.
func (s *clientService) invalidateLists(ctx context.Context, ownerID string) {
	for _, resourceKey := range []string{notionbridge.KeyClientsList, notionbridge.KeyAllClients} {
		key := notionbridge.Key(ownerID, resourceKey)
		if err := s.store.Delete(ctx, key); err != nil {
			logrus.Warnf("[Client] cache invalidation for %s failed: %v", key, err)
		}
	}
}
