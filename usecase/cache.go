package usecase

import (
	"context"

	"github.com/dustin/go-humanize"

	domainCache "github.com/kinesia-app/kinesia/domains/cache"
)

type cacheService struct {
	store domainCache.Store
}

func NewCacheService(store domainCache.Store) domainCache.ICacheUsecase {
	return &cacheService{store: store}
}

func (s *cacheService) GetStats(ctx context.Context) (domainCache.Stats, error) {
	records, err := s.store.ListAll(ctx)
	if err != nil {
		return domainCache.Stats{}, err
	}

	var totalSize int64
	for _, rec := range records {
		totalSize += int64(len(rec.Data))
	}

	return domainCache.Stats{
		Entries:   len(records),
		TotalSize: totalSize,
		HumanSize: humanize.Bytes(uint64(totalSize)),
	}, nil
}

func (s *cacheService) ListEntries(ctx context.Context) ([]domainCache.Record, error) {
	return s.store.ListAll(ctx)
}

func (s *cacheService) DeleteKey(ctx context.Context, key string) error {
	return s.store.Delete(ctx, key)
}

func (s *cacheService) DeleteByPrefix(ctx context.Context, prefix string) error {
	return s.store.DeleteByPrefix(ctx, prefix)
}

func (s *cacheService) ClearOwner(ctx context.Context, ownerID string) error {
	return s.store.DeleteByPrefix(ctx, ownerID+":")
}
