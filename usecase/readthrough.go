package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	domainCache "github.com/kinesia-app/kinesia/domains/cache"
)

// cachedRead serves a repository read through the cache store: a hit wins,
// a miss falls back to fetch and repopulates the key. Cache failures
// degrade to the repository path and are only logged; the write-path
// invalidations keep these entries from outliving the data they copy.
func cachedRead[T any](ctx context.Context, store domainCache.Store, key string, ttl time.Duration, tag string, fetch func() (T, error)) (T, error) {
	var zero T

	data, ok, err := store.Get(ctx, key)
	if err != nil {
		logrus.Warnf("[%s] cache read for %s failed, treating as miss: %v", tag, key, err)
	} else if ok {
		var out T
		if err := json.Unmarshal(data, &out); err == nil {
			return out, nil
		}
		logrus.Warnf("[%s] cache entry %s is not decodable, refetching", tag, key)
	}

	out, err := fetch()
	if err != nil {
		return zero, err
	}
	if data, err := json.Marshal(out); err == nil {
		if err := store.Set(ctx, key, data, ttl); err != nil {
			logrus.Warnf("[%s] cache write for %s failed: %v", tag, key, err)
		}
	}
	return out, nil
}
