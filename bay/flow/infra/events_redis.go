package infra

import (
	"context"
	"fmt"
	"strings"
	"time"

	"petshop-bay/bay/flow/domain"

	"github.com/redis/go-redis/v9"
)

// RedisEventStore acumula contadores de eventos do fluxo em hashes do Redis.
//
// Chaves (com o prefixo padrão):
//
//	petshop:events:total              kind -> contador (cumulativo, sem TTL)
//	petshop:events:minute:<YYYYMMDDhhmm>  kind -> contador (com TTL)
//	petshop:events:owner:<tutor>      kind -> contador (opcional, com TTL)
type RedisEventStore struct {
	rdb *redis.Client

	prefix string
	// ttl aplica apenas em chaves de série temporal / por tutor.
	ttl time.Duration

	bucket string // "minute" (padrão) ou "none"

	trackOwners bool
}

type RedisEventOption func(*RedisEventStore)

func WithEventsPrefix(prefix string) RedisEventOption {
	return func(s *RedisEventStore) {
		s.prefix = strings.Trim(prefix, ":")
	}
}

func WithEventsTTL(d time.Duration) RedisEventOption {
	return func(s *RedisEventStore) { s.ttl = d }
}

func WithEventsBucket(bucket string) RedisEventOption {
	return func(s *RedisEventStore) { s.bucket = strings.ToLower(strings.TrimSpace(bucket)) }
}

func WithEventsTrackOwners(track bool) RedisEventOption {
	return func(s *RedisEventStore) { s.trackOwners = track }
}

func NewRedisEventStore(rdb *redis.Client, opts ...RedisEventOption) *RedisEventStore {
	s := &RedisEventStore{
		rdb:    rdb,
		prefix: "petshop:events",
		ttl:    24 * time.Hour,
		bucket: "minute",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisEventStore) TotalKey() string { return s.prefix + ":total" }

func (s *RedisEventStore) MinuteKey(at time.Time) string {
	return fmt.Sprintf("%s:minute:%s", s.prefix, at.UTC().Format("200601021504"))
}

func (s *RedisEventStore) OwnerKey(owner string) string {
	return s.prefix + ":owner:" + owner
}

func (s *RedisEventStore) Record(ctx context.Context, ev domain.Event) error {
	if s == nil || s.rdb == nil {
		return nil
	}

	at := ev.At
	if at.IsZero() {
		at = time.Now()
	}
	field := string(ev.Kind)

	pipe := s.rdb.Pipeline()
	pipe.HIncrBy(ctx, s.TotalKey(), field, 1)

	if s.bucket == "minute" {
		bucketKey := s.MinuteKey(at)
		pipe.HIncrBy(ctx, bucketKey, field, 1)
		if s.ttl > 0 {
			pipe.Expire(ctx, bucketKey, s.ttl)
		}
	}

	if s.trackOwners {
		owner := strings.TrimSpace(ev.Entity.Owner)
		if owner != "" {
			ownerKey := s.OwnerKey(owner)
			pipe.HIncrBy(ctx, ownerKey, field, 1)
			if s.ttl > 0 {
				pipe.Expire(ctx, ownerKey, s.ttl)
			}
		}
	}

	_, err := pipe.Exec(ctx)
	return err
}
