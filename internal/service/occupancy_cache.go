package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"practice-booking-service/internal/domain/entity"
	"practice-booking-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	// Redis key prefix for week occupancy sets
	RedisOccupancyKeyPrefix = "occupancy:"

	// Timeout for individual Redis operations
	redisCacheTimeout = 2 * time.Second
)

// OccupancyCache answers "which slots of this practitioner are already taken
// in this week?" from Redis, loading from PostgreSQL on a miss.
//
// Concurrent misses for the same key share one database query. Redis errors
// are logged and the answer falls back to the database, so the cache can
// never fail a read.
type OccupancyCache struct {
	db          *gorm.DB
	redisClient *redis.Client
	log         *logrus.Logger
	bookingRepo repository.BookingRepository
	ttl         time.Duration

	group singleflight.Group
}

func NewOccupancyCache(
	db *gorm.DB,
	redisClient *redis.Client,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	ttl time.Duration,
) *OccupancyCache {
	return &OccupancyCache{
		db:          db,
		redisClient: redisClient,
		log:         log,
		bookingRepo: bookingRepo,
		ttl:         ttl,
	}
}

func occupancyKey(practitionerID uuid.UUID, weekStart entity.Date) string {
	return fmt.Sprintf("%s%s:%s", RedisOccupancyKeyPrefix, practitionerID, weekStart)
}

// WeekSlotIDs returns the set of slot ids consumed by active bookings in the
// Monday-start week containing date.
func (c *OccupancyCache) WeekSlotIDs(ctx context.Context, practitionerID uuid.UUID, date entity.Date) (map[uuid.UUID]struct{}, error) {
	weekStart := date.WeekStart()
	key := occupancyKey(practitionerID, weekStart)

	if ids, ok := c.get(ctx, key); ok {
		return toSet(ids), nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		ids, err := c.bookingRepo.FindActiveSlotIDsBetween(c.db.WithContext(ctx), practitionerID, weekStart, date.WeekEnd())
		if err != nil {
			return nil, err
		}
		c.set(ctx, key, ids)
		return ids, nil
	})
	if err != nil {
		c.log.Warnf("Failed to load week occupancy for practitioner %s: %+v", practitionerID, err)
		return nil, err
	}

	return toSet(v.([]uuid.UUID)), nil
}

// Invalidate drops the cached week containing date. Called after every
// committed booking write for that practitioner.
func (c *OccupancyCache) Invalidate(ctx context.Context, practitionerID uuid.UUID, date entity.Date) {
	key := occupancyKey(practitionerID, date.WeekStart())

	cacheCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), redisCacheTimeout)
	defer cancel()

	if err := c.redisClient.Del(cacheCtx, key).Err(); err != nil {
		c.log.Warnf("Failed to invalidate occupancy key %s (non-fatal): %+v", key, err)
		return
	}
	c.log.Debugf("Invalidated occupancy key %s", key)
}

func (c *OccupancyCache) get(ctx context.Context, key string) ([]uuid.UUID, bool) {
	cacheCtx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	raw, err := c.redisClient.Get(cacheCtx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Failed to read occupancy key %s: %+v", key, err)
		}
		return nil, false
	}

	var ids []uuid.UUID
	if err := json.Unmarshal(raw, &ids); err != nil {
		c.log.Warnf("Discarding malformed occupancy key %s: %+v", key, err)
		return nil, false
	}
	return ids, true
}

func (c *OccupancyCache) set(ctx context.Context, key string, ids []uuid.UUID) {
	if ids == nil {
		ids = []uuid.UUID{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return
	}

	cacheCtx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	if err := c.redisClient.Set(cacheCtx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warnf("Failed to store occupancy key %s: %+v", key, err)
	}
}

func toSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
