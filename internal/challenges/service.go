package challenges

import (
	"context"
	"encoding/json"
	"time"

	"github.com/coocood/freecache"
	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/endlessblink/sweatbot/internal/scoring"
	"github.com/endlessblink/sweatbot/internal/telemetry/tracing"
)

const (
	snapshotRedisKey = "challenges::active-snapshot"
	snapshotTTL      = 5 * time.Minute

	hotCacheKey       = "active-snapshot"
	hotCacheExpireSec = 60

	megabyte = 1024 * 1024
)

// Snapshot is the resolved set of challenges and the seasonal event active
// at TakenAt. It is what gets cached and served, never the raw catalog.
type Snapshot struct {
	Challenges    []Challenge    `json:"challenges"`
	SeasonalEvent *SeasonalEvent `json:"seasonal_event,omitempty"`
	TakenAt       time.Time      `json:"taken_at"`
}

// Service resolves the active challenge set. Lookups go through an
// in-process freecache hot layer, then redis, then the in-code catalog.
// The catalog is authoritative, so cache failures degrade to a recompute.
type Service struct {
	redisClient *redis.Client
	hotCache    *freecache.Cache
	now         func() time.Time
}

func NewService(redisClient *redis.Client) *Service {
	return &Service{
		redisClient: redisClient,
		hotCache:    freecache.NewCache(1 * megabyte),
		now:         time.Now,
	}
}

// ActiveSnapshot returns the currently active challenges and seasonal event.
func (s *Service) ActiveSnapshot(ctx context.Context) Snapshot {
	ctx, span := tracing.GlobalTracer.Start(ctx, "challenges.activeSnapshot")
	defer span.End()

	if snapshotBytes, err := s.hotCache.Get([]byte(hotCacheKey)); err == nil {
		var snapshot Snapshot
		unmarshalErr := json.Unmarshal(snapshotBytes, &snapshot)
		if unmarshalErr == nil {
			span.SetAttributes(attribute.String("snapshot.source", "hot-cache"))
			return snapshot
		}
		log.Errorf("failed to unmarshal challenges snapshot from hot cache: %s", unmarshalErr)
	}

	cmd := s.redisClient.Get(ctx, snapshotRedisKey)
	if snapshotJson := cmd.Val(); snapshotJson != "" {
		var snapshot Snapshot
		unmarshalErr := json.Unmarshal([]byte(snapshotJson), &snapshot)
		if unmarshalErr == nil {
			span.SetAttributes(attribute.String("snapshot.source", "redis"))
			s.setHotCache([]byte(snapshotJson))
			return snapshot
		}
		log.Errorf("failed to unmarshal challenges snapshot from redis: %s", unmarshalErr)
	} else if err := cmd.Err(); err != nil && err != redis.Nil {
		log.Errorf("failed to get challenges snapshot from redis: %s", err)
	}

	span.SetAttributes(attribute.String("snapshot.source", "catalog"))
	snapshot := activeFromCatalog(s.now())
	s.cacheSnapshot(ctx, snapshot)
	return snapshot
}

// ActiveChallenges adapts the active snapshot to the shape the scoring
// engine consumes.
func (s *Service) ActiveChallenges(ctx context.Context) ([]scoring.ActiveChallenge, *scoring.SeasonalEvent, error) {
	snapshot := s.ActiveSnapshot(ctx)

	active := make([]scoring.ActiveChallenge, 0, len(snapshot.Challenges))
	for _, c := range snapshot.Challenges {
		active = append(active, scoring.ActiveChallenge{
			ChallengeID: c.ID,
			Multiplier:  c.Multiplier,
		})
	}

	var event *scoring.SeasonalEvent
	if snapshot.SeasonalEvent != nil {
		event = &scoring.SeasonalEvent{
			EventID:    snapshot.SeasonalEvent.ID,
			Name:       snapshot.SeasonalEvent.Name,
			Multiplier: snapshot.SeasonalEvent.Multiplier,
		}
	}

	return active, event, nil
}

func (s *Service) cacheSnapshot(ctx context.Context, snapshot Snapshot) {
	snapshotBytes, err := json.Marshal(snapshot)
	if err != nil {
		log.Errorf("failed to marshal challenges snapshot: %s", err)
		return
	}

	if err := s.redisClient.Set(ctx, snapshotRedisKey, snapshotBytes, snapshotTTL).Err(); err != nil {
		log.Errorf("failed to cache challenges snapshot in redis: %s", err)
	} else {
		log.Debugf("challenges snapshot cache set in redis")
	}

	s.setHotCache(snapshotBytes)
}

func (s *Service) setHotCache(snapshotBytes []byte) {
	if err := s.hotCache.Set([]byte(hotCacheKey), snapshotBytes, hotCacheExpireSec); err != nil {
		log.Errorf("failed to set challenges snapshot hot cache: %s", err)
	}
}
