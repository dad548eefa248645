package service

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"anoa.com/makanlist/internal/model"
	"anoa.com/makanlist/internal/store"
)

// ActivityChannel is the redis pub/sub channel the feed fan-out uses.
// Every connected websocket subscribes here and filters per viewer.
const ActivityChannel = "activity_feed"

// FeedService bridges store activity events to redis pub/sub. The
// store fires its activity sink while holding its own lock, so Publish
// must never block; events go through a buffered channel drained by a
// background goroutine.
type FeedService struct {
	redisClient *redis.Client
	events      chan *model.Activity
}

func NewFeedService(redisClient *redis.Client) *FeedService {
	s := &FeedService{
		redisClient: redisClient,
		events:      make(chan *model.Activity, 256),
	}
	go s.run()
	return s
}

// Publish queues an activity for fan-out. Safe to call from the store
// sink; drops the event when the buffer is full.
func (s *FeedService) Publish(activity *model.Activity) {
	select {
	case s.events <- activity:
	default:
		zap.L().Warn("activity feed buffer full, dropping event", zap.Int("activity_id", activity.ID))
	}
}

func (s *FeedService) run() {
	ctx := context.Background()
	for activity := range s.events {
		if s.redisClient == nil {
			continue
		}
		payload, err := json.Marshal(activity)
		if err != nil {
			zap.L().Error("failed to marshal activity", zap.Error(err))
			continue
		}
		if err := s.redisClient.Publish(ctx, ActivityChannel, payload).Err(); err != nil {
			zap.L().Warn("failed to publish activity to redis", zap.Error(err))
		}
	}
}

// Attach registers the service as the store's activity sink.
func (s *FeedService) Attach(st *store.Store) {
	st.SetActivitySink(s.Publish)
}
