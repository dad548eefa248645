package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"anoa.com/makanlist/internal/model"
	"anoa.com/makanlist/internal/service"
	"anoa.com/makanlist/internal/store"
	"anoa.com/makanlist/pkg/response"
)

type ActivityHandler struct {
	store       *store.Store
	redisClient *redis.Client
	upgrader    websocket.Upgrader
}

func NewActivityHandler(st *store.Store, redisClient *redis.Client) *ActivityHandler {
	return &ActivityHandler{
		store:       st,
		redisClient: redisClient,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins for now
			},
		},
	}
}

// GetFeed returns the newest activities relevant to the viewer.
func (h *ActivityHandler) GetFeed(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": h.store.GetActivityFeed(userID)})
}

// HandleWebSocket streams live activity events to the client. All
// events flow through one shared redis channel; each connection keeps
// only what its viewer is allowed to see.
func (h *ActivityHandler) HandleWebSocket(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Warn("failed to upgrade websocket", zap.Error(err))
		return
	}
	defer conn.Close()

	if h.redisClient == nil {
		zap.L().Warn("redis client is nil, cannot stream activity feed")
		return
	}

	pubsub := h.redisClient.Subscribe(c.Request.Context(), service.ActivityChannel)
	defer pubsub.Close()

	// Wait for confirmation that subscription is created
	if _, err := pubsub.Receive(c.Request.Context()); err != nil {
		zap.L().Warn("failed to subscribe to redis channel", zap.Error(err))
		return
	}

	ch := pubsub.Channel()

	// Signal client disconnect
	clientClosed := make(chan struct{})

	go func() {
		defer close(clientClosed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case msg := <-ch:
			var activity model.Activity
			if err := json.Unmarshal([]byte(msg.Payload), &activity); err != nil {
				zap.L().Warn("failed to decode activity event", zap.Error(err))
				continue
			}

			if !h.store.ActivityVisibleTo(userID, &activity) {
				continue
			}

			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				return
			}
		case <-clientClosed:
			return
		case <-c.Request.Context().Done():
			return
		}
	}
}
