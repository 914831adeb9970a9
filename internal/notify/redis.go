// internal/notify/redis.go
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const channelPrefix = "fridaybar:lobby:"

// RedisBridge is a Notifier that mirrors every published snapshot onto a
// Redis channel and relays snapshots published by other service instances
// into the local hub. With a single instance it degrades to a plain Hub plus
// one redundant PUBLISH.
type RedisBridge struct {
	hub      *Hub
	rdb      *redis.Client
	log      *logrus.Logger
	instance string
}

// NewRedisBridge connects to Redis, verifies it with a ping, and starts the
// relay goroutine. The returned bridge stops relaying when ctx is cancelled.
func NewRedisBridge(ctx context.Context, hub *Hub, addr string, db int, log *logrus.Logger) (*RedisBridge, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr, DB: db})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis at %s: %w", addr, err)
	}

	b := &RedisBridge{
		hub:      hub,
		rdb:      rdb,
		log:      log,
		instance: uuid.NewString(),
	}
	go b.relay(ctx)
	return b, nil
}

func (b *RedisBridge) Publish(lobbyID uuid.UUID, snap *Snapshot) {
	b.hub.Publish(lobbyID, snap)

	out := *snap
	out.Origin = b.instance
	data, err := json.Marshal(&out)
	if err != nil {
		b.log.WithError(err).Warn("marshal snapshot for redis")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := b.rdb.Publish(ctx, channelPrefix+lobbyID.String(), data).Err(); err != nil {
		b.log.WithError(err).WithField("lobby", lobbyID).Warn("redis publish failed")
	}
}

func (b *RedisBridge) Subscribe(lobbyID uuid.UUID, fn func(*Snapshot)) func() {
	return b.hub.Subscribe(lobbyID, fn)
}

// relay feeds remote snapshots into the local hub, skipping our own echoes.
func (b *RedisBridge) relay(ctx context.Context) {
	sub := b.rdb.PSubscribe(ctx, channelPrefix+"*")
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-sub.Channel():
			if !ok {
				return
			}
			idStr := strings.TrimPrefix(msg.Channel, channelPrefix)
			lobbyID, err := uuid.Parse(idStr)
			if err != nil {
				b.log.Warnf("redis relay: bad channel %q", msg.Channel)
				continue
			}
			var snap Snapshot
			if err := json.Unmarshal([]byte(msg.Payload), &snap); err != nil {
				b.log.WithError(err).Warn("redis relay: bad payload")
				continue
			}
			if snap.Origin == b.instance {
				continue
			}
			b.hub.Publish(lobbyID, &snap)
		}
	}
}
