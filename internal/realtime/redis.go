package realtime

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
)

const changeChannelPrefix = "changes:"

// NewRedis creates a new Redis client
func NewRedis() *redis.Client {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := 0

	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})

	log.Printf("Redis client created (addr: %s)\n", redisAddr)
	return rdb
}

// Publisher fans out table-change events. With Redis present every API
// instance sees the event through the bridge; without it (tests) the event
// goes straight to the local hub.
type Publisher struct {
	Hub *Hub
	RDB *redis.Client
}

func (p *Publisher) Changed(table, action string) {
	evt := ChangeEvent{Table: table, Action: action}

	if p.RDB == nil {
		p.Hub.Notify(evt)
		return
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		log.Printf("realtime: marshal change event: %v", err)
		return
	}
	if err := p.RDB.Publish(context.Background(), changeChannelPrefix+table, payload).Err(); err != nil {
		log.Printf("realtime: publish %s failed, notifying local hub only: %v", table, err)
		p.Hub.Notify(evt)
	}
}

// RunBridge relays change events from Redis into the local hub. Blocks until
// ctx is cancelled.
func RunBridge(ctx context.Context, rdb *redis.Client, hub *Hub) {
	sub := rdb.PSubscribe(ctx, changeChannelPrefix+"*")
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-sub.Channel():
			if !ok {
				return
			}
			var evt ChangeEvent
			if err := json.Unmarshal([]byte(msg.Payload), &evt); err != nil {
				log.Printf("realtime: bad change payload on %s: %v", msg.Channel, err)
				continue
			}
			if evt.Table == "" {
				evt.Table = strings.TrimPrefix(msg.Channel, changeChannelPrefix)
			}
			hub.Notify(evt)
		}
	}
}
