package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Dosada05/tournament-draws/engine"
	"github.com/redis/go-redis/v9"
)

const DefaultStream = "draws.notifications"

// StreamAdder is the part of a redis client the stream notifier needs.
type StreamAdder interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// RedisStreamNotifier appends every notification to a Redis stream so other
// services can follow draw changes.
type RedisStreamNotifier struct {
	client StreamAdder
	stream string
	maxLen int64
}

func NewRedisStreamNotifier(client StreamAdder, stream string, maxLen int64) *RedisStreamNotifier {
	if stream == "" {
		stream = DefaultStream
	}
	return &RedisStreamNotifier{client: client, stream: stream, maxLen: maxLen}
}

func (p *RedisStreamNotifier) Notify(ctx context.Context, n engine.Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshaling %s notification: %w", n.Topic, err)
	}
	args := &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{
			"data":   string(data),
			"topic":  n.Topic,
			"drawId": n.DrawID,
		},
	}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
		args.Approx = true
	}
	return p.client.XAdd(ctx, args).Err()
}

// ConnectRedis parses url, connects and pings. A non-empty password
// overrides the one in url.
func ConnectRedis(ctx context.Context, url, password string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return client, nil
}
