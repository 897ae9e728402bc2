package realtime

import (
	"context"
	"fmt"
	"sync"

	"skillswap/internal/biddingerrors"

	"github.com/redis/go-redis/v9"
)

// RedisTransport carries channel traffic over Redis PUBLISH/SUBSCRIBE.
// go-redis re-establishes the subscription connection on its own, which is
// the only reconnection the channel gets.
type RedisTransport struct {
	client *redis.Client
	pubsub *redis.PubSub
	out    chan Message
	once   sync.Once
}

// NewRedisDialer returns a Dialer that opens one PubSub per connection on client
func NewRedisDialer(client *redis.Client) Dialer {
	return func(ctx context.Context) (Transport, error) {
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("%w: connect to redis: %v", biddingerrors.ErrChannel, err)
		}
		t := &RedisTransport{
			client: client,
			pubsub: client.Subscribe(ctx),
			out:    make(chan Message, memoryBuffer),
		}
		go t.pump()
		return t, nil
	}
}

// NewRedisClient parses a redis:// URL into a client
func NewRedisClient(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return redis.NewClient(opts), nil
}

func (t *RedisTransport) pump() {
	defer close(t.out)
	for msg := range t.pubsub.Channel() {
		t.out <- Message{Topic: msg.Channel, Payload: []byte(msg.Payload)}
	}
}

func (t *RedisTransport) Publish(ctx context.Context, topic string, payload []byte) error {
	if err := t.client.Publish(ctx, topic, payload).Err(); err != nil {
		return fmt.Errorf("%w: publish to %s: %v", biddingerrors.ErrChannel, topic, err)
	}
	return nil
}

func (t *RedisTransport) Subscribe(ctx context.Context, topics ...string) error {
	if err := t.pubsub.Subscribe(ctx, topics...); err != nil {
		return fmt.Errorf("%w: subscribe: %v", biddingerrors.ErrChannel, err)
	}
	return nil
}

func (t *RedisTransport) Unsubscribe(ctx context.Context, topics ...string) error {
	if err := t.pubsub.Unsubscribe(ctx, topics...); err != nil {
		return fmt.Errorf("%w: unsubscribe: %v", biddingerrors.ErrChannel, err)
	}
	return nil
}

func (t *RedisTransport) Messages() <-chan Message {
	return t.out
}

// Close tears down the subscription. The shared client stays open.
func (t *RedisTransport) Close() error {
	var err error
	t.once.Do(func() {
		err = t.pubsub.Close()
	})
	return err
}
