package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisSender empilha as mensagens numa lista consumida pelo worker de e-mail.
type RedisSender struct {
	client *redis.Client
	key    string
}

func NewRedisSender(client *redis.Client, key string) *RedisSender {
	return &RedisSender{client: client, key: key}
}

func (s *RedisSender) Send(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	if err := s.client.LPush(ctx, s.key, payload).Err(); err != nil {
		return fmt.Errorf("push notification: %w", err)
	}
	return nil
}

func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return redis.NewClient(opts), nil
}
