package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisDecisionLog implements DecisionLog on Redis lists. Keys are
// namespaced as "{prefix}:{sessionID}"; each record is one JSON entry
// appended with RPUSH and trimmed to the configured cap.
type RedisDecisionLog struct {
	client redis.UniversalClient
	prefix string
	maxLen int
	ttl    time.Duration
}

// RedisLogConfig configures the Redis decision log.
type RedisLogConfig struct {
	Prefix string        // key prefix, default "intent:decisions"
	MaxLen int           // per-session cap, default 200, 0 keeps default
	TTL    time.Duration // session key expiry, 0 = no expiry
}

// NewRedisDecisionLog creates a DecisionLog backed by Redis.
func NewRedisDecisionLog(client redis.UniversalClient, config ...RedisLogConfig) *RedisDecisionLog {
	cfg := RedisLogConfig{}
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "intent:decisions"
	}
	if cfg.MaxLen == 0 {
		cfg.MaxLen = 200
	}
	return &RedisDecisionLog{
		client: client,
		prefix: cfg.Prefix,
		maxLen: cfg.MaxLen,
		ttl:    cfg.TTL,
	}
}

func (l *RedisDecisionLog) key(sessionID string) string {
	return fmt.Sprintf("%s:%s", l.prefix, sessionID)
}

func (l *RedisDecisionLog) Append(ctx context.Context, sessionID string, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	key := l.key(sessionID)
	if err := l.client.RPush(ctx, key, data).Err(); err != nil {
		return err
	}
	if err := l.client.LTrim(ctx, key, int64(-l.maxLen), -1).Err(); err != nil {
		return err
	}
	if l.ttl > 0 {
		if err := l.client.Expire(ctx, key, l.ttl).Err(); err != nil {
			return err
		}
	}
	return nil
}

func (l *RedisDecisionLog) Recent(ctx context.Context, sessionID string, limit int) ([]Record, error) {
	start := int64(0)
	if limit > 0 {
		start = int64(-limit)
	}
	items, err := l.client.LRange(ctx, l.key(sessionID), start, -1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]Record, 0, len(items))
	for _, item := range items {
		var rec Record
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, fmt.Errorf("unmarshal record: %w", err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (l *RedisDecisionLog) Clear(ctx context.Context, sessionID string) error {
	return l.client.Del(ctx, l.key(sessionID)).Err()
}

// Compile-time interface check.
var _ DecisionLog = (*RedisDecisionLog)(nil)
