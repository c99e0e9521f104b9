package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStorage 登出后的令牌吊销名单，按 jti 记录到令牌自然过期为止
type TokenStorage struct {
	redis *redis.Client
}

func NewTokenStorage(rds *redis.Client) *TokenStorage {
	return &TokenStorage{redis: rds}
}

// Revoke 吊销令牌
// @params jti  令牌唯一标识
// @params ttl  距令牌过期的剩余时间
func (t *TokenStorage) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return t.redis.Set(ctx, t.name(jti), 1, ttl).Err()
}

// IsRevoked 判断令牌是否已吊销
func (t *TokenStorage) IsRevoked(ctx context.Context, jti string) bool {
	if t == nil || jti == "" {
		return false
	}
	n, err := t.redis.Exists(ctx, t.name(jti)).Result()
	return err == nil && n > 0
}

func (t *TokenStorage) name(jti string) string {
	return fmt.Sprintf("auth:token:revoked:%s", jti)
}
