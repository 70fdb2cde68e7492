package repository

import (
	"Pulseboard/internal/model"
	"Pulseboard/internal/pkg/consts"
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

type redisSessionRepoImpl struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisSessionRepo 会话序列化为 JSON 存入 Redis，过期交给 key 的 TTL
func NewRedisSessionRepo(rdb *redis.Client, ttl time.Duration) SessionRepo {
	return &redisSessionRepoImpl{rdb: rdb, ttl: ttl}
}

func (r *redisSessionRepoImpl) Get(ctx context.Context, id string) (*model.Session, error) {
	val, err := r.rdb.Get(ctx, consts.DashboardSessionKey+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var s model.Session
	if err = json.Unmarshal([]byte(val), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *redisSessionRepoImpl) Save(ctx context.Context, session *model.Session) error {
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, consts.DashboardSessionKey+session.ID, b, r.ttl).Err()
}

func (r *redisSessionRepoImpl) Delete(ctx context.Context, id string) error {
	return r.rdb.Del(ctx, consts.DashboardSessionKey+id).Err()
}

// Sweep Redis 依赖 TTL 自动过期，这里无事可做
func (r *redisSessionRepoImpl) Sweep(_ context.Context, _ time.Time) (int, error) {
	return 0, nil
}
