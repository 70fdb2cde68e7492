package repository

import (
	"context"
	"time"

	"Pulseboard/internal/model"

	"github.com/puzpuzpuz/xsync"
)

type SessionRepo interface {
	// Get 会话不存在或已过期时返回 nil
	Get(ctx context.Context, id string) (*model.Session, error)
	Save(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id string) error
	// Sweep 清理过期会话，返回清理数量
	Sweep(ctx context.Context, now time.Time) (int, error)
}

type memorySessionRepoImpl struct {
	sessions *xsync.MapOf[string, *model.Session]
	ttl      time.Duration
}

func NewMemorySessionRepo(ttl time.Duration) SessionRepo {
	return &memorySessionRepoImpl{
		sessions: xsync.NewMapOf[*model.Session](),
		ttl:      ttl,
	}
}

func (r *memorySessionRepoImpl) Get(_ context.Context, id string) (*model.Session, error) {
	s, ok := r.sessions.Load(id)
	if !ok {
		return nil, nil
	}
	if r.expired(s, time.Now()) {
		r.sessions.Delete(id)
		return nil, nil
	}
	return s, nil
}

func (r *memorySessionRepoImpl) Save(_ context.Context, session *model.Session) error {
	r.sessions.Store(session.ID, session)
	return nil
}

func (r *memorySessionRepoImpl) Delete(_ context.Context, id string) error {
	r.sessions.Delete(id)
	return nil
}

func (r *memorySessionRepoImpl) Sweep(_ context.Context, now time.Time) (int, error) {
	var expired []string
	r.sessions.Range(func(id string, s *model.Session) bool {
		if r.expired(s, now) {
			expired = append(expired, id)
		}
		return true
	})
	for _, id := range expired {
		r.sessions.Delete(id)
	}
	return len(expired), nil
}

func (r *memorySessionRepoImpl) expired(s *model.Session, now time.Time) bool {
	return now.Sub(s.UpdatedAt) > r.ttl
}
