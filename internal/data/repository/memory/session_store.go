package memory

import (
	"context"
	"time"

	"vehicle-rental/internal/data/entity"

	"github.com/google/uuid"
)

type sessionStore struct {
	s *Store
}

func (r *sessionStore) Create(ctx context.Context, session *entity.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cp := *session
	r.s.sessions[session.Token] = &cp
	return nil
}

func (r *sessionStore) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		return nil, nil
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	session, ok := r.s.sessions[tokenUUID]
	if !ok {
		return nil, nil
	}
	if !session.Valid(time.Now()) {
		return nil, nil
	}
	cp := *session
	return &cp, nil
}

func (r *sessionStore) Revoke(ctx context.Context, token string) error {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		return nil
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if session, ok := r.s.sessions[tokenUUID]; ok && session.RevokedAt == nil {
		now := time.Now()
		session.RevokedAt = &now
	}
	return nil
}

func (r *sessionStore) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := time.Now()
	for _, session := range r.s.sessions {
		if session.UserID == userID && session.RevokedAt == nil {
			session.RevokedAt = &now
		}
	}
	return nil
}
