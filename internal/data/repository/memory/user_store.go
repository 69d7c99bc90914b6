package memory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"vehicle-rental/internal/data/entity"

	"github.com/google/uuid"
)

type userStore struct {
	s *Store
}

func (r *userStore) Create(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

func (r *userStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *user
	return &cp, nil
}

func (r *userStore) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, user := range r.s.users {
		if strings.EqualFold(user.Email, email) {
			cp := *user
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *userStore) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	users := make([]*entity.User, 0, len(r.s.users))
	for _, user := range r.s.users {
		cp := *user
		users = append(users, &cp)
	}
	sortNewestFirst(users, func(u *entity.User) time.Time { return u.CreatedAt })
	return paginate(users, limit, offset), nil
}

func (r *userStore) CountAll(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.users)), nil
}

func (r *userStore) Update(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[user.ID]; !ok {
		return fmt.Errorf("user %s not found", user.ID.String())
	}
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}
