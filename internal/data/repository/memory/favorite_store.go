package memory

import (
	"context"
	"time"

	"vehicle-rental/internal/data/entity"

	"github.com/google/uuid"
)

type favoriteStore struct {
	s *Store
}

func (r *favoriteStore) Add(ctx context.Context, favorite *entity.Favorite) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	byVehicle, ok := r.s.favorites[favorite.UserID]
	if !ok {
		byVehicle = make(map[uuid.UUID]*entity.Favorite)
		r.s.favorites[favorite.UserID] = byVehicle
	}
	if _, exists := byVehicle[favorite.VehicleID]; exists {
		return nil
	}
	cp := *favorite
	byVehicle[favorite.VehicleID] = &cp
	return nil
}

func (r *favoriteStore) Remove(ctx context.Context, userID, vehicleID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if byVehicle, ok := r.s.favorites[userID]; ok {
		delete(byVehicle, vehicleID)
	}
	return nil
}

func (r *favoriteStore) Exists(ctx context.Context, userID, vehicleID uuid.UUID) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	byVehicle, ok := r.s.favorites[userID]
	if !ok {
		return false, nil
	}
	_, exists := byVehicle[vehicleID]
	return exists, nil
}

func (r *favoriteStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	r.s.mu.RLock()
	var favorites []*entity.Favorite
	for _, favorite := range r.s.favorites[userID] {
		cp := *favorite
		favorites = append(favorites, &cp)
	}
	r.s.mu.RUnlock()

	sortNewestFirst(favorites, func(f *entity.Favorite) time.Time { return f.CreatedAt })
	return favorites, nil
}
