package repository

import (
	"context"
	"fmt"

	"vehicle-rental/internal/data/entity"
	"vehicle-rental/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FavoriteRepository interface {
	Add(ctx context.Context, favorite *entity.Favorite) error
	Remove(ctx context.Context, userID, vehicleID uuid.UUID) error
	Exists(ctx context.Context, userID, vehicleID uuid.UUID) (bool, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)
}

type favoriteRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFavoriteRepository(db database.PgxIface, log *zap.Logger) FavoriteRepository {
	return &favoriteRepository{
		db:  db,
		log: log.With(zap.String("repository", "favorite")),
	}
}

func (r *favoriteRepository) Add(ctx context.Context, favorite *entity.Favorite) error {
	query := `
		INSERT INTO favorites (id, user_id, vehicle_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, vehicle_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query,
		favorite.ID,
		favorite.UserID,
		favorite.VehicleID,
		favorite.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to add favorite",
			zap.Error(err),
			zap.String("user_id", favorite.UserID.String()),
			zap.String("vehicle_id", favorite.VehicleID.String()),
		)
		return fmt.Errorf("add favorite: %w", err)
	}

	return nil
}

func (r *favoriteRepository) Remove(ctx context.Context, userID, vehicleID uuid.UUID) error {
	query := `DELETE FROM favorites WHERE user_id = $1 AND vehicle_id = $2`

	if _, err := r.db.Exec(ctx, query, userID, vehicleID); err != nil {
		r.log.Error("Failed to remove favorite",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("vehicle_id", vehicleID.String()),
		)
		return fmt.Errorf("remove favorite: %w", err)
	}

	return nil
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, vehicleID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM favorites WHERE user_id = $1 AND vehicle_id = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, vehicleID).Scan(&exists); err != nil {
		r.log.Error("Failed to check favorite", zap.Error(err))
		return false, fmt.Errorf("check favorite: %w", err)
	}
	return exists, nil
}

func (r *favoriteRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	query := `
		SELECT id, user_id, vehicle_id, created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find favorites",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find favorites for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var favorites []*entity.Favorite
	for rows.Next() {
		var favorite entity.Favorite
		err := rows.Scan(
			&favorite.ID,
			&favorite.UserID,
			&favorite.VehicleID,
			&favorite.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan favorite row", zap.Error(err))
			return nil, fmt.Errorf("scan favorite row: %w", err)
		}
		favorites = append(favorites, &favorite)
	}

	return favorites, nil
}
