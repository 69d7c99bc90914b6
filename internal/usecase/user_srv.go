package usecase

import (
	"context"
	"fmt"
	"time"

	"vehicle-rental/internal/data/entity"
	"vehicle-rental/internal/data/repository"
	"vehicle-rental/internal/dto/request"
	"vehicle-rental/internal/dto/response"
	"vehicle-rental/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *request.UpdateProfileRequest) (*response.UserResponse, error)

	// Favorites
	AddFavorite(ctx context.Context, userID, vehicleID string) error
	RemoveFavorite(ctx context.Context, userID, vehicleID string) error
	GetFavorites(ctx context.Context, userID string) ([]response.VehicleResponse, error)

	// Admin
	GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*response.UserResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update profile", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.log.Info("Profile updated", zap.String("user_id", userID))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) AddFavorite(ctx context.Context, userID, vehicleID string) error {
	userUUID, vehicleUUID, err := s.parseFavoriteIDs(userID, vehicleID)
	if err != nil {
		return err
	}

	vehicle, err := s.repo.Vehicle.FindByID(ctx, vehicleUUID)
	if err != nil {
		s.log.Error("Failed to find vehicle", zap.Error(err), zap.String("vehicle_id", vehicleID))
		return fmt.Errorf("find vehicle: %w", err)
	}
	if vehicle == nil {
		return fmt.Errorf("vehicle %s not found", vehicleID)
	}

	favorite := &entity.Favorite{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    userUUID,
		VehicleID: vehicleUUID,
	}

	// Adding twice is a no-op, not an error
	if err := s.repo.Favorite.Add(ctx, favorite); err != nil {
		s.log.Error("Failed to add favorite",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("vehicle_id", vehicleID),
		)
		return fmt.Errorf("add favorite: %w", err)
	}

	s.log.Info("Favorite added",
		zap.String("user_id", userID),
		zap.String("vehicle_id", vehicleID))
	return nil
}

func (s *userService) RemoveFavorite(ctx context.Context, userID, vehicleID string) error {
	userUUID, vehicleUUID, err := s.parseFavoriteIDs(userID, vehicleID)
	if err != nil {
		return err
	}

	exists, err := s.repo.Favorite.Exists(ctx, userUUID, vehicleUUID)
	if err != nil {
		s.log.Error("Failed to check favorite", zap.Error(err))
		return fmt.Errorf("check favorite: %w", err)
	}
	if !exists {
		return fmt.Errorf("favorite not found")
	}

	if err := s.repo.Favorite.Remove(ctx, userUUID, vehicleUUID); err != nil {
		s.log.Error("Failed to remove favorite",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("vehicle_id", vehicleID),
		)
		return fmt.Errorf("remove favorite: %w", err)
	}

	s.log.Info("Favorite removed",
		zap.String("user_id", userID),
		zap.String("vehicle_id", vehicleID))
	return nil
}

func (s *userService) GetFavorites(ctx context.Context, userID string) ([]response.VehicleResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	favorites, err := s.repo.Favorite.FindByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to get favorites", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get favorites: %w", err)
	}

	// Skip favorites whose vehicle was removed from the fleet
	vehicles := make([]response.VehicleResponse, 0, len(favorites))
	for _, favorite := range favorites {
		vehicle, err := s.repo.Vehicle.FindByID(ctx, favorite.VehicleID)
		if err != nil {
			s.log.Error("Failed to find favorite vehicle",
				zap.Error(err),
				zap.String("vehicle_id", favorite.VehicleID.String()),
			)
			return nil, fmt.Errorf("find favorite vehicle: %w", err)
		}
		if vehicle == nil {
			continue
		}
		vehicles = append(vehicles, response.VehicleToResponse(vehicle))
	}

	return vehicles, nil
}

func (s *userService) GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	users, err := s.repo.User.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get users", zap.Error(err))
		return nil, fmt.Errorf("get users: %w", err)
	}

	total, err := s.repo.User.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("count users: %w", err)
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	return response.NewPaginatedResponse(userResponses, req.Page, req.PerPage, total), nil
}

func (s *userService) findUser(ctx context.Context, userID string) (*entity.User, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	user, err := s.repo.User.FindByID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", userID)
	}
	return user, nil
}

func (s *userService) parseFavoriteIDs(userID, vehicleID string) (uuid.UUID, uuid.UUID, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}
	vehicleUUID, err := uuid.Parse(vehicleID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid vehicle ID format %s: %w", vehicleID, err)
	}
	return userUUID, vehicleUUID, nil
}
