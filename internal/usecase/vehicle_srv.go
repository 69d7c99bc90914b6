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

type VehicleService interface {
	// Public catalog
	GetVehicles(ctx context.Context, req *request.PaginatedRequest, filter repository.VehicleFilter) (*response.PaginatedResponse[response.VehicleResponse], error)
	GetVehicle(ctx context.Context, vehicleID string) (*response.VehicleDetailResponse, error)

	// Admin fleet management
	CreateVehicle(ctx context.Context, req *request.VehicleRequest) (*response.VehicleResponse, error)
	UpdateVehicle(ctx context.Context, vehicleID string, req *request.VehicleUpdateRequest) (*response.VehicleResponse, error)
	DeleteVehicle(ctx context.Context, vehicleID string) error
}

type vehicleService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewVehicleService(repo *repository.Repository, log *zap.Logger) VehicleService {
	return &vehicleService{
		repo: repo,
		log:  log.With(zap.String("service", "vehicle")),
	}
}

func (s *vehicleService) GetVehicles(ctx context.Context, req *request.PaginatedRequest, filter repository.VehicleFilter) (*response.PaginatedResponse[response.VehicleResponse], error) {
	filter.Limit = req.Limit()
	filter.Offset = req.Offset()

	vehicles, err := s.repo.Vehicle.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to get vehicles", zap.Error(err))
		return nil, fmt.Errorf("get vehicles: %w", err)
	}

	total, err := s.repo.Vehicle.CountAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count vehicles", zap.Error(err))
		return nil, fmt.Errorf("count vehicles: %w", err)
	}

	vehicleResponses := make([]response.VehicleResponse, len(vehicles))
	for i, vehicle := range vehicles {
		vehicleResponses[i] = response.VehicleToResponse(vehicle)
	}

	return response.NewPaginatedResponse(vehicleResponses, req.Page, req.PerPage, total), nil
}

func (s *vehicleService) GetVehicle(ctx context.Context, vehicleID string) (*response.VehicleDetailResponse, error) {
	vehicleUUID, err := uuid.Parse(vehicleID)
	if err != nil {
		return nil, fmt.Errorf("invalid vehicle ID format %s: %w", vehicleID, err)
	}

	vehicle, err := s.repo.Vehicle.FindByID(ctx, vehicleUUID)
	if err != nil {
		s.log.Error("Failed to find vehicle", zap.Error(err), zap.String("vehicle_id", vehicleID))
		return nil, fmt.Errorf("find vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, fmt.Errorf("vehicle %s not found", vehicleID)
	}

	resp := response.VehicleToDetailResponse(vehicle)
	return &resp, nil
}

func (s *vehicleService) CreateVehicle(ctx context.Context, req *request.VehicleRequest) (*response.VehicleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create vehicle validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	now := time.Now()
	vehicle := &entity.Vehicle{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Type:        req.Type,
		Model:       req.Model,
		PricePerDay: req.PricePerDay,
		Seats:       req.Seats,
		Available:   available,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	}

	if err := s.repo.Vehicle.Create(ctx, vehicle); err != nil {
		s.log.Error("Failed to create vehicle", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create vehicle: %w", err)
	}

	s.log.Info("Vehicle created",
		zap.String("vehicle_id", vehicle.ID.String()),
		zap.String("name", vehicle.Name),
		zap.Int64("price_per_day", vehicle.PricePerDay))

	resp := response.VehicleToResponse(vehicle)
	return &resp, nil
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, vehicleID string, req *request.VehicleUpdateRequest) (*response.VehicleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update vehicle validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	vehicleUUID, err := uuid.Parse(vehicleID)
	if err != nil {
		return nil, fmt.Errorf("invalid vehicle ID format %s: %w", vehicleID, err)
	}

	vehicle, err := s.repo.Vehicle.FindByID(ctx, vehicleUUID)
	if err != nil {
		s.log.Error("Failed to find vehicle", zap.Error(err), zap.String("vehicle_id", vehicleID))
		return nil, fmt.Errorf("find vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, fmt.Errorf("vehicle %s not found", vehicleID)
	}

	// Partial update; only the provided fields change
	if req.Name != nil {
		vehicle.Name = *req.Name
	}
	if req.Type != nil {
		vehicle.Type = *req.Type
	}
	if req.Model != nil {
		vehicle.Model = *req.Model
	}
	if req.PricePerDay != nil {
		vehicle.PricePerDay = *req.PricePerDay
	}
	if req.Seats != nil {
		vehicle.Seats = *req.Seats
	}
	if req.Available != nil {
		vehicle.Available = *req.Available
	}
	if req.ImageURL != nil {
		vehicle.ImageURL = *req.ImageURL
	}
	if req.Description != nil {
		vehicle.Description = *req.Description
	}
	vehicle.UpdatedAt = time.Now()

	if err := s.repo.Vehicle.Update(ctx, vehicle); err != nil {
		s.log.Error("Failed to update vehicle", zap.Error(err), zap.String("vehicle_id", vehicleID))
		return nil, fmt.Errorf("update vehicle: %w", err)
	}

	s.log.Info("Vehicle updated", zap.String("vehicle_id", vehicleID))

	resp := response.VehicleToResponse(vehicle)
	return &resp, nil
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, vehicleID string) error {
	vehicleUUID, err := uuid.Parse(vehicleID)
	if err != nil {
		return fmt.Errorf("invalid vehicle ID format %s: %w", vehicleID, err)
	}

	vehicle, err := s.repo.Vehicle.FindByID(ctx, vehicleUUID)
	if err != nil {
		s.log.Error("Failed to find vehicle", zap.Error(err), zap.String("vehicle_id", vehicleID))
		return fmt.Errorf("find vehicle: %w", err)
	}
	if vehicle == nil {
		return fmt.Errorf("vehicle %s not found", vehicleID)
	}

	if err := s.repo.Vehicle.Delete(ctx, vehicleUUID); err != nil {
		s.log.Error("Failed to delete vehicle", zap.Error(err), zap.String("vehicle_id", vehicleID))
		return fmt.Errorf("delete vehicle: %w", err)
	}

	s.log.Info("Vehicle deleted", zap.String("vehicle_id", vehicleID))
	return nil
}
