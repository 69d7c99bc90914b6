package usecase

import (
	"vehicle-rental/internal/data/repository"
	"vehicle-rental/internal/pricing"
	"vehicle-rental/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Vehicle VehicleService
	Booking BookingService
	Receipt ReceiptService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		User:    NewUserService(repo, log),
		Vehicle: NewVehicleService(repo, log),
		Booking: NewBookingService(repo, pricing.StandardRates, log),
		Receipt: NewReceiptService(repo, log),
	}
}
