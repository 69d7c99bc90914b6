package repository

import (
	"vehicle-rental/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Session  SessionRepository
	Vehicle  VehicleRepository
	Booking  BookingRepository
	Payment  PaymentRepository
	Favorite FavoriteRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Session:  NewSessionRepository(db, log),
		Vehicle:  NewVehicleRepository(db, log),
		Booking:  NewBookingRepository(db, log),
		Payment:  NewPaymentRepository(db, log),
		Favorite: NewFavoriteRepository(db, log),
	}
}
