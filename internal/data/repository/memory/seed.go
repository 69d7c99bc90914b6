package memory

import (
	"context"
	"time"

	"vehicle-rental/internal/data/entity"
	"vehicle-rental/internal/data/repository"
	"vehicle-rental/pkg/utils"

	"github.com/google/uuid"
)

// Seed loads the starter catalog and demo accounts into a fresh store.
// The demo credentials are for local development only.
func Seed(ctx context.Context, repo *repository.Repository) error {
	now := time.Now()

	vehicles := []*entity.Vehicle{
		{
			Base:        entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			Name:        "Sedan",
			Type:        "Sedan",
			Model:       "Honda City",
			PricePerDay: 2000,
			Seats:       5,
			Available:   true,
			ImageURL:    "/car.png",
			Description: "Comfortable sedan perfect for city travel",
		},
		{
			Base:        entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			Name:        "SUV",
			Type:        "SUV",
			Model:       "Toyota Fortuner",
			PricePerDay: 3000,
			Seats:       7,
			Available:   true,
			ImageURL:    "/car.png",
			Description: "Spacious SUV for family trips",
		},
		{
			Base:        entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			Name:        "Mini Bus",
			Type:        "Mini Bus",
			Model:       "Tata Winger",
			PricePerDay: 6000,
			Seats:       12,
			Available:   true,
			ImageURL:    "/mini-bus.png",
			Description: "Perfect for group travel",
		},
		{
			Base:        entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			Name:        "Maxi Cab",
			Type:        "Maxi Cab",
			Model:       "Force Traveller",
			PricePerDay: 4500,
			Seats:       18,
			Available:   false,
			ImageURL:    "/mini-bus.png",
			Description: "Large capacity for tours and events",
		},
	}

	for _, vehicle := range vehicles {
		if err := repo.Vehicle.Create(ctx, vehicle); err != nil {
			return err
		}
	}

	adminHash, err := utils.HashPassword("admin123")
	if err != nil {
		return err
	}
	userHash, err := utils.HashPassword("password123")
	if err != nil {
		return err
	}

	adminPhone := "9876543210"
	userPhone := "9876543211"

	users := []*entity.User{
		{
			Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			Name:         "Admin User",
			Email:        "admin@greenride.com",
			PasswordHash: adminHash,
			Phone:        &adminPhone,
			Role:         entity.RoleAdmin,
			IsActive:     true,
		},
		{
			Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			Name:         "John Doe",
			Email:        "john@example.com",
			PasswordHash: userHash,
			Phone:        &userPhone,
			Role:         entity.RoleUser,
			IsActive:     true,
		},
	}

	for _, user := range users {
		if err := repo.User.Create(ctx, user); err != nil {
			return err
		}
	}

	return nil
}
