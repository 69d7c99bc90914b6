package usecase

import (
	"context"
	"testing"
	"time"

	"vehicle-rental/internal/data/entity"
	"vehicle-rental/internal/data/repository"
	"vehicle-rental/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newTestVehicle(t *testing.T, repo *repository.Repository) *entity.Vehicle {
	t.Helper()
	now := time.Now()
	vehicle := &entity.Vehicle{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        "SUV",
		Type:        "SUV",
		Model:       "Toyota Fortuner",
		PricePerDay: 3000,
		Seats:       7,
		Available:   true,
	}
	if err := repo.Vehicle.Create(context.Background(), vehicle); err != nil {
		t.Fatalf("create vehicle: %v", err)
	}
	return vehicle
}

func TestFavoritesLifecycle(t *testing.T) {
	repo := newTestRepo()
	svc := NewUserService(repo, zap.NewNop())
	user := newTestUser(t, repo, entity.RoleUser)
	vehicle := newTestVehicle(t, repo)
	ctx := context.Background()

	if err := svc.AddFavorite(ctx, user.ID.String(), vehicle.ID.String()); err != nil {
		t.Fatalf("add favorite: %v", err)
	}
	// Adding again is a no-op
	if err := svc.AddFavorite(ctx, user.ID.String(), vehicle.ID.String()); err != nil {
		t.Fatalf("re-add favorite: %v", err)
	}

	favorites, err := svc.GetFavorites(ctx, user.ID.String())
	if err != nil {
		t.Fatalf("get favorites: %v", err)
	}
	if len(favorites) != 1 {
		t.Fatalf("favorites = %d, want 1", len(favorites))
	}
	if favorites[0].Model != "Toyota Fortuner" {
		t.Errorf("favorite model = %q, want Toyota Fortuner", favorites[0].Model)
	}

	if err := svc.RemoveFavorite(ctx, user.ID.String(), vehicle.ID.String()); err != nil {
		t.Fatalf("remove favorite: %v", err)
	}
	if err := svc.RemoveFavorite(ctx, user.ID.String(), vehicle.ID.String()); err == nil {
		t.Fatal("expected error removing a missing favorite")
	}
}

func TestAddFavoriteUnknownVehicle(t *testing.T) {
	repo := newTestRepo()
	svc := NewUserService(repo, zap.NewNop())
	user := newTestUser(t, repo, entity.RoleUser)

	err := svc.AddFavorite(context.Background(), user.ID.String(), uuid.New().String())
	if err == nil {
		t.Fatal("expected error for unknown vehicle")
	}
}

func TestUpdateProfile(t *testing.T) {
	repo := newTestRepo()
	svc := NewUserService(repo, zap.NewNop())
	user := newTestUser(t, repo, entity.RoleUser)
	ctx := context.Background()

	name := "New Name"
	phone := "9876543210"
	updated, err := svc.UpdateProfile(ctx, user.ID.String(), &request.UpdateProfileRequest{
		Name:  &name,
		Phone: &phone,
	})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.Name != "New Name" {
		t.Errorf("name = %q, want New Name", updated.Name)
	}
	if updated.Phone == nil || *updated.Phone != "9876543210" {
		t.Errorf("phone = %v, want 9876543210", updated.Phone)
	}

	profile, err := svc.GetProfile(ctx, user.ID.String())
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if profile.Name != "New Name" {
		t.Errorf("persisted name = %q, want New Name", profile.Name)
	}
}
