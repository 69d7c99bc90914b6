package usecase

import (
	"context"
	"testing"

	"vehicle-rental/internal/data/repository"
	"vehicle-rental/internal/dto/request"

	"go.uber.org/zap"
)

func TestVehicleCRUD(t *testing.T) {
	svc := NewVehicleService(newTestRepo(), zap.NewNop())
	ctx := context.Background()

	created, err := svc.CreateVehicle(ctx, &request.VehicleRequest{
		Name:        "Mini Bus",
		Type:        "Mini Bus",
		Model:       "Tata Winger",
		PricePerDay: 6000,
		Seats:       12,
	})
	if err != nil {
		t.Fatalf("create vehicle: %v", err)
	}
	if !created.Available {
		t.Error("new vehicle should default to available")
	}

	newPrice := int64(6500)
	updated, err := svc.UpdateVehicle(ctx, created.ID, &request.VehicleUpdateRequest{PricePerDay: &newPrice})
	if err != nil {
		t.Fatalf("update vehicle: %v", err)
	}
	if updated.PricePerDay != 6500 {
		t.Errorf("price = %d, want 6500", updated.PricePerDay)
	}
	if updated.Seats != 12 {
		t.Errorf("seats = %d, want 12 untouched", updated.Seats)
	}

	detail, err := svc.GetVehicle(ctx, created.ID)
	if err != nil {
		t.Fatalf("get vehicle: %v", err)
	}
	if detail.Name != "Mini Bus" {
		t.Errorf("name = %q, want Mini Bus", detail.Name)
	}

	if err := svc.DeleteVehicle(ctx, created.ID); err != nil {
		t.Fatalf("delete vehicle: %v", err)
	}
	if _, err := svc.GetVehicle(ctx, created.ID); err == nil {
		t.Fatal("expected error for deleted vehicle")
	}
}

func TestGetVehiclesFiltersUnavailable(t *testing.T) {
	svc := NewVehicleService(newTestRepo(), zap.NewNop())
	ctx := context.Background()

	unavailable := false
	if _, err := svc.CreateVehicle(ctx, &request.VehicleRequest{
		Name: "Sedan", Type: "Sedan", Model: "Honda City", PricePerDay: 2000, Seats: 5,
	}); err != nil {
		t.Fatalf("create vehicle: %v", err)
	}
	if _, err := svc.CreateVehicle(ctx, &request.VehicleRequest{
		Name: "Maxi Cab", Type: "Maxi Cab", Model: "Force Traveller", PricePerDay: 4500, Seats: 18,
		Available: &unavailable,
	}); err != nil {
		t.Fatalf("create vehicle: %v", err)
	}

	page, err := svc.GetVehicles(ctx,
		&request.PaginatedRequest{Page: 1, PerPage: 10},
		repository.VehicleFilter{OnlyAvailable: true})
	if err != nil {
		t.Fatalf("get vehicles: %v", err)
	}
	if len(page.Data) != 1 {
		t.Fatalf("available vehicles = %d, want 1", len(page.Data))
	}
	if page.Data[0].Name != "Sedan" {
		t.Errorf("vehicle = %q, want Sedan", page.Data[0].Name)
	}

	all, err := svc.GetVehicles(ctx,
		&request.PaginatedRequest{Page: 1, PerPage: 10},
		repository.VehicleFilter{})
	if err != nil {
		t.Fatalf("get all vehicles: %v", err)
	}
	if len(all.Data) != 2 {
		t.Errorf("all vehicles = %d, want 2", len(all.Data))
	}
}
