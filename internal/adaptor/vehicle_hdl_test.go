package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vehicle-rental/internal/data/repository/memory"
	"vehicle-rental/internal/usecase"

	"go.uber.org/zap"
)

type vehicleListResponse struct {
	Status bool `json:"status"`
	Data   struct {
		Data []struct {
			Name      string `json:"name"`
			Available bool   `json:"available"`
		} `json:"data"`
	} `json:"data"`
}

func newVehicleHandler(t *testing.T) *VehicleHandler {
	t.Helper()
	repo := memory.NewRepository(memory.NewStore())
	if err := memory.Seed(context.Background(), repo); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	return NewVehicleHandler(usecase.NewVehicleService(repo, zap.NewNop()), zap.NewNop())
}

func listVehicles(t *testing.T, handlerFunc http.HandlerFunc) vehicleListResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/?per_page=50", nil)
	rec := httptest.NewRecorder()
	handlerFunc(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body vehicleListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestPublicListingHidesUnavailableVehicles(t *testing.T) {
	h := newVehicleHandler(t)

	body := listVehicles(t, h.GetVehicles)
	for _, v := range body.Data.Data {
		if !v.Available {
			t.Errorf("public listing returned unavailable vehicle %q", v.Name)
		}
	}
}

func TestAdminListingIncludesWholeFleet(t *testing.T) {
	h := newVehicleHandler(t)

	public := listVehicles(t, h.GetVehicles)
	fleet := listVehicles(t, h.GetAllVehicles)

	if len(fleet.Data.Data) <= len(public.Data.Data) {
		t.Fatalf("fleet listing = %d vehicles, public = %d, want fleet larger",
			len(fleet.Data.Data), len(public.Data.Data))
	}

	unavailable := 0
	for _, v := range fleet.Data.Data {
		if !v.Available {
			unavailable++
		}
	}
	if unavailable == 0 {
		t.Error("fleet listing carries no unavailable vehicle")
	}
}
