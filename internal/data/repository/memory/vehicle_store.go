package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"vehicle-rental/internal/data/entity"
	"vehicle-rental/internal/data/repository"

	"github.com/google/uuid"
)

type vehicleStore struct {
	s *Store
}

func (r *vehicleStore) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cp := *vehicle
	r.s.vehicles[vehicle.ID] = &cp
	return nil
}

func (r *vehicleStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	vehicle, ok := r.s.vehicles[id]
	if !ok {
		return nil, nil
	}
	cp := *vehicle
	return &cp, nil
}

func (r *vehicleStore) FindAll(ctx context.Context, filter repository.VehicleFilter) ([]*entity.Vehicle, error) {
	r.s.mu.RLock()
	vehicles := r.filtered(filter)
	r.s.mu.RUnlock()

	switch filter.Ordering {
	case "price":
		sort.SliceStable(vehicles, func(i, j int) bool { return vehicles[i].PricePerDay < vehicles[j].PricePerDay })
	case "-price":
		sort.SliceStable(vehicles, func(i, j int) bool { return vehicles[i].PricePerDay > vehicles[j].PricePerDay })
	case "name":
		sort.SliceStable(vehicles, func(i, j int) bool { return vehicles[i].Name < vehicles[j].Name })
	default:
		sortNewestFirst(vehicles, func(v *entity.Vehicle) time.Time { return v.CreatedAt })
	}

	if filter.Limit > 0 {
		vehicles = paginate(vehicles, filter.Limit, filter.Offset)
	}
	return vehicles, nil
}

func (r *vehicleStore) CountAll(ctx context.Context, filter repository.VehicleFilter) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.filtered(filter))), nil
}

func (r *vehicleStore) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.vehicles[vehicle.ID]; !ok {
		return fmt.Errorf("vehicle %s not found", vehicle.ID.String())
	}
	cp := *vehicle
	r.s.vehicles[vehicle.ID] = &cp
	return nil
}

func (r *vehicleStore) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.vehicles[id]; !ok {
		return fmt.Errorf("vehicle %s not found", id.String())
	}
	delete(r.s.vehicles, id)
	return nil
}

// filtered applies the non-ordering parts of the filter. Caller holds the lock.
func (r *vehicleStore) filtered(filter repository.VehicleFilter) []*entity.Vehicle {
	var vehicles []*entity.Vehicle
	for _, vehicle := range r.s.vehicles {
		if filter.OnlyAvailable && !vehicle.Available {
			continue
		}
		if filter.Type != "" && vehicle.Type != filter.Type {
			continue
		}
		if filter.Search != "" &&
			!matchesFold(vehicle.Name, filter.Search) &&
			!matchesFold(vehicle.Model, filter.Search) &&
			!matchesFold(vehicle.Description, filter.Search) {
			continue
		}
		cp := *vehicle
		vehicles = append(vehicles, &cp)
	}
	return vehicles
}
