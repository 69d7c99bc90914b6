package memory

import (
	"context"
	"fmt"
	"time"

	"vehicle-rental/internal/data/entity"

	"github.com/google/uuid"
)

type bookingStore struct {
	s *Store
}

func (r *bookingStore) Create(ctx context.Context, booking *entity.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cp := *booking
	r.s.bookings[booking.ID] = &cp
	return nil
}

func (r *bookingStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	booking, ok := r.s.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *booking
	return &cp, nil
}

func (r *bookingStore) FindByOrderID(ctx context.Context, orderID string) (*entity.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, booking := range r.s.bookings {
		if booking.OrderID == orderID {
			cp := *booking
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *bookingStore) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	r.s.mu.RLock()
	var bookings []*entity.Booking
	for _, booking := range r.s.bookings {
		if booking.UserID == userID {
			cp := *booking
			bookings = append(bookings, &cp)
		}
	}
	r.s.mu.RUnlock()

	sortNewestFirst(bookings, func(b *entity.Booking) time.Time { return b.CreatedAt })
	return paginate(bookings, limit, offset), nil
}

func (r *bookingStore) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var count int64
	for _, booking := range r.s.bookings {
		if booking.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *bookingStore) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	r.s.mu.RLock()
	bookings := make([]*entity.Booking, 0, len(r.s.bookings))
	for _, booking := range r.s.bookings {
		cp := *booking
		bookings = append(bookings, &cp)
	}
	r.s.mu.RUnlock()

	sortNewestFirst(bookings, func(b *entity.Booking) time.Time { return b.CreatedAt })
	return paginate(bookings, limit, offset), nil
}

func (r *bookingStore) CountAll(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.bookings)), nil
}

func (r *bookingStore) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	booking, ok := r.s.bookings[bookingID]
	if !ok {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}
	booking.Status = status
	booking.UpdatedAt = time.Now()
	return nil
}

func (r *bookingStore) CountByStatus(ctx context.Context, status entity.BookingStatus) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var count int64
	for _, booking := range r.s.bookings {
		if booking.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *bookingStore) SumTotalByStatuses(ctx context.Context, statuses ...entity.BookingStatus) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	wanted := make(map[entity.BookingStatus]bool, len(statuses))
	for _, s := range statuses {
		wanted[s] = true
	}

	var sum int64
	for _, booking := range r.s.bookings {
		if wanted[booking.Status] {
			sum += booking.Total
		}
	}
	return sum, nil
}
