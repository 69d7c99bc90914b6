package memory

import (
	"context"

	"vehicle-rental/internal/data/entity"

	"github.com/google/uuid"
)

type paymentStore struct {
	s *Store
}

func (r *paymentStore) Create(ctx context.Context, payment *entity.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cp := *payment
	r.s.payments[payment.BookingID] = append(r.s.payments[payment.BookingID], &cp)
	return nil
}

func (r *paymentStore) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	payments := r.s.payments[bookingID]
	if len(payments) == 0 {
		return nil, nil
	}
	// Newest attempt wins, matching the SQL ORDER BY created_at DESC LIMIT 1.
	cp := *payments[len(payments)-1]
	return &cp, nil
}
