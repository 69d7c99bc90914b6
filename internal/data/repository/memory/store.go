// Package memory is the in-process store: the same repository contracts as
// the Postgres implementation, backed by maps behind one mutex. It stands in
// for a database in development and is the fixture for service tests. State
// is owned by the Store value; there are no package-level variables.
package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"vehicle-rental/internal/data/entity"
	"vehicle-rental/internal/data/repository"

	"github.com/google/uuid"
)

type Store struct {
	mu        sync.RWMutex
	users     map[uuid.UUID]*entity.User
	sessions  map[uuid.UUID]*entity.Session // keyed by token
	vehicles  map[uuid.UUID]*entity.Vehicle
	bookings  map[uuid.UUID]*entity.Booking
	payments  map[uuid.UUID][]*entity.Payment // keyed by booking ID
	favorites map[uuid.UUID]map[uuid.UUID]*entity.Favorite
}

func NewStore() *Store {
	return &Store{
		users:     make(map[uuid.UUID]*entity.User),
		sessions:  make(map[uuid.UUID]*entity.Session),
		vehicles:  make(map[uuid.UUID]*entity.Vehicle),
		bookings:  make(map[uuid.UUID]*entity.Booking),
		payments:  make(map[uuid.UUID][]*entity.Payment),
		favorites: make(map[uuid.UUID]map[uuid.UUID]*entity.Favorite),
	}
}

// NewRepository wires every repository interface to one shared store.
func NewRepository(s *Store) *repository.Repository {
	return &repository.Repository{
		User:     &userStore{s},
		Session:  &sessionStore{s},
		Vehicle:  &vehicleStore{s},
		Booking:  &bookingStore{s},
		Payment:  &paymentStore{s},
		Favorite: &favoriteStore{s},
	}
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func matchesFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func byCreatedDesc(a, b time.Time) bool {
	return a.After(b)
}

// sortNewestFirst matches the SQL "ORDER BY created_at DESC".
func sortNewestFirst[T any](items []T, createdAt func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return byCreatedDesc(createdAt(items[i]), createdAt(items[j]))
	})
}
