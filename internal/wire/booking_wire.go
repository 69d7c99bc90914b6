package wire

import (
	"vehicle-rental/internal/adaptor"
	"vehicle-rental/internal/data/repository"
	"vehicle-rental/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Public: quote a draft without an account
	r.Post("/api/bookings/quote", bookingHandler.Quote)

	// Protected
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/api/bookings", bookingHandler.CreateBooking)
		r.Get("/api/bookings/{id}", bookingHandler.GetBooking)
		r.Post("/api/bookings/{id}/pay", bookingHandler.PayBooking)
		r.Get("/api/user/bookings/{id}/receipt", bookingHandler.GetReceipt)
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)
	})

	// Admin booking management
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Get("/api/admin/bookings", bookingHandler.GetAllBookings)
		r.Put("/api/admin/bookings/{id}/status", bookingHandler.UpdateBookingStatus)
		r.Get("/api/admin/dashboard", bookingHandler.GetDashboard)
	})
}
