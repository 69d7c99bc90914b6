package wire

import (
	"time"

	"vehicle-rental/internal/adaptor"
	"vehicle-rental/internal/data/repository"
	"vehicle-rental/pkg/middleware"
	"vehicle-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func wireVehicle(
	r chi.Router,
	vehicleHandler *adaptor.VehicleHandler,
	repo *repository.Repository,
	rdb *redis.Client,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public catalog, served through the response cache
	cacheTTL := time.Duration(config.Redis.CacheTTL) * time.Second
	r.Group(func(r chi.Router) {
		r.Use(middleware.Cache(rdb, cacheTTL, log))

		r.Get("/api/vehicles", vehicleHandler.GetVehicles)
		r.Get("/api/vehicles/{id}", vehicleHandler.GetVehicle)
	})

	// Admin fleet management; mutations flush the catalog cache
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Get("/api/admin/vehicles", vehicleHandler.GetAllVehicles)

		invalidate := middleware.CacheInvalidate(rdb, log)
		r.With(invalidate).Post("/api/admin/vehicles", vehicleHandler.CreateVehicle)
		r.With(invalidate).Put("/api/admin/vehicles/{id}", vehicleHandler.UpdateVehicle)
		r.With(invalidate).Delete("/api/admin/vehicles/{id}", vehicleHandler.DeleteVehicle)
	})
}
