package wire

import (
	"garage-booking/internal/adaptor"
	"garage-booking/internal/data/repository"
	"garage-booking/pkg/middleware"
	"garage-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED READ ROUTES ====================
	// The booking wizard reads the catalog; any authenticated staff can list
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/catalog/brands - List brands
		r.Get("/api/catalog/brands", catalogHandler.GetBrands)

		// GET /api/catalog/brands/{id} - Brand detail
		r.Get("/api/catalog/brands/{id}", catalogHandler.GetBrandByID)

		// GET /api/catalog/brands/{id}/models - Models of a brand
		r.Get("/api/catalog/brands/{id}/models", catalogHandler.GetVehicleModelsByBrand)

		// GET /api/catalog/models - List vehicle models
		r.Get("/api/catalog/models", catalogHandler.GetVehicleModels)
	})

	// ==================== ADMIN MUTATION ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		// POST /api/catalog/brands - Create brand
		r.Post("/api/catalog/brands", catalogHandler.CreateBrand)

		// PUT /api/catalog/brands/{id} - Update brand
		r.Put("/api/catalog/brands/{id}", catalogHandler.UpdateBrand)

		// DELETE /api/catalog/brands/{id} - Delete brand (no models attached)
		r.Delete("/api/catalog/brands/{id}", catalogHandler.DeleteBrand)

		// POST /api/catalog/models - Create vehicle model
		r.Post("/api/catalog/models", catalogHandler.CreateVehicleModel)

		// PUT /api/catalog/models/{id} - Update vehicle model
		r.Put("/api/catalog/models/{id}", catalogHandler.UpdateVehicleModel)

		// DELETE /api/catalog/models/{id} - Delete vehicle model
		r.Delete("/api/catalog/models/{id}", catalogHandler.DeleteVehicleModel)
	})
}
