package wire

import (
	"garage-booking/internal/adaptor"
	"garage-booking/internal/data/repository"
	"garage-booking/pkg/middleware"
	"garage-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireInventory(
	r chi.Router,
	inventoryHandler *adaptor.InventoryHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED READ ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/catalog/oil-types - List oil types with package prices
		r.Get("/api/catalog/oil-types", inventoryHandler.GetOilTypes)

		// GET /api/catalog/oil-types/{id} - Oil type detail
		r.Get("/api/catalog/oil-types/{id}", inventoryHandler.GetOilTypeByID)

		// GET /api/catalog/oil-filters - List oil filters
		r.Get("/api/catalog/oil-filters", inventoryHandler.GetOilFilters)

		// GET /api/catalog/battery-types - List battery types
		r.Get("/api/catalog/battery-types", inventoryHandler.GetBatteryTypes)

		// GET /api/catalog/accessories - List accessories
		r.Get("/api/catalog/accessories", inventoryHandler.GetAccessories)
	})

	// ==================== ADMIN MUTATION ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		// POST /api/catalog/oil-types - Create oil type
		r.Post("/api/catalog/oil-types", inventoryHandler.CreateOilType)

		// PUT /api/catalog/oil-types/{id} - Update oil type
		r.Put("/api/catalog/oil-types/{id}", inventoryHandler.UpdateOilType)

		// DELETE /api/catalog/oil-types/{id} - Delete oil type
		r.Delete("/api/catalog/oil-types/{id}", inventoryHandler.DeleteOilType)

		// POST /api/catalog/oil-filters - Create oil filter
		r.Post("/api/catalog/oil-filters", inventoryHandler.CreateOilFilter)

		// PUT /api/catalog/oil-filters/{id} - Update oil filter
		r.Put("/api/catalog/oil-filters/{id}", inventoryHandler.UpdateOilFilter)

		// DELETE /api/catalog/oil-filters/{id} - Delete oil filter
		r.Delete("/api/catalog/oil-filters/{id}", inventoryHandler.DeleteOilFilter)

		// POST /api/catalog/battery-types - Create battery type
		r.Post("/api/catalog/battery-types", inventoryHandler.CreateBatteryType)

		// PUT /api/catalog/battery-types/{id} - Update battery type
		r.Put("/api/catalog/battery-types/{id}", inventoryHandler.UpdateBatteryType)

		// DELETE /api/catalog/battery-types/{id} - Delete battery type
		r.Delete("/api/catalog/battery-types/{id}", inventoryHandler.DeleteBatteryType)

		// POST /api/catalog/accessories - Create accessory
		r.Post("/api/catalog/accessories", inventoryHandler.CreateAccessory)

		// PUT /api/catalog/accessories/{id} - Update accessory
		r.Put("/api/catalog/accessories/{id}", inventoryHandler.UpdateAccessory)

		// DELETE /api/catalog/accessories/{id} - Delete accessory
		r.Delete("/api/catalog/accessories/{id}", inventoryHandler.DeleteAccessory)
	})
}
