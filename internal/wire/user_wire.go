package wire

import (
	"garage-booking/internal/adaptor"
	"garage-booking/internal/data/repository"
	"garage-booking/pkg/middleware"
	"garage-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	// User management is admin-only
	r.Route("/api/admin/users", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		// POST /api/admin/users - Create staff/admin account
		r.Post("/", userHandler.CreateUser)

		// GET /api/admin/users - List accounts
		r.Get("/", userHandler.GetUsers)

		// GET /api/admin/users/{id} - Account detail
		r.Get("/{id}", userHandler.GetUserByID)

		// PUT /api/admin/users/{id} - Update account
		r.Put("/{id}", userHandler.UpdateUser)

		// DELETE /api/admin/users/{id} - Deactivate account
		r.Delete("/{id}", userHandler.DeleteUser)
	})
}
