package usecase

import (
	"garage-booking/internal/data/repository"
	"garage-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	User      UserService
	Catalog   CatalogService
	Inventory InventoryService
	Booking   BookingService
	Dashboard DashboardService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo, config, log),
		User:      NewUserService(repo.User, log),
		Catalog:   NewCatalogService(repo, log),
		Inventory: NewInventoryService(repo, log),
		Booking:   NewBookingService(repo, config, log),
		Dashboard: NewDashboardService(repo.Booking, log),
	}
}
