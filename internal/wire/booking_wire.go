package wire

import (
	"garage-booking/internal/adaptor"
	"garage-booking/internal/data/repository"
	"garage-booking/pkg/middleware"
	"garage-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/bookings/quote - Server-side wizard price recomputation
		r.Post("/api/bookings/quote", bookingHandler.Quote)

		// POST /api/bookings - Create booking (identity resolution + lines)
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// GET /api/bookings - List bookings (filter by status/service_type)
		r.Get("/api/bookings", bookingHandler.GetBookings)

		// GET /api/bookings/{id} - Booking detail with customer/vehicle/lines
		r.Get("/api/bookings/{id}", bookingHandler.GetBookingByID)

		// PUT /api/bookings/{id}/status - pending -> completed | cancelled
		r.Put("/api/bookings/{id}/status", bookingHandler.UpdateStatus)
	})
}
