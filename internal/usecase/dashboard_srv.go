package usecase

import (
	"context"
	"fmt"
	"time"

	"garage-booking/internal/data/repository"
	"garage-booking/internal/dto/response"
	"garage-booking/internal/pricing"

	"go.uber.org/zap"
)

type DashboardService interface {
	RevenueSummary(ctx context.Context, from, to time.Time) (*response.RevenueSummaryResponse, error)
}

type dashboardService struct {
	bookingRepo repository.BookingRepository
	log         *zap.Logger
}

func NewDashboardService(bookingRepo repository.BookingRepository, log *zap.Logger) DashboardService {
	return &dashboardService{
		bookingRepo: bookingRepo,
		log:         log,
	}
}

// RevenueSummary aggregates completed bookings only; pending and cancelled
// bookings never count as revenue.
func (s *dashboardService) RevenueSummary(ctx context.Context, from, to time.Time) (*response.RevenueSummaryResponse, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("validation failed: date range end before start")
	}

	byType, err := s.bookingRepo.RevenueByServiceType(ctx, from, to)
	if err != nil {
		s.log.Error("Failed to aggregate revenue by service type", zap.Error(err))
		return nil, fmt.Errorf("failed to load revenue summary")
	}

	byDay, err := s.bookingRepo.RevenueByDay(ctx, from, to)
	if err != nil {
		s.log.Error("Failed to aggregate revenue by day", zap.Error(err))
		return nil, fmt.Errorf("failed to load revenue summary")
	}

	resp := &response.RevenueSummaryResponse{
		From:          from.Format("2006-01-02"),
		To:            to.Format("2006-01-02"),
		ByServiceType: make([]response.ServiceTypeRevenue, 0, len(byType)),
		ByDay:         make([]response.DailyRevenue, 0, len(byDay)),
	}

	for _, row := range byType {
		resp.TotalBookings += row.Bookings
		resp.TotalRevenue += row.Revenue
		resp.ByServiceType = append(resp.ByServiceType, response.ServiceTypeRevenue{
			ServiceType: row.ServiceType,
			Bookings:    row.Bookings,
			Revenue:     row.Revenue,
		})
	}
	resp.TotalRevenue = pricing.Round2(resp.TotalRevenue)

	for _, row := range byDay {
		resp.ByDay = append(resp.ByDay, response.DailyRevenue{
			Date:     row.Day.Format("2006-01-02"),
			Bookings: row.Bookings,
			Revenue:  row.Revenue,
		})
	}

	return resp, nil
}
