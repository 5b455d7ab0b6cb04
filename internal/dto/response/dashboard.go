package response

import "garage-booking/internal/data/entity"

type ServiceTypeRevenue struct {
	ServiceType entity.ServiceType `json:"service_type"`
	Bookings    int64              `json:"bookings"`
	Revenue     float64            `json:"revenue"`
}

type DailyRevenue struct {
	Date     string  `json:"date"`
	Bookings int64   `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

// RevenueSummaryResponse covers completed bookings only.
type RevenueSummaryResponse struct {
	From          string               `json:"from"`
	To            string               `json:"to"`
	TotalBookings int64                `json:"total_bookings"`
	TotalRevenue  float64              `json:"total_revenue"`
	ByServiceType []ServiceTypeRevenue `json:"by_service_type"`
	ByDay         []DailyRevenue       `json:"by_day"`
}
