package dashboard

import "github.com/shopspring/decimal"

// StatsDTO carries the dashboard aggregates. TotalSpend serializes as a
// quoted decimal string so the rand amount survives JSON exactly.
type StatsDTO struct {
	TotalCampaigns    int64           `json:"total_campaigns"`
	ActiveCampaigns   int64           `json:"active_campaigns"`
	TotalBookings     int64           `json:"total_bookings"`
	TotalSpend        decimal.Decimal `json:"total_spend"`
	PendingBookings   int64           `json:"pending_bookings"`
	CompletedBookings int64           `json:"completed_bookings"`
}
