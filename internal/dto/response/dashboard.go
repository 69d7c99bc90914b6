package response

type DashboardResponse struct {
	TotalVehicles     int64 `json:"total_vehicles"`
	AvailableVehicles int64 `json:"available_vehicles"`
	TotalBookings     int64 `json:"total_bookings"`
	PendingBookings   int64 `json:"pending_bookings"`
	ConfirmedBookings int64 `json:"confirmed_bookings"`
	TotalUsers        int64 `json:"total_users"`
	TotalRevenue      int64 `json:"total_revenue"`
}
