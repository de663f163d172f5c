package dto

type UpdateUserRoleRequest struct {
	Role string `json:"role"`
}

// PlatformStats is the admin dashboard counters payload.
type PlatformStats struct {
	TotalUsers    int64 `json:"total_users"`
	TotalVisitors int64 `json:"total_visitors"`
	TotalArtists  int64 `json:"total_artists"`
	TotalAdmins   int64 `json:"total_admins"`
	TotalArtworks int64 `json:"total_artworks"`
	TotalOrders   int64 `json:"total_orders"`
}
