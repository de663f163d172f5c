package dto

import "github.com/ozanturhan/artmarket-backend/internal/models"

type CreateOrderRequest struct {
	ArtworkID string `json:"artwork_id"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// SalesStats summarizes an order set. Revenue buckets sum total_amount per
// status; TotalRevenue counts only Sold orders.
type SalesStats struct {
	TotalOrders      int     `json:"total_orders"`
	PendingCount     int     `json:"pending_count"`
	ConfirmedCount   int     `json:"confirmed_count"`
	SoldCount        int     `json:"sold_count"`
	PendingRevenue   float64 `json:"pending_revenue"`
	ConfirmedRevenue float64 `json:"confirmed_revenue"`
	TotalRevenue     float64 `json:"total_revenue"`
}

type SalesReportResponse struct {
	Orders []models.Order `json:"orders"`
	Stats  SalesStats     `json:"stats"`
}
