package services

import (
	"gorm.io/gorm"

	"github.com/ozanturhan/artmarket-backend/internal/authz"
	"github.com/ozanturhan/artmarket-backend/internal/dto"
	"github.com/ozanturhan/artmarket-backend/internal/models"
)

// ReportService derives sales statistics from order snapshots.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// Aggregate summarizes a snapshot of orders. Revenue only counts toward
// TotalRevenue once an order reaches Sold.
func Aggregate(orders []models.Order) dto.SalesStats {
	stats := dto.SalesStats{TotalOrders: len(orders)}
	for _, order := range orders {
		switch order.Status {
		case models.OrderStatusPending:
			stats.PendingCount++
			stats.PendingRevenue += order.TotalAmount
		case models.OrderStatusConfirmed:
			stats.ConfirmedCount++
			stats.ConfirmedRevenue += order.TotalAmount
		case models.OrderStatusSold:
			stats.SoldCount++
			stats.TotalRevenue += order.TotalAmount
		}
	}
	return stats
}

// ArtistSales reports orders and stats for the actor's own artworks.
func (s *ReportService) ArtistSales(actor *authz.Actor) (*dto.SalesReportResponse, error) {
	if err := authz.Authorize(actor, authz.ActionViewArtistSales, authz.Resource{}); err != nil {
		return nil, err
	}

	var artworkIDs []string
	if err := s.db.Model(&models.Artwork{}).
		Where("artist_id = ?", actor.ID).
		Pluck("id", &artworkIDs).Error; err != nil {
		return nil, err
	}

	var orders []models.Order
	if len(artworkIDs) > 0 {
		err := s.db.Preload("Buyer").Preload("Artwork").
			Where("artwork_id IN ?", artworkIDs).
			Order("created_at DESC").
			Find(&orders).Error
		if err != nil {
			return nil, err
		}
	}

	return &dto.SalesReportResponse{Orders: orders, Stats: Aggregate(orders)}, nil
}

// GlobalSales is the admin sales report over every order.
func (s *ReportService) GlobalSales(actor *authz.Actor) (*dto.SalesReportResponse, error) {
	if err := authz.Authorize(actor, authz.ActionViewGlobalReport, authz.Resource{}); err != nil {
		return nil, err
	}

	var orders []models.Order
	if err := s.db.Preload("Buyer").Preload("Artwork").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}

	return &dto.SalesReportResponse{Orders: orders, Stats: Aggregate(orders)}, nil
}
