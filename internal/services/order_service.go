package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ozanturhan/artmarket-backend/internal/authz"
	"github.com/ozanturhan/artmarket-backend/internal/metrics"
	"github.com/ozanturhan/artmarket-backend/internal/models"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrArtworkUnavailable = errors.New("artwork is not available for purchase")
	ErrInvalidStatus      = errors.New("invalid order status")
)

// OrderService owns the purchase transaction and the order lifecycle.
type OrderService struct {
	db *gorm.DB
	m  *metrics.Metrics
}

func NewOrderService(db *gorm.DB, m *metrics.Metrics) *OrderService {
	return &OrderService{db: db, m: m}
}

// Create reserves the artwork and records the order. The availability
// check and flip happen as one conditional UPDATE, so when two buyers race
// on the same artwork exactly one RowsAffected == 1 and the loser gets
// ErrArtworkUnavailable. A failed order insert rolls the flip back.
func (s *OrderService) Create(actor *authz.Actor, artworkID uuid.UUID) (*models.Order, error) {
	var artwork models.Artwork
	if err := s.db.First(&artwork, "id = ?", artworkID).Error; err != nil {
		return nil, ErrArtworkNotFound
	}

	// Cheap pre-check; the transaction below is the real arbiter.
	if !artwork.IsAvailable {
		s.countPurchase("unavailable")
		return nil, ErrArtworkUnavailable
	}

	if err := authz.Authorize(actor, authz.ActionPurchaseArtwork, authz.Resource{ArtistID: artwork.ArtistID}); err != nil {
		s.countPurchase("denied")
		return nil, err
	}

	var order *models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Artwork{}).
			Where("id = ? AND is_available = ?", artworkID, true).
			Update("is_available", false)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrArtworkUnavailable
		}

		// Re-read inside the transaction: total_amount must be the price
		// at the instant of the successful reservation.
		var reserved models.Artwork
		if err := tx.First(&reserved, "id = ?", artworkID).Error; err != nil {
			return err
		}

		order = &models.Order{
			ID:          uuid.New(),
			BuyerID:     actor.ID,
			ArtworkID:   artworkID,
			TotalAmount: reserved.Price,
			Status:      models.OrderStatusPending,
		}
		return tx.Create(order).Error
	})
	if err != nil {
		if errors.Is(err, ErrArtworkUnavailable) {
			s.countPurchase("unavailable")
			if s.m != nil {
				s.m.PurchaseConflicts.Inc()
			}
			return nil, ErrArtworkUnavailable
		}
		s.countPurchase("error")
		return nil, fmt.Errorf("purchase failed: %w", err)
	}

	s.countPurchase("success")
	return s.getWithRefs(order.ID)
}

// List returns every order for admins and the actor's own orders otherwise.
func (s *OrderService) List(actor *authz.Actor) ([]models.Order, error) {
	if actor == nil {
		return nil, authz.ErrUnauthenticated
	}

	query := s.db.Preload("Buyer").Preload("Artwork").Order("created_at DESC")
	if authz.Authorize(actor, authz.ActionListAllOrders, authz.Resource{}) != nil {
		query = query.Where("buyer_id = ?", actor.ID)
	}

	var orders []models.Order
	err := query.Find(&orders).Error
	return orders, err
}

func (s *OrderService) GetByID(actor *authz.Actor, id uuid.UUID) (*models.Order, error) {
	order, err := s.getWithRefs(id)
	if err != nil {
		return nil, err
	}

	if err := authz.Authorize(actor, authz.ActionReadOrder, authz.Resource{BuyerID: order.BuyerID}); err != nil {
		return nil, err
	}

	return order, nil
}

// SetStatus moves an order to any of the named statuses. Transitions are
// not forced to be monotonic; re-setting the current status is a no-op
// that still succeeds.
func (s *OrderService) SetStatus(actor *authz.Actor, id uuid.UUID, status string) (*models.Order, error) {
	if err := authz.Authorize(actor, authz.ActionSetOrderStatus, authz.Resource{}); err != nil {
		return nil, err
	}

	if !models.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	var order models.Order
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		return nil, ErrOrderNotFound
	}

	if err := s.db.Model(&order).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	if s.m != nil {
		s.m.OrderStatusMoves.WithLabelValues(status).Inc()
	}

	return s.getWithRefs(id)
}

func (s *OrderService) getWithRefs(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("Buyer").Preload("Artwork").First(&order, "id = ?", id).Error
	if err != nil {
		return nil, ErrOrderNotFound
	}
	return &order, nil
}

func (s *OrderService) countPurchase(outcome string) {
	if s.m != nil {
		s.m.PurchaseAttempts.WithLabelValues(outcome).Inc()
	}
}
