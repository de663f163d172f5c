package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ozanturhan/artmarket-backend/internal/authz"
	"github.com/ozanturhan/artmarket-backend/internal/dto"
	"github.com/ozanturhan/artmarket-backend/internal/models"
)

var ErrArtworkNotFound = errors.New("artwork not found")

// ArtworkService handles catalog CRUD. Ownership and the admin-only
// featured flag are enforced through the authz engine.
type ArtworkService struct {
	db *gorm.DB
}

func NewArtworkService(db *gorm.DB) *ArtworkService {
	return &ArtworkService{db: db}
}

// List is the public catalog query.
func (s *ArtworkService) List(filter dto.ArtworkFilter) ([]models.Artwork, error) {
	query := s.db.Model(&models.Artwork{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.ArtistID != "" {
		artistID, err := uuid.Parse(filter.ArtistID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid artist id", ErrValidationFailed)
		}
		query = query.Where("artist_id = ?", artistID)
	}
	if filter.Featured {
		query = query.Where("is_featured = ?", true)
	}
	if filter.Available != nil {
		query = query.Where("is_available = ?", *filter.Available)
	}

	var artworks []models.Artwork
	err := query.Order("created_at DESC").Find(&artworks).Error
	return artworks, err
}

func (s *ArtworkService) GetByID(id uuid.UUID) (*models.Artwork, error) {
	var artwork models.Artwork
	if err := s.db.First(&artwork, "id = ?", id).Error; err != nil {
		return nil, ErrArtworkNotFound
	}
	return &artwork, nil
}

func (s *ArtworkService) ListByArtist(artistID uuid.UUID) ([]models.Artwork, error) {
	var artworks []models.Artwork
	err := s.db.Where("artist_id = ?", artistID).
		Order("created_at DESC").
		Find(&artworks).Error
	return artworks, err
}

// Categories returns the distinct category values in the catalog.
func (s *ArtworkService) Categories() ([]string, error) {
	var categories []string
	err := s.db.Model(&models.Artwork{}).
		Distinct().
		Order("category").
		Pluck("category", &categories).Error
	return categories, err
}

func (s *ArtworkService) Create(actor *authz.Actor, req *dto.CreateArtworkRequest) (*models.Artwork, error) {
	if err := authz.Authorize(actor, authz.ActionCreateArtwork, authz.Resource{}); err != nil {
		return nil, err
	}

	if req.Title == "" || req.Description == "" || req.Category == "" || req.ImageURL == "" {
		return nil, fmt.Errorf("%w: title, description, category and image_url are required", ErrValidationFailed)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrValidationFailed)
	}

	artwork := models.Artwork{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		ArtistID:    actor.ID,
		IsAvailable: true,
	}

	if err := s.db.Create(&artwork).Error; err != nil {
		return nil, fmt.Errorf("failed to create artwork: %w", err)
	}

	return &artwork, nil
}

func (s *ArtworkService) Update(actor *authz.Actor, id uuid.UUID, req *dto.UpdateArtworkRequest) (*models.Artwork, error) {
	artwork, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := authz.Authorize(actor, authz.ActionUpdateArtwork, authz.Resource{ArtistID: artwork.ArtistID}); err != nil {
		return nil, err
	}

	// Column-level update only. A full-row Save would write is_available
	// back from this (possibly stale) read and could resurrect a sold
	// artwork; the availability flag is written solely by the purchase
	// transaction.
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("%w: price cannot be negative", ErrValidationFailed)
		}
		updates["price"] = *req.Price
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	// Featured is admin-only; non-admin requests carrying it are ignored.
	if req.IsFeatured != nil {
		if authz.Authorize(actor, authz.ActionFeatureArtwork, authz.Resource{}) == nil {
			updates["is_featured"] = *req.IsFeatured
		}
	}

	if len(updates) > 0 {
		if err := s.db.Model(&models.Artwork{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update artwork: %w", err)
		}
	}

	return s.GetByID(id)
}

func (s *ArtworkService) Delete(actor *authz.Actor, id uuid.UUID) error {
	artwork, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if err := authz.Authorize(actor, authz.ActionDeleteArtwork, authz.Resource{ArtistID: artwork.ArtistID}); err != nil {
		return err
	}

	return s.db.Delete(artwork).Error
}
