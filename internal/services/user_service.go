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

var ErrUserNotFound = errors.New("user not found")

// UserService is the admin-facing identity and role store.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) List(actor *authz.Actor) ([]models.User, error) {
	if err := authz.Authorize(actor, authz.ActionListUsers, authz.Resource{}); err != nil {
		return nil, err
	}

	var users []models.User
	err := s.db.Order("created_at DESC").Find(&users).Error
	return users, err
}

// Stats returns the admin dashboard counters.
func (s *UserService) Stats(actor *authz.Actor) (*dto.PlatformStats, error) {
	if err := authz.Authorize(actor, authz.ActionListUsers, authz.Resource{}); err != nil {
		return nil, err
	}

	var stats dto.PlatformStats
	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.TotalUsers, s.db.Model(&models.User{})},
		{&stats.TotalVisitors, s.db.Model(&models.User{}).Where("role = ?", string(authz.RoleVisitor))},
		{&stats.TotalArtists, s.db.Model(&models.User{}).Where("role = ?", string(authz.RoleArtist))},
		{&stats.TotalAdmins, s.db.Model(&models.User{}).Where("role = ?", string(authz.RoleAdmin))},
		{&stats.TotalArtworks, s.db.Model(&models.Artwork{})},
		{&stats.TotalOrders, s.db.Model(&models.Order{})},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return &stats, nil
}

// UpdateRole changes another user's role. Admins can never change their
// own role here.
func (s *UserService) UpdateRole(actor *authz.Actor, targetID uuid.UUID, role string) (*models.User, error) {
	if err := authz.Authorize(actor, authz.ActionUpdateUserRole, authz.Resource{TargetUserID: targetID}); err != nil {
		return nil, err
	}

	if _, ok := authz.ParseRole(role); !ok {
		return nil, fmt.Errorf("%w: role must be visitor, artist or admin", ErrValidationFailed)
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", targetID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	if err := s.db.Model(&user).Update("role", role).Error; err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}

	user.Role = role
	return &user, nil
}

// Delete removes another user's account. Self-deletion is denied.
func (s *UserService) Delete(actor *authz.Actor, targetID uuid.UUID) error {
	if err := authz.Authorize(actor, authz.ActionDeleteUser, authz.Resource{TargetUserID: targetID}); err != nil {
		return err
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", targetID).Error; err != nil {
		return ErrUserNotFound
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", targetID).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}

// GetByID loads a user for actor resolution.
func (s *UserService) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, ErrUserNotFound
	}
	return &user, nil
}
