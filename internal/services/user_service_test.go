package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozanturhan/artmarket-backend/internal/authz"
	"github.com/ozanturhan/artmarket-backend/internal/models"
)

func TestUpdateRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	admin := createUser(t, db, authz.RoleAdmin)
	visitor := createUser(t, db, authz.RoleVisitor)

	updated, err := svc.UpdateRole(actorFor(admin), visitor.ID, string(authz.RoleArtist))
	require.NoError(t, err)
	assert.Equal(t, string(authz.RoleArtist), updated.Role)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, "id = ?", visitor.ID).Error)
	assert.Equal(t, string(authz.RoleArtist), reloaded.Role)
}

func TestUpdateRoleGuards(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	admin := createUser(t, db, authz.RoleAdmin)
	artist := createUser(t, db, authz.RoleArtist)

	_, err := svc.UpdateRole(actorFor(admin), admin.ID, string(authz.RoleVisitor))
	assert.ErrorIs(t, err, authz.ErrSelfModification)

	_, err = svc.UpdateRole(actorFor(artist), admin.ID, string(authz.RoleVisitor))
	assert.ErrorIs(t, err, authz.ErrInsufficientRole)

	_, err = svc.UpdateRole(actorFor(admin), artist.ID, "superuser")
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = svc.UpdateRole(actorFor(admin), uuid.New(), string(authz.RoleArtist))
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	admin := createUser(t, db, authz.RoleAdmin)
	visitor := createUser(t, db, authz.RoleVisitor)

	require.NoError(t, svc.Delete(actorFor(admin), visitor.ID))

	var count int64
	db.Model(&models.User{}).Where("id = ?", visitor.ID).Count(&count)
	assert.Zero(t, count)
}

func TestDeleteUserRemovesRefreshTokens(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	admin := createUser(t, db, authz.RoleAdmin)
	visitor := createUser(t, db, authz.RoleVisitor)
	other := createUser(t, db, authz.RoleVisitor)

	for _, userID := range []uuid.UUID{visitor.ID, other.ID} {
		require.NoError(t, db.Create(&models.RefreshToken{
			ID:        uuid.New(),
			UserID:    userID,
			TokenHash: uuid.NewString(),
			ExpiresAt: time.Now().Add(time.Hour),
		}).Error)
	}

	require.NoError(t, svc.Delete(actorFor(admin), visitor.ID))

	var count int64
	db.Model(&models.RefreshToken{}).Where("user_id = ?", visitor.ID).Count(&count)
	assert.Zero(t, count)

	// Tokens belonging to other users survive.
	db.Model(&models.RefreshToken{}).Where("user_id = ?", other.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestDeleteUserGuards(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	admin := createUser(t, db, authz.RoleAdmin)
	visitor := createUser(t, db, authz.RoleVisitor)

	assert.ErrorIs(t, svc.Delete(actorFor(admin), admin.ID), authz.ErrSelfModification)
	assert.ErrorIs(t, svc.Delete(actorFor(visitor), admin.ID), authz.ErrInsufficientRole)
	assert.ErrorIs(t, svc.Delete(actorFor(admin), uuid.New()), ErrUserNotFound)
}

func TestPlatformStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	orders := NewOrderService(db, nil)

	admin := createUser(t, db, authz.RoleAdmin)
	artist := createUser(t, db, authz.RoleArtist)
	visitor := createUser(t, db, authz.RoleVisitor)
	artwork := createArtwork(t, db, artist.ID, 30)

	_, err := orders.Create(actorFor(visitor), artwork.ID)
	require.NoError(t, err)

	stats, err := svc.Stats(actorFor(admin))
	require.NoError(t, err)

	assert.EqualValues(t, 3, stats.TotalUsers)
	assert.EqualValues(t, 1, stats.TotalVisitors)
	assert.EqualValues(t, 1, stats.TotalArtists)
	assert.EqualValues(t, 1, stats.TotalAdmins)
	assert.EqualValues(t, 1, stats.TotalArtworks)
	assert.EqualValues(t, 1, stats.TotalOrders)

	_, err = svc.Stats(actorFor(visitor))
	assert.ErrorIs(t, err, authz.ErrInsufficientRole)
}
