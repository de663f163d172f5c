package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ozanturhan/artmarket-backend/internal/authz"
	"github.com/ozanturhan/artmarket-backend/internal/config"
	"github.com/ozanturhan/artmarket-backend/internal/models"
)

// newTestDB opens a private in-memory sqlite database per test. The
// shared-cache DSN lets multiple connections (and goroutines) see the
// same database, which the purchase race test relies on.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Artwork{},
		&models.Order{},
		&models.RefreshToken{},
	))

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
	}
}

func createUser(t *testing.T, db *gorm.DB, role authz.Role) *models.User {
	t.Helper()

	user := &models.User{
		ID:       uuid.New(),
		Name:     "Test " + string(role),
		Email:    uuid.NewString() + "@example.com",
		Password: "not-a-real-hash",
		Role:     string(role),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func actorFor(user *models.User) *authz.Actor {
	role, _ := authz.ParseRole(user.Role)
	return &authz.Actor{ID: user.ID, Role: role}
}

func createArtwork(t *testing.T, db *gorm.DB, artistID uuid.UUID, price float64) *models.Artwork {
	t.Helper()

	artwork := &models.Artwork{
		ID:          uuid.New(),
		Title:       "Sunset No. 7",
		Description: "Oil on canvas",
		Price:       price,
		Category:    "painting",
		ImageURL:    "https://cdn.example.com/sunset-7.jpg",
		ArtistID:    artistID,
		IsAvailable: true,
	}
	require.NoError(t, db.Create(artwork).Error)
	return artwork
}
