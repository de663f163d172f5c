package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozanturhan/artmarket-backend/internal/authz"
	"github.com/ozanturhan/artmarket-backend/internal/models"
)

func TestAggregate(t *testing.T) {
	orders := []models.Order{
		{TotalAmount: 100, Status: models.OrderStatusSold},
		{TotalAmount: 50, Status: models.OrderStatusPending},
		{TotalAmount: 75, Status: models.OrderStatusSold},
	}

	stats := Aggregate(orders)

	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 2, stats.SoldCount)
	assert.Equal(t, 1, stats.PendingCount)
	assert.Equal(t, 0, stats.ConfirmedCount)
	assert.Equal(t, 175.0, stats.TotalRevenue)
	assert.Equal(t, 50.0, stats.PendingRevenue)
}

func TestAggregateEmpty(t *testing.T) {
	stats := Aggregate(nil)
	assert.Zero(t, stats.TotalOrders)
	assert.Zero(t, stats.TotalRevenue)
}

func TestArtistSalesScopedToOwnArtworks(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderService(db, nil)
	reports := NewReportService(db)

	artistA := createUser(t, db, authz.RoleArtist)
	artistB := createUser(t, db, authz.RoleArtist)
	buyer := createUser(t, db, authz.RoleVisitor)
	admin := createUser(t, db, authz.RoleAdmin)

	artworkA := createArtwork(t, db, artistA.ID, 100)
	artworkB := createArtwork(t, db, artistB.ID, 40)

	orderA, err := orders.Create(actorFor(buyer), artworkA.ID)
	require.NoError(t, err)
	_, err = orders.Create(actorFor(buyer), artworkB.ID)
	require.NoError(t, err)

	_, err = orders.SetStatus(actorFor(admin), orderA.ID, models.OrderStatusSold)
	require.NoError(t, err)

	report, err := reports.ArtistSales(actorFor(artistA))
	require.NoError(t, err)
	require.Len(t, report.Orders, 1)
	assert.Equal(t, artworkA.ID, report.Orders[0].ArtworkID)
	assert.Equal(t, 1, report.Stats.SoldCount)
	assert.Equal(t, 100.0, report.Stats.TotalRevenue)

	// An artist with no artworks gets an empty report, not an error.
	noSales := createUser(t, db, authz.RoleArtist)
	empty, err := reports.ArtistSales(actorFor(noSales))
	require.NoError(t, err)
	assert.Empty(t, empty.Orders)
	assert.Zero(t, empty.Stats.TotalOrders)
}

func TestArtistSalesRequiresArtistRole(t *testing.T) {
	db := newTestDB(t)
	reports := NewReportService(db)

	visitor := createUser(t, db, authz.RoleVisitor)
	_, err := reports.ArtistSales(actorFor(visitor))
	assert.ErrorIs(t, err, authz.ErrInsufficientRole)
}

func TestGlobalSalesAdminOnly(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderService(db, nil)
	reports := NewReportService(db)

	artist := createUser(t, db, authz.RoleArtist)
	buyer := createUser(t, db, authz.RoleVisitor)
	admin := createUser(t, db, authz.RoleAdmin)

	artwork := createArtwork(t, db, artist.ID, 60)
	_, err := orders.Create(actorFor(buyer), artwork.ID)
	require.NoError(t, err)

	report, err := reports.GlobalSales(actorFor(admin))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Stats.TotalOrders)
	assert.Equal(t, 1, report.Stats.PendingCount)
	assert.Equal(t, 60.0, report.Stats.PendingRevenue)
	assert.Zero(t, report.Stats.TotalRevenue)

	_, err = reports.GlobalSales(actorFor(artist))
	assert.ErrorIs(t, err, authz.ErrInsufficientRole)
}
