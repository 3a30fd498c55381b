package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"estate-service/internal/domain/property"
	"estate-service/internal/listing"
)

func seedProperty(t *testing.T, repo *PropertyRepoPG, id, vendorID, city string, category property.Category, createdAt time.Time) {
	t.Helper()
	err := repo.Create(context.Background(), &property.Property{
		ID:        id,
		VendorID:  vendorID,
		Title:     "Listing " + id[20:],
		Category:  category,
		Status:    property.StatusAvailable,
		Price:     100000,
		City:      city,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	})
	require.NoError(t, err)
}

func TestPropertyRepoPG_CRUD(t *testing.T) {
	repo := NewPropertyRepoPG(setupTestDB(t), zaptest.NewLogger(t))
	ctx := context.Background()

	now := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	seedProperty(t, repo, "64f1b2c3d4e5f60718293b01", "64f1b2c3d4e5f60718293a01", "Lagos", property.CategorySale, now)

	t.Run("GetByID", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "64f1b2c3d4e5f60718293b01")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Lagos", got.City)
		assert.Equal(t, property.StatusAvailable, got.Status)
	})

	t.Run("GetByID Miss", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "64f1b2c3d4e5f60718293bff")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Update", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "64f1b2c3d4e5f60718293b01")
		require.NoError(t, err)
		require.NotNil(t, got)

		got.Status = property.StatusSold
		got.Price = 120000
		require.NoError(t, repo.Update(ctx, got))

		updated, err := repo.GetByID(ctx, "64f1b2c3d4e5f60718293b01")
		require.NoError(t, err)
		assert.Equal(t, property.StatusSold, updated.Status)
		assert.Equal(t, float64(120000), updated.Price)
	})

	t.Run("Delete", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, "64f1b2c3d4e5f60718293b01")
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, "64f1b2c3d4e5f60718293b01")
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestPropertyRepoPG_IDsByVendor(t *testing.T) {
	repo := NewPropertyRepoPG(setupTestDB(t), zaptest.NewLogger(t))
	ctx := context.Background()

	now := time.Now().UTC()
	vendor := "64f1b2c3d4e5f60718293a01"
	other := "64f1b2c3d4e5f60718293a02"

	seedProperty(t, repo, "64f1b2c3d4e5f60718293b01", vendor, "Lagos", property.CategorySale, now)
	seedProperty(t, repo, "64f1b2c3d4e5f60718293b02", vendor, "Abuja", property.CategoryRent, now)
	seedProperty(t, repo, "64f1b2c3d4e5f60718293b03", other, "Lagos", property.CategorySale, now)

	ids, err := repo.IDsByVendor(ctx, vendor)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"64f1b2c3d4e5f60718293b01", "64f1b2c3d4e5f60718293b02"}, ids)

	ids, err = repo.IDsByVendor(ctx, "64f1b2c3d4e5f60718293aee")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestPropertyRepoPG_FindWithPredicates(t *testing.T) {
	repo := NewPropertyRepoPG(setupTestDB(t), zaptest.NewLogger(t))
	ctx := context.Background()

	now := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	vendor := "64f1b2c3d4e5f60718293a01"

	seedProperty(t, repo, "64f1b2c3d4e5f60718293b01", vendor, "Lagos", property.CategorySale, now)
	seedProperty(t, repo, "64f1b2c3d4e5f60718293b02", vendor, "Abuja", property.CategoryRent, now.Add(time.Hour))
	seedProperty(t, repo, "64f1b2c3d4e5f60718293b03", "64f1b2c3d4e5f60718293a02", "Lagos", property.CategoryRent, now.Add(2*time.Hour))

	t.Run("City Filter", func(t *testing.T) {
		pred := listing.Predicate{listing.Eq("city", "Lagos")}

		total, err := repo.Count(ctx, pred)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("Conjunction Of Filters", func(t *testing.T) {
		pred := listing.Predicate{
			listing.Eq("city", "Lagos"),
			listing.Eq("category", "RENT"),
		}

		found, err := repo.Find(ctx, pred, 0, 10, listing.NewestFirst)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "64f1b2c3d4e5f60718293b03", found[0].ID)
	})

	t.Run("Membership Filter", func(t *testing.T) {
		pred := listing.Predicate{listing.In("id",
			"64f1b2c3d4e5f60718293b01",
			"64f1b2c3d4e5f60718293b03",
		)}

		total, err := repo.Count(ctx, pred)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("Vendor Scope", func(t *testing.T) {
		pred := listing.Predicate{listing.Eq("vendor_id", vendor)}

		found, err := repo.Find(ctx, pred, 0, 10, listing.NewestFirst)
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, "64f1b2c3d4e5f60718293b02", found[0].ID)
	})
}
