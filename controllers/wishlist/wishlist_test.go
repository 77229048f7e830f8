package wishlistControllers

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/MEETT007/Shoe-App-Backend/apperr"
	"github.com/MEETT007/Shoe-App-Backend/models"
	"github.com/MEETT007/Shoe-App-Backend/store"
)

const testUserID uint = 1

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Product{}, &models.Wishlist{}, &models.WishlistItem{},
	))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string) *models.Product {
	t.Helper()
	product := models.Product{Name: name, Price: 80}
	require.NoError(t, db.Create(&product).Error)
	return &product
}

func TestAddToWishlist(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Trail Blazer")

	require.NoError(t, AddToWishlist(db, testUserID, product.ID))

	products, err := GetWishlist(db, testUserID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, product.ID, products[0].ID)
}

func TestAddToWishlist_DuplicateConflicts(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Trail Blazer")

	require.NoError(t, AddToWishlist(db, testUserID, product.ID))

	err := AddToWishlist(db, testUserID, product.ID)
	assert.Equal(t, 409, apperr.From(err).Status)

	products, err := GetWishlist(db, testUserID)
	require.NoError(t, err)
	assert.Len(t, products, 1, "duplicate add must not grow the wishlist")
}

func TestAddToWishlist_UnknownOrDeletedProduct(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Trail Blazer")
	require.NoError(t, store.SoftDeleteProduct(db, product.ID))

	err := AddToWishlist(db, testUserID, 999)
	assert.Equal(t, 404, apperr.From(err).Status)

	err = AddToWishlist(db, testUserID, product.ID)
	assert.Equal(t, 404, apperr.From(err).Status)
}

func TestGetWishlist_EmptyWithoutRow(t *testing.T) {
	db := newTestDB(t)

	products, err := GetWishlist(db, testUserID)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestGetWishlist_HidesDeletedProducts(t *testing.T) {
	db := newTestDB(t)
	first := seedProduct(t, db, "First Pick")
	second := seedProduct(t, db, "Second Pick")
	third := seedProduct(t, db, "Third Pick")

	for _, p := range []*models.Product{first, second, third} {
		require.NoError(t, AddToWishlist(db, testUserID, p.ID))
	}
	require.NoError(t, store.SoftDeleteProduct(db, second.ID))

	products, err := GetWishlist(db, testUserID)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, first.ID, products[0].ID, "insertion order preserved")
	assert.Equal(t, third.ID, products[1].ID)

	// The stale reference stays in storage.
	var count int64
	require.NoError(t, db.Model(&models.WishlistItem{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestRemoveFromWishlist(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Trail Blazer")

	require.NoError(t, AddToWishlist(db, testUserID, product.ID))
	require.NoError(t, RemoveFromWishlist(db, testUserID, product.ID))

	products, err := GetWishlist(db, testUserID)
	require.NoError(t, err)
	assert.Empty(t, products)

	// Removing again, or from a user with no wishlist, is NotFound.
	err = RemoveFromWishlist(db, testUserID, product.ID)
	assert.Equal(t, 404, apperr.From(err).Status)

	err = RemoveFromWishlist(db, 999, product.ID)
	assert.Equal(t, 404, apperr.From(err).Status)
}
