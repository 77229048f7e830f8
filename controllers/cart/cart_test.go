package cartControllers

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
		&models.Product{}, &models.Cart{}, &models.CartItem{},
	))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64) *models.Product {
	t.Helper()
	product := models.Product{Name: name, Price: price, Sizes: []int{40, 42, 44}}
	require.NoError(t, db.Create(&product).Error)
	return &product
}

func storedCart(t *testing.T, db *gorm.DB, userID uint) *models.Cart {
	t.Helper()
	var cart models.Cart
	require.NoError(t, db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error)
	return &cart
}

func TestAddToCart_CreatesCartLazily(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Air Runner", 50)

	cart, err := AddToCart(db, testUserID, product.ID, 42, 2)
	require.NoError(t, err)
	assert.Equal(t, 100.0, cart.Subtotal)

	persisted := storedCart(t, db, testUserID)
	require.Len(t, persisted.Items, 1)
	assert.Equal(t, 2, persisted.Items[0].Quantity)
	assert.Equal(t, 50.0, persisted.Items[0].Price)
	assert.Equal(t, 100.0, persisted.Subtotal)
}

func TestAddToCart_MergesAndRefreshesSnapshot(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Air Runner", 50)

	_, err := AddToCart(db, testUserID, product.ID, 42, 2)
	require.NoError(t, err)

	// Price drops before the second add; the merged line takes the new
	// effective price for its whole quantity.
	require.NoError(t, db.Model(product).Update("discount_price", 40).Error)

	cart, err := AddToCart(db, testUserID, product.ID, 42, 3)
	require.NoError(t, err)

	persisted := storedCart(t, db, testUserID)
	require.Len(t, persisted.Items, 1, "same (product, size) merges into one line")
	assert.Equal(t, 5, persisted.Items[0].Quantity)
	assert.Equal(t, 40.0, persisted.Items[0].Price)
	assert.Equal(t, 200.0, persisted.Subtotal)
	assert.Equal(t, persisted.Subtotal, cart.Subtotal)
}

func TestAddToCart_DifferentSizesStaySeparate(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Air Runner", 50)

	_, err := AddToCart(db, testUserID, product.ID, 42, 1)
	require.NoError(t, err)
	_, err = AddToCart(db, testUserID, product.ID, 44, 1)
	require.NoError(t, err)

	persisted := storedCart(t, db, testUserID)
	assert.Len(t, persisted.Items, 2)
	assert.Equal(t, 100.0, persisted.Subtotal)
}

func TestAddToCart_UnknownOrDeletedProduct(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Ghost Shoe", 60)
	require.NoError(t, store.SoftDeleteProduct(db, product.ID))

	_, err := AddToCart(db, testUserID, 999, 42, 1)
	assert.Equal(t, 404, apperr.From(err).Status)

	_, err = AddToCart(db, testUserID, product.ID, 42, 1)
	assert.Equal(t, 404, apperr.From(err).Status, "soft-deleted products cannot be added")
}

func TestAddToCart_RejectsNonPositiveQuantity(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Air Runner", 50)

	_, err := AddToCart(db, testUserID, product.ID, 42, 0)
	assert.Equal(t, 400, apperr.From(err).Status)
}

func TestUpdateThenRemoveScenario(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Air Runner", 50)

	_, err := AddToCart(db, testUserID, product.ID, 42, 2)
	require.NoError(t, err)
	itemID := storedCart(t, db, testUserID).Items[0].ID

	cart, err := UpdateCartItem(db, testUserID, itemID, 3)
	require.NoError(t, err)
	assert.Equal(t, 150.0, cart.Subtotal)
	assert.Equal(t, 150.0, storedCart(t, db, testUserID).Subtotal)

	cart, err = RemoveFromCart(db, testUserID, itemID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0.0, cart.Subtotal)

	persisted := storedCart(t, db, testUserID)
	assert.Empty(t, persisted.Items)
	assert.Equal(t, 0.0, persisted.Subtotal)
}

func TestUpdateCartItem_ZeroQuantityRemovesLine(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Air Runner", 50)

	_, err := AddToCart(db, testUserID, product.ID, 42, 2)
	require.NoError(t, err)
	itemID := storedCart(t, db, testUserID).Items[0].ID

	_, err = UpdateCartItem(db, testUserID, itemID, 0)
	require.NoError(t, err)

	persisted := storedCart(t, db, testUserID)
	assert.Empty(t, persisted.Items, "zero-quantity lines are removed, not persisted")
	assert.Equal(t, 0.0, persisted.Subtotal)
}

func TestUpdateCartItem_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := UpdateCartItem(db, testUserID, "no-line", 2)
	assert.Equal(t, 404, apperr.From(err).Status, "no cart yet")

	product := seedProduct(t, db, "Air Runner", 50)
	_, err = AddToCart(db, testUserID, product.ID, 42, 1)
	require.NoError(t, err)

	_, err = UpdateCartItem(db, testUserID, "no-line", 2)
	assert.Equal(t, 404, apperr.From(err).Status, "cart exists but line does not")
}

func TestRemoveFromCart_NotFoundLeavesCartUnchanged(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Air Runner", 50)

	_, err := AddToCart(db, testUserID, product.ID, 42, 2)
	require.NoError(t, err)

	_, err = RemoveFromCart(db, testUserID, "no-line")
	assert.Equal(t, 404, apperr.From(err).Status)

	persisted := storedCart(t, db, testUserID)
	assert.Len(t, persisted.Items, 1)
	assert.Equal(t, 100.0, persisted.Subtotal)
}

func TestGetCart_EmptyViewWithoutCartRow(t *testing.T) {
	db := newTestDB(t)

	view, err := GetCart(db, testUserID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0.0, view.Subtotal)
}

func TestGetCart_HidesLinesForDeletedProducts(t *testing.T) {
	db := newTestDB(t)
	kept := seedProduct(t, db, "Kept Shoe", 50)
	doomed := seedProduct(t, db, "Doomed Shoe", 30)

	_, err := AddToCart(db, testUserID, kept.ID, 42, 1)
	require.NoError(t, err)
	_, err = AddToCart(db, testUserID, doomed.ID, 40, 2)
	require.NoError(t, err)

	require.NoError(t, store.SoftDeleteProduct(db, doomed.ID))

	view, err := GetCart(db, testUserID)
	require.NoError(t, err)
	require.Len(t, view.Items, 1, "stale line is hidden from the view")
	assert.Equal(t, kept.ID, view.Items[0].ProductID)
	assert.Equal(t, "Kept Shoe", view.Items[0].ProductName)
	assert.Equal(t, 50.0, view.Subtotal, "view subtotal covers visible lines only")

	// The stale line stays in storage.
	persisted := storedCart(t, db, testUserID)
	assert.Len(t, persisted.Items, 2)
}

func TestClearCart(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Air Runner", 50)

	_, err := AddToCart(db, testUserID, product.ID, 42, 2)
	require.NoError(t, err)

	require.NoError(t, ClearCart(db, testUserID))

	persisted := storedCart(t, db, testUserID)
	assert.Empty(t, persisted.Items)
	assert.Equal(t, 0.0, persisted.Subtotal)

	// Clearing a user with no cart is a no-op, not an error.
	require.NoError(t, ClearCart(db, 999))
}
