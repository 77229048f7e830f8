package orderControllers

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/MEETT007/Shoe-App-Backend/apperr"
	"github.com/MEETT007/Shoe-App-Backend/models"
)

const (
	ownerID    uint = 1
	strangerID uint = 2
	adminID    uint = 3
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Order{}, &models.OrderItem{},
	))
	require.NoError(t, db.Create(&models.User{Email: "owner@example.com", Name: "Owner"}).Error)
	require.NoError(t, db.Create(&models.User{Email: "stranger@example.com", Name: "Stranger"}).Error)
	return db
}

func checkoutFixture() CheckoutInput {
	return CheckoutInput{
		OrderItems: []OrderItemInput{
			{ProductID: 10, Name: "Air Runner", Size: 42, Price: 50, Quantity: 2},
			{ProductID: 11, Name: "Trail Blazer", Size: 44, Price: 80, Quantity: 1},
		},
		ShippingAddress: models.ShippingAddress{
			Address: "1 Main St", City: "Springfield", PostalCode: "12345", Country: "US",
		},
		PaymentMethod: "card",
		ItemsPrice:    180,
		TaxPrice:      18,
		ShippingPrice: 5,
		TotalPrice:    203,
	}
}

func TestCreateOrder(t *testing.T) {
	db := newTestDB(t)

	order, err := CreateOrder(db, ownerID, checkoutFixture())
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.False(t, order.IsPaid)

	var persisted models.Order
	require.NoError(t, db.Preload("Items").First(&persisted, order.ID).Error)
	require.Len(t, persisted.Items, 2)
	// Pricing is stored exactly as submitted.
	assert.Equal(t, 180.0, persisted.ItemsPrice)
	assert.Equal(t, 203.0, persisted.TotalPrice)
	assert.Equal(t, 50.0, persisted.Items[0].Price)
	assert.Equal(t, "Springfield", persisted.ShippingAddress.City)
}

func TestCreateOrder_SubmittedPricingIsNotRecomputed(t *testing.T) {
	db := newTestDB(t)

	input := checkoutFixture()
	input.TotalPrice = 1 // deliberately inconsistent with the line items

	order, err := CreateOrder(db, ownerID, input)
	require.NoError(t, err)
	assert.Equal(t, 1.0, order.TotalPrice)
}

func TestCreateOrder_EmptyItemsRejected(t *testing.T) {
	db := newTestDB(t)

	input := checkoutFixture()
	input.OrderItems = nil

	_, err := CreateOrder(db, ownerID, input)
	assert.Equal(t, 400, apperr.From(err).Status)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.EqualValues(t, 0, count, "rejected checkout must not persist anything")
}

func TestGetOrder_Ownership(t *testing.T) {
	db := newTestDB(t)
	created, err := CreateOrder(db, ownerID, checkoutFixture())
	require.NoError(t, err)

	order, err := GetOrder(db, created.ID, ownerID, models.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, created.ID, order.ID)

	_, err = GetOrder(db, created.ID, strangerID, models.RoleUser)
	assert.Equal(t, 403, apperr.From(err).Status)

	order, err = GetOrder(db, created.ID, adminID, models.RoleAdmin)
	require.NoError(t, err, "admins can read any order")
	assert.Equal(t, created.ID, order.ID)

	_, err = GetOrder(db, 999, ownerID, models.RoleUser)
	assert.Equal(t, 404, apperr.From(err).Status)
}

func TestGetMyOrders(t *testing.T) {
	db := newTestDB(t)
	_, err := CreateOrder(db, ownerID, checkoutFixture())
	require.NoError(t, err)
	_, err = CreateOrder(db, ownerID, checkoutFixture())
	require.NoError(t, err)
	_, err = CreateOrder(db, strangerID, checkoutFixture())
	require.NoError(t, err)

	orders, err := GetMyOrders(db, ownerID)
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	orders, err = GetMyOrders(db, 999)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestUpdateOrderStatus(t *testing.T) {
	db := newTestDB(t)
	created, err := CreateOrder(db, ownerID, checkoutFixture())
	require.NoError(t, err)

	order, err := UpdateOrderStatus(db, created.ID, "shipped")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, order.Status)

	var persisted models.Order
	require.NoError(t, db.First(&persisted, created.ID).Error)
	assert.Equal(t, models.OrderStatusShipped, persisted.Status)
}

func TestUpdateOrderStatus_AnyKnownTransitionAllowed(t *testing.T) {
	db := newTestDB(t)
	created, err := CreateOrder(db, ownerID, checkoutFixture())
	require.NoError(t, err)

	_, err = UpdateOrderStatus(db, created.ID, "delivered")
	require.NoError(t, err)

	// Moving a delivered order back to pending is accepted.
	order, err := UpdateOrderStatus(db, created.ID, "pending")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, order.Status)
}

func TestUpdateOrderStatus_Invalid(t *testing.T) {
	db := newTestDB(t)
	created, err := CreateOrder(db, ownerID, checkoutFixture())
	require.NoError(t, err)

	_, err = UpdateOrderStatus(db, created.ID, "teleported")
	assert.Equal(t, 400, apperr.From(err).Status)

	var persisted models.Order
	require.NoError(t, db.First(&persisted, created.ID).Error)
	assert.Equal(t, models.OrderStatusPending, persisted.Status, "unknown status leaves the order untouched")

	_, err = UpdateOrderStatus(db, 999, "shipped")
	assert.Equal(t, 404, apperr.From(err).Status)
}

func TestMarkOrderPaid(t *testing.T) {
	db := newTestDB(t)
	created, err := CreateOrder(db, ownerID, checkoutFixture())
	require.NoError(t, err)

	order, err := MarkOrderPaid(db, created.ID, ownerID, models.RoleUser)
	require.NoError(t, err)
	assert.True(t, order.IsPaid)
	require.NotNil(t, order.PaidAt)

	var persisted models.Order
	require.NoError(t, db.First(&persisted, created.ID).Error)
	assert.True(t, persisted.IsPaid)
	assert.NotNil(t, persisted.PaidAt)

	_, err = MarkOrderPaid(db, created.ID, strangerID, models.RoleUser)
	assert.Equal(t, 403, apperr.From(err).Status)
}
