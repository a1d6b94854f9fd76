package store

import (
	"context"
	"testing"
	"time"

	"github.com/novamart/novamart-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testOrder(userID string) *models.Order {
	return &models.Order{
		UserID: userID,
		Items: []models.OrderItem{
			{ID: 1, Name: "Classic Blazer", Price: "$299.00", Quantity: 1, Image: "x"},
		},
		TotalAmount: 328.90,
		ShippingDetails: models.ShippingDetails{
			Name: "A", Phone: "1", Address: "B",
		},
		PaymentMethod: models.PaymentMethodCOD,
	}
}

func TestMemoryStore_CreateAppliesDefaults(t *testing.T) {
	s := NewMemoryStore()

	saved, err := s.CreateOrder(context.Background(), testOrder("u1"))
	require.NoError(t, err)

	assert.False(t, saved.ID.IsZero())
	assert.Equal(t, models.OrderStatusPending, saved.Status)
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestMemoryStore_CreateValidation(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	missingUser := testOrder("")
	_, err := s.CreateOrder(ctx, missingUser)
	assert.ErrorContains(t, err, "userId")

	missingTotal := testOrder("u1")
	missingTotal.TotalAmount = 0
	_, err = s.CreateOrder(ctx, missingTotal)
	assert.ErrorContains(t, err, "totalAmount")

	badPayment := testOrder("u1")
	badPayment.PaymentMethod = "CHEQUE"
	_, err = s.CreateOrder(ctx, badPayment)
	assert.ErrorContains(t, err, "paymentMethod")

	missingPayment := testOrder("u1")
	missingPayment.PaymentMethod = ""
	_, err = s.CreateOrder(ctx, missingPayment)
	assert.ErrorContains(t, err, "paymentMethod")

	badItem := testOrder("u1")
	badItem.Items[0].Quantity = 0
	_, err = s.CreateOrder(ctx, badItem)
	assert.ErrorContains(t, err, "quantity")
}

func TestMemoryStore_CreateRequiresShippingDetails(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	missingAll := testOrder("u1")
	missingAll.ShippingDetails = models.ShippingDetails{}
	_, err := s.CreateOrder(ctx, missingAll)
	assert.ErrorContains(t, err, "shippingDetails")

	for _, mutate := range []func(*models.Order){
		func(o *models.Order) { o.ShippingDetails.Name = "" },
		func(o *models.Order) { o.ShippingDetails.Phone = "" },
		func(o *models.Order) { o.ShippingDetails.Address = "" },
	} {
		order := testOrder("u1")
		mutate(order)
		_, err := s.CreateOrder(ctx, order)
		assert.ErrorContains(t, err, "shippingDetails")
	}
}

func TestMemoryStore_OrdersByUserNewestFirst(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	older := testOrder("u1")
	older.CreatedAt = time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	newer := testOrder("u1")
	newer.CreatedAt = time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	other := testOrder("u2")

	_, err := s.CreateOrder(ctx, older)
	require.NoError(t, err)
	_, err = s.CreateOrder(ctx, other)
	require.NoError(t, err)
	_, err = s.CreateOrder(ctx, newer)
	require.NoError(t, err)

	orders, err := s.OrdersByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, newer.ID, orders[0].ID)
	assert.Equal(t, older.ID, orders[1].ID)
}

func TestMemoryStore_OrdersByUserTieBreaksByInsertion(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	stamp := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	first := testOrder("u1")
	first.CreatedAt = stamp
	second := testOrder("u1")
	second.CreatedAt = stamp

	_, err := s.CreateOrder(ctx, first)
	require.NoError(t, err)
	_, err = s.CreateOrder(ctx, second)
	require.NoError(t, err)

	orders, err := s.OrdersByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
}

func TestMemoryStore_OrdersByUserUnknownUser(t *testing.T) {
	s := NewMemoryStore()

	orders, err := s.OrdersByUser(context.Background(), "ghost")
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestMemoryStore_ReadsAreIdempotent(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.CreateOrder(ctx, testOrder("u1"))
	require.NoError(t, err)
	_, err = s.CreateOrder(ctx, testOrder("u1"))
	require.NoError(t, err)

	firstRead, err := s.OrdersByUser(ctx, "u1")
	require.NoError(t, err)
	secondRead, err := s.OrdersByUser(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, firstRead, secondRead)
}

func TestMemoryStore_UpdateStatus(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	saved, err := s.CreateOrder(ctx, testOrder("u1"))
	require.NoError(t, err)

	require.NoError(t, s.UpdateStatus(ctx, saved.ID, models.OrderStatusShipped))

	orders, err := s.OrdersByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, orders[0].Status)
}

func TestMemoryStore_UpdateStatusNotFound(t *testing.T) {
	s := NewMemoryStore()

	err := s.UpdateStatus(context.Background(), primitive.NewObjectID(), models.OrderStatusShipped)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestMemoryStore_UpdateStatusRejectsUnknownStatus(t *testing.T) {
	s := NewMemoryStore()

	err := s.UpdateStatus(context.Background(), primitive.NewObjectID(), "lost")
	assert.ErrorContains(t, err, "unknown status")
}

func TestMemoryStore_ReturnedOrderIsDetached(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	saved, err := s.CreateOrder(ctx, testOrder("u1"))
	require.NoError(t, err)

	// Mutating the caller's copy must not leak into the store.
	saved.Items[0].Name = "tampered"

	orders, err := s.OrdersByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Classic Blazer", orders[0].Items[0].Name)
}
