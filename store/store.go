package store

import (
	"context"
	"errors"
	"time"

	"github.com/novamart/novamart-api/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderStore is the order persistence contract. Both the Mongo-backed
// store and the ephemeral in-memory fallback implement it, so callers
// never branch on which one they got.
type OrderStore interface {
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	OrdersByUser(ctx context.Context, userID string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) error
	Close(ctx context.Context) error
}

// prepareOrder applies schema defaults before validation, the way the
// document schema itself would on insert.
func prepareOrder(order *models.Order) error {
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}
	return order.Validate()
}
