package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/novamart/novamart-api/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is the ephemeral development fallback. Orders live for the
// process lifetime only; there is no reconciliation with the durable
// store if it becomes reachable later.
type MemoryStore struct {
	mu     sync.RWMutex
	orders []models.Order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) CreateOrder(_ context.Context, order *models.Order) (*models.Order, error) {
	if err := prepareOrder(order); err != nil {
		return nil, err
	}
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, cloneOrder(*order))
	return order, nil
}

func (s *MemoryStore) OrdersByUser(_ context.Context, userID string) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]models.Order, 0)
	// Walk backwards so that within one timestamp the most recently
	// inserted order still sorts first.
	for i := len(s.orders) - 1; i >= 0; i-- {
		if s.orders[i].UserID == userID {
			matches = append(matches, cloneOrder(s.orders[i]))
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})
	return matches, nil
}

func (s *MemoryStore) UpdateStatus(_ context.Context, id primitive.ObjectID, status models.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("order validation: unknown status %q", status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			return nil
		}
	}
	return ErrOrderNotFound
}

func (s *MemoryStore) Close(context.Context) error {
	return nil
}

func cloneOrder(order models.Order) models.Order {
	items := make([]models.OrderItem, len(order.Items))
	copy(items, order.Items)
	order.Items = items
	return order
}
