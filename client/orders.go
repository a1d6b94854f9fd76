package client

import (
	"fmt"

	"github.com/novamart/novamart-api/models"
)

// OrderHistory loads the signed-in user's past orders. A failed refresh
// keeps the previously loaded list.
type OrderHistory struct {
	auth     *Auth
	api      *APIClient
	navigate func(path string)
	orders   []models.Order
}

func NewOrderHistory(auth *Auth, api *APIClient, navigate func(path string)) *OrderHistory {
	if navigate == nil {
		navigate = func(string) {}
	}
	return &OrderHistory{auth: auth, api: api, navigate: navigate}
}

func (h *OrderHistory) Load() ([]models.Order, error) {
	user := h.auth.CurrentUser()
	if user == nil {
		h.navigate("/shopping-login")
		return nil, ErrAuthRequired
	}

	orders, err := h.api.OrdersByUser(user.ID)
	if err != nil {
		return h.orders, fmt.Errorf("failed to load orders: %w", err)
	}
	h.orders = orders
	return orders, nil
}

func (h *OrderHistory) Orders() []models.Order {
	return h.orders
}
