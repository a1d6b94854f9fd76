package client

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/novamart/novamart-api/models"
)

// OrderRequest is the checkout payload posted to the orders API.
type OrderRequest struct {
	UserID          string                 `json:"userId"`
	Items           []CartItem             `json:"items"`
	TotalAmount     float64                `json:"totalAmount"`
	ShippingDetails models.ShippingDetails `json:"shippingDetails"`
	PaymentMethod   models.PaymentMethod   `json:"paymentMethod"`
	UpiID           string                 `json:"upiId,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// APIClient talks to the storefront REST API.
type APIClient struct {
	http *resty.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(30 * time.Second).
			SetHeader("Accept", "application/json"),
	}
}

func (c *APIClient) CreateOrder(req OrderRequest) (*models.Order, error) {
	var order models.Order
	var apiErr apiError

	resp, err := c.http.R().
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&order).
		SetError(&apiErr).
		Post("/api/orders")
	if err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}
	if resp.IsError() {
		if apiErr.Message != "" {
			return nil, errors.New(apiErr.Message)
		}
		return nil, fmt.Errorf("failed to place order: status %d", resp.StatusCode())
	}
	return &order, nil
}

func (c *APIClient) OrdersByUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	var apiErr apiError

	resp, err := c.http.R().
		SetResult(&orders).
		SetError(&apiErr).
		Get("/api/orders/" + url.PathEscape(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	if resp.IsError() {
		if apiErr.Message != "" {
			return nil, errors.New(apiErr.Message)
		}
		return nil, fmt.Errorf("failed to fetch orders: status %d", resp.StatusCode())
	}
	return orders, nil
}
