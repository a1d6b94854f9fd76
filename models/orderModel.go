package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodCOD PaymentMethod = "COD"
	PaymentMethodUPI PaymentMethod = "UPI"
)

type OrderItem struct {
	ID       int    `json:"id" bson:"id"`
	Name     string `json:"name" bson:"name"`
	Price    string `json:"price" bson:"price"`
	Quantity int    `json:"quantity" bson:"quantity"`
	Image    string `json:"image" bson:"image"`
}

type ShippingDetails struct {
	Name    string `json:"name" bson:"name"`
	Phone   string `json:"phone" bson:"phone"`
	Address string `json:"address" bson:"address"`
}

// Order is the persisted checkout record. Immutable after creation except
// for Status, which fulfillment updates through the admin endpoint.
type Order struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserID          string             `json:"userId" bson:"user_id"`
	Items           []OrderItem        `json:"items" bson:"items"`
	TotalAmount     float64            `json:"totalAmount" bson:"total_amount"`
	ShippingDetails ShippingDetails    `json:"shippingDetails" bson:"shipping_details"`
	PaymentMethod   PaymentMethod      `json:"paymentMethod,omitempty" bson:"payment_method,omitempty"`
	UpiID           string             `json:"upiId,omitempty" bson:"upi_id,omitempty"`
	Status          OrderStatus        `json:"status" bson:"status"`
	CreatedAt       time.Time          `json:"createdAt" bson:"created_at"`
}

// Validate enforces the document-schema constraints. Cross-field business
// rules (non-empty item list, total consistency) are the submitting
// client's responsibility, not the store's.
func (o *Order) Validate() error {
	if o.UserID == "" {
		return fmt.Errorf("order validation: userId is required")
	}
	if o.TotalAmount == 0 {
		return fmt.Errorf("order validation: totalAmount is required")
	}
	for i, item := range o.Items {
		if item.Name == "" || item.Price == "" || item.Image == "" {
			return fmt.Errorf("order validation: item %d is missing required fields", i)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("order validation: item %d has non-positive quantity", i)
		}
	}
	if o.ShippingDetails.Name == "" || o.ShippingDetails.Phone == "" || o.ShippingDetails.Address == "" {
		return fmt.Errorf("order validation: shippingDetails name, phone and address are required")
	}
	if o.PaymentMethod != PaymentMethodCOD && o.PaymentMethod != PaymentMethodUPI {
		return fmt.Errorf("order validation: paymentMethod must be %q or %q", PaymentMethodCOD, PaymentMethodUPI)
	}
	if !o.Status.Valid() {
		return fmt.Errorf("order validation: unknown status %q", o.Status)
	}
	return nil
}
