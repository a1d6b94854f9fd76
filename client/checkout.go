package client

import (
	"errors"
	"regexp"
	"strings"

	"github.com/novamart/novamart-api/models"
)

// taxRate is applied to the cart subtotal; shipping is always free.
const taxRate = 0.10

var upiPattern = regexp.MustCompile(`^[A-Za-z0-9.\-_]{2,256}@[A-Za-z]{2,64}$`)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrAuthRequired = errors.New("you must be logged in to place an order")
)

// ValidationError reports the first failing checkout field. No request is
// sent while one is outstanding.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type ShippingForm struct {
	Name    string
	Phone   string
	Address string
}

// Checkout drives order placement: validate the form, snapshot the cart,
// submit, then clear the cart and move to the order history on success.
type Checkout struct {
	cart     *Cart
	auth     *Auth
	api      *APIClient
	navigate func(path string)
}

func NewCheckout(cart *Cart, auth *Auth, api *APIClient, navigate func(path string)) *Checkout {
	if navigate == nil {
		navigate = func(string) {}
	}
	return &Checkout{cart: cart, auth: auth, api: api, navigate: navigate}
}

func (c *Checkout) Subtotal() float64 {
	return c.cart.Total()
}

func (c *Checkout) Tax() float64 {
	return c.Subtotal() * taxRate
}

func (c *Checkout) GrandTotal() float64 {
	return c.Subtotal() + c.Tax()
}

func validateForm(form ShippingForm, paymentMethod models.PaymentMethod, upiID string) *ValidationError {
	if strings.TrimSpace(form.Name) == "" {
		return &ValidationError{Field: "name", Message: "Full Name is required"}
	}
	if strings.TrimSpace(form.Phone) == "" {
		return &ValidationError{Field: "phone", Message: "Phone Number is required"}
	}
	if strings.TrimSpace(form.Address) == "" {
		return &ValidationError{Field: "address", Message: "Address is required"}
	}
	if paymentMethod == models.PaymentMethodUPI {
		if strings.TrimSpace(upiID) == "" {
			return &ValidationError{Field: "upiId", Message: "UPI ID is required"}
		}
		if !upiPattern.MatchString(upiID) {
			return &ValidationError{Field: "upiId", Message: "Invalid UPI ID format"}
		}
	}
	return nil
}

// PlaceOrder runs the full checkout flow. On failure the cart is left
// intact so the user can retry; only a confirmed order clears it.
func (c *Checkout) PlaceOrder(form ShippingForm, paymentMethod models.PaymentMethod, upiID string) (*models.Order, error) {
	if c.cart.ItemCount() == 0 {
		return nil, ErrEmptyCart
	}

	if verr := validateForm(form, paymentMethod, upiID); verr != nil {
		return nil, verr
	}

	user := c.auth.CurrentUser()
	if user == nil {
		c.navigate("/shopping-login")
		return nil, ErrAuthRequired
	}

	req := OrderRequest{
		UserID:      user.ID,
		Items:       c.cart.Items(),
		TotalAmount: c.GrandTotal(),
		ShippingDetails: models.ShippingDetails{
			Name:    form.Name,
			Phone:   form.Phone,
			Address: form.Address,
		},
		PaymentMethod: paymentMethod,
	}
	if paymentMethod == models.PaymentMethodUPI {
		req.UpiID = upiID
	}

	order, err := c.api.CreateOrder(req)
	if err != nil {
		return nil, err
	}

	c.cart.Clear()
	c.navigate("/orders")
	return order, nil
}
