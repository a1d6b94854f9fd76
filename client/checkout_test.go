package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/novamart/novamart-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type orderServer struct {
	*httptest.Server
	requests int
	lastBody OrderRequest
	fail     bool
}

func newOrderServer(t *testing.T) *orderServer {
	t.Helper()
	srv := &orderServer{}
	srv.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/orders" {
			http.NotFound(w, r)
			return
		}
		srv.requests++
		if err := json.NewDecoder(r.Body).Decode(&srv.lastBody); err != nil {
			t.Errorf("decode order request: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		if srv.fail {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{
				"message": "Error creating order",
				"error":   "store unavailable",
			})
			return
		}

		items := make([]models.OrderItem, len(srv.lastBody.Items))
		for i, it := range srv.lastBody.Items {
			items[i] = models.OrderItem{ID: it.ID, Name: it.Name, Price: it.Price, Quantity: it.Quantity, Image: it.Image}
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Order{
			ID:          primitive.NewObjectID(),
			UserID:      srv.lastBody.UserID,
			Items:       items,
			TotalAmount: srv.lastBody.TotalAmount,
			Status:      models.OrderStatusPending,
			CreatedAt:   time.Now().UTC(),
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func signedInAuth(t *testing.T) *Auth {
	t.Helper()
	auth := NewAuth(NewMemoryStorage())
	_, err := auth.Login("demo@example.com", "DemoPass@2024Secure")
	require.NoError(t, err)
	return auth
}

func loadedCart() *Cart {
	cart := NewCart(NewMemoryStorage())
	cart.AddItem(CartItem{ID: 1, Name: "Classic Blazer", Price: "$299.00", Image: "x"})
	return cart
}

func validForm() ShippingForm {
	return ShippingForm{Name: "A", Phone: "1", Address: "B"}
}

func TestCheckout_Totals(t *testing.T) {
	cart := NewCart(NewMemoryStorage())
	cart.AddItem(CartItem{ID: 1, Name: "A", Price: "$100.00", Image: "x"})
	checkout := NewCheckout(cart, signedInAuth(t), NewAPIClient("http://unused"), nil)

	assert.InDelta(t, 100.0, checkout.Subtotal(), 0.0001)
	assert.InDelta(t, 10.0, checkout.Tax(), 0.0001)
	assert.InDelta(t, 110.0, checkout.GrandTotal(), 0.0001)
}

func TestCheckout_RejectsMissingAddressWithoutRequest(t *testing.T) {
	srv := newOrderServer(t)
	checkout := NewCheckout(loadedCart(), signedInAuth(t), NewAPIClient(srv.URL), nil)

	form := validForm()
	form.Address = ""
	_, err := checkout.PlaceOrder(form, models.PaymentMethodCOD, "")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "address", verr.Field)
	assert.Equal(t, "Address is required", verr.Message)
	assert.Zero(t, srv.requests)
}

func TestCheckout_ValidatesShippingFieldsInOrder(t *testing.T) {
	srv := newOrderServer(t)
	checkout := NewCheckout(loadedCart(), signedInAuth(t), NewAPIClient(srv.URL), nil)

	_, err := checkout.PlaceOrder(ShippingForm{Name: "  ", Phone: "1", Address: "B"}, models.PaymentMethodCOD, "")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Full Name is required", verr.Message)

	_, err = checkout.PlaceOrder(ShippingForm{Name: "A", Phone: "", Address: "B"}, models.PaymentMethodCOD, "")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Phone Number is required", verr.Message)

	assert.Zero(t, srv.requests)
}

func TestCheckout_UPIValidation(t *testing.T) {
	srv := newOrderServer(t)

	cases := []struct {
		upiID string
		valid bool
	}{
		{"bad id", false},
		{"", false},
		{"user@bank", true},
		{"user.name-1@bank", true},
		{"user@bank1", false},
		{"x@bank", false},
	}
	for _, tc := range cases {
		checkout := NewCheckout(loadedCart(), signedInAuth(t), NewAPIClient(srv.URL), nil)
		_, err := checkout.PlaceOrder(validForm(), models.PaymentMethodUPI, tc.upiID)
		if tc.valid {
			assert.NoError(t, err, "upiId %q", tc.upiID)
		} else {
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr, "upiId %q", tc.upiID)
		}
	}
}

func TestCheckout_UPIIDOmittedForCOD(t *testing.T) {
	srv := newOrderServer(t)
	checkout := NewCheckout(loadedCart(), signedInAuth(t), NewAPIClient(srv.URL), nil)

	_, err := checkout.PlaceOrder(validForm(), models.PaymentMethodCOD, "stale@bank")
	require.NoError(t, err)
	assert.Empty(t, srv.lastBody.UpiID)
	assert.Equal(t, models.PaymentMethodCOD, srv.lastBody.PaymentMethod)
}

func TestCheckout_EmptyCartShortCircuits(t *testing.T) {
	srv := newOrderServer(t)
	checkout := NewCheckout(NewCart(NewMemoryStorage()), signedInAuth(t), NewAPIClient(srv.URL), nil)

	_, err := checkout.PlaceOrder(validForm(), models.PaymentMethodCOD, "")

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Zero(t, srv.requests)
}

func TestCheckout_RequiresSignInAndRedirects(t *testing.T) {
	srv := newOrderServer(t)
	var navigatedTo string
	auth := NewAuth(NewMemoryStorage()) // nobody signed in
	checkout := NewCheckout(loadedCart(), auth, NewAPIClient(srv.URL), func(path string) {
		navigatedTo = path
	})

	_, err := checkout.PlaceOrder(validForm(), models.PaymentMethodCOD, "")

	assert.ErrorIs(t, err, ErrAuthRequired)
	assert.Equal(t, "/shopping-login", navigatedTo)
	assert.Zero(t, srv.requests)
}

func TestCheckout_SuccessClearsCartAndNavigates(t *testing.T) {
	srv := newOrderServer(t)
	cart := loadedCart()
	var navigatedTo string
	checkout := NewCheckout(cart, signedInAuth(t), NewAPIClient(srv.URL), func(path string) {
		navigatedTo = path
	})

	order, err := checkout.PlaceOrder(validForm(), models.PaymentMethodCOD, "")
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "demo-user", srv.lastBody.UserID)
	assert.InDelta(t, 328.90, srv.lastBody.TotalAmount, 0.0001)
	assert.Zero(t, cart.ItemCount())
	assert.Equal(t, "/orders", navigatedTo)
}

func TestCheckout_FailureKeepsCart(t *testing.T) {
	srv := newOrderServer(t)
	srv.fail = true
	cart := loadedCart()
	var navigatedTo string
	checkout := NewCheckout(cart, signedInAuth(t), NewAPIClient(srv.URL), func(path string) {
		navigatedTo = path
	})

	_, err := checkout.PlaceOrder(validForm(), models.PaymentMethodCOD, "")

	require.Error(t, err)
	assert.Equal(t, "Error creating order", err.Error())
	assert.Equal(t, 1, cart.ItemCount())
	assert.Empty(t, navigatedTo)
}

func TestOrderHistory_RequiresSignIn(t *testing.T) {
	var navigatedTo string
	history := NewOrderHistory(NewAuth(NewMemoryStorage()), NewAPIClient("http://unused"), func(path string) {
		navigatedTo = path
	})

	_, err := history.Load()

	assert.ErrorIs(t, err, ErrAuthRequired)
	assert.Equal(t, "/shopping-login", navigatedTo)
}

func TestOrderHistory_KeepsPreviousListOnFailure(t *testing.T) {
	failing := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if failing {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"message": "Error fetching orders"})
			return
		}
		json.NewEncoder(w).Encode([]models.Order{{UserID: "demo-user", Status: models.OrderStatusPending}})
	}))
	defer srv.Close()

	history := NewOrderHistory(signedInAuth(t), NewAPIClient(srv.URL), nil)

	orders, err := history.Load()
	require.NoError(t, err)
	require.Len(t, orders, 1)

	failing = true
	kept, err := history.Load()
	require.Error(t, err)
	assert.Len(t, kept, 1)
	assert.Len(t, history.Orders(), 1)
}
