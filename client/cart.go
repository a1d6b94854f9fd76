package client

import (
	"encoding/json"
	"log"
	"strconv"
	"strings"
	"sync"
)

type CartItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

// Cart is the client-side shopping cart. Every mutation persists the full
// item list to the storage adapter, so contents survive restarts.
type Cart struct {
	mu      sync.Mutex
	storage Storage
	items   []CartItem
}

func NewCart(storage Storage) *Cart {
	cart := &Cart{storage: storage}

	raw, ok, err := storage.Load(storageKeyCart)
	if err != nil {
		log.Println("Failed to load cart:", err)
		return cart
	}
	if ok {
		if err := json.Unmarshal(raw, &cart.items); err != nil {
			// Corrupt state is not fatal, start over empty.
			log.Println("Failed to parse saved cart, starting empty:", err)
			cart.items = nil
		}
	}
	return cart
}

// AddItem appends the product with quantity 1, or bumps the quantity when
// the product is already in the cart. The Quantity field of the argument
// is ignored.
func (c *Cart) AddItem(item CartItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity++
			c.save()
			return
		}
	}

	item.Quantity = 1
	c.items = append(c.items, item)
	c.save()
}

func (c *Cart) RemoveItem(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(id)
	c.save()
}

// SetQuantity sets the quantity directly. Zero or negative removes the
// item, so the cart never holds a non-positive quantity.
func (c *Cart) SetQuantity(id, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(id)
		c.save()
		return
	}
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			break
		}
	}
	c.save()
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.save()
}

// Items returns a snapshot copy, independent of later cart mutations.
func (c *Cart) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]CartItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0.0
	for _, item := range c.items {
		total += numericPrice(item.Price) * float64(item.Quantity)
	}
	return total
}

func (c *Cart) removeLocked(id int) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *Cart) save() {
	raw, err := json.Marshal(c.items)
	if err != nil {
		log.Println("Failed to encode cart:", err)
		return
	}
	if err := c.storage.Save(storageKeyCart, raw); err != nil {
		log.Println("Failed to save cart:", err)
	}
}

// numericPrice strips a leading currency symbol and parses the remainder
// as a decimal number. Unparseable prices count as zero.
func numericPrice(price string) float64 {
	trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(price), "$"))
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0
	}
	return value
}
