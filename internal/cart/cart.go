package cart

import (
	"sort"
	"sync"

	"github.com/katana-forge/storefront/internal/errors"
	"github.com/katana-forge/storefront/internal/models"
)

// Cart is the in-memory, session-scoped item store. All money math uses the
// price captured when the item was added; the cart is a snapshot ledger, not
// a live join against the catalog.
//
// Handlers run on concurrent goroutines, so every accessor takes the mutex
// even though a single user's flow is sequential.
type Cart struct {
	mu         sync.Mutex
	entries    map[string]models.CartEntry
	submitting bool
}

func New() *Cart {
	return &Cart{entries: make(map[string]models.CartEntry)}
}

// Add merges quantity into the existing entry for the product, or inserts a
// new one. A non-positive quantity is a contract violation.
func (c *Cart) Add(product models.Product, quantity int) error {
	if quantity <= 0 {
		return errors.InvalidArgumentError("Quantity must be a positive integer")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[product.ID]
	if ok {
		entry.Quantity += quantity
	} else {
		entry = models.CartEntry{Product: product, Quantity: quantity}
	}

	c.entries[product.ID] = entry

	return nil
}

// Remove deletes the entry for the product id. Removing an absent id is a
// no-op, not an error.
func (c *Cart) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, productID)
}

// Items returns a snapshot of the entries sorted by product id, so JSON
// output is deterministic.
func (c *Cart) Items() []models.CartEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]models.CartEntry, 0, len(c.entries))
	for _, entry := range c.entries {
		items = append(items, entry)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Product.ID < items[j].Product.ID
	})

	return items
}

// Count is the sum of quantities across entries. Zero for an empty cart.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var count int
	for _, entry := range c.entries {
		count += entry.Quantity
	}

	return count
}

// Subtotal sums price * quantity over all entries, using add-time prices.
func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var subtotal float64
	for _, entry := range c.entries {
		subtotal += entry.Product.Price * float64(entry.Quantity)
	}

	return subtotal
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]models.CartEntry)
}

func (c *Cart) View() models.CartView {
	return models.CartView{
		Items:    c.Items(),
		Count:    c.Count(),
		Subtotal: c.Subtotal(),
	}
}

// BeginCheckout marks the cart as having a submission in flight. It returns
// false when one is already pending, so at most one checkout runs per session.
func (c *Cart) BeginCheckout() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.submitting {
		return false
	}

	c.submitting = true

	return true
}

func (c *Cart) EndCheckout() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.submitting = false
}
