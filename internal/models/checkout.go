package models

// ContactForm is read once at checkout submission.
type ContactForm struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Address string `json:"address" validate:"required"`
}

type CheckoutItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CheckoutRequest matches the backend /api/checkout body.
type CheckoutRequest struct {
	CustomerName  string         `json:"customer_name"`
	CustomerEmail string         `json:"customer_email"`
	Address       string         `json:"address"`
	Items         []CheckoutItem `json:"items"`
}

type CheckoutResponse struct {
	OrderID string  `json:"order_id"`
	Total   float64 `json:"total"`
}

// CheckoutResult is the tagged outcome surfaced to the caller: success carries
// the order id and total, failure only a message.
type CheckoutResult struct {
	OK      bool    `json:"ok"`
	OrderID string  `json:"order_id,omitempty"`
	Total   float64 `json:"total,omitempty"`
	Message string  `json:"message,omitempty"`
}
