package models

// CartEntry is a product snapshot plus quantity. The price is the one captured
// at add time, so later catalog changes do not reprice the cart.
type CartEntry struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"   validate:"required,min=1"`
}

// CartView is the JSON shape handed to the presentation layer.
type CartView struct {
	Items    []CartEntry `json:"items"`
	Count    int         `json:"count"`
	Subtotal float64     `json:"subtotal"`
}
