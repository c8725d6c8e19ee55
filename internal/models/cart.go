package models

// CartItem associates a product with a selected size and a positive
// quantity. Cart entries are keyed by (product ID, size): adding the
// same pair again increments quantity instead of duplicating the line.
type CartItem struct {
	Product  Product `json:"product"`
	Size     string  `json:"size"`
	Quantity int     `json:"quantity"`
}
