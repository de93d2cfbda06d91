package cart

// Item is one cart line, keyed by product identity. JSON field names match
// the persisted mobile-client format.
type Item struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
	Quantity int     `json:"quantity"`
	Color    string  `json:"color,omitempty"`
}

// Subtotal returns price times quantity for this line.
func (i Item) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// valid reports whether the line can legally enter the cart.
func (i Item) valid() bool {
	return i.ID > 0 && i.Quantity >= 1 && i.Price >= 0
}
