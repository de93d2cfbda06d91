package cart

import "errors"

var (
	// ErrInvalidItem indicates an item with a missing id, non-positive
	// quantity or negative price was passed to Add.
	ErrInvalidItem = errors.New("cart.invalid_item")
)
