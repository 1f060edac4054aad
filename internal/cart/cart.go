package cart

import "github.com/idir2023/argan-project/internal/domain"

// Pure transformations over a cart item list. Each returns a new list;
// callers never see a surviving item with quantity <= 0.

// Add increments the quantity of an existing item or appends the
// product with quantity 1.
func Add(items []domain.CartItem, product domain.Product) []domain.CartItem {
	out := make([]domain.CartItem, len(items))
	copy(out, items)

	for i := range out {
		if out[i].ID == product.ID {
			out[i].Quantity++
			return out
		}
	}
	return append(out, domain.CartItem{Product: product.Clone(), Quantity: 1})
}

// UpdateQuantity applies a signed delta to the matching item, clamping
// at zero. An item that reaches zero is removed entirely.
func UpdateQuantity(items []domain.CartItem, id int64, delta int) []domain.CartItem {
	out := make([]domain.CartItem, 0, len(items))
	for _, it := range items {
		if it.ID == id {
			q := it.Quantity + delta
			if q < 0 {
				q = 0
			}
			it.Quantity = q
		}
		if it.Quantity > 0 {
			out = append(out, it)
		}
	}
	return out
}

// Remove drops the matching item unconditionally.
func Remove(items []domain.CartItem, id int64) []domain.CartItem {
	out := make([]domain.CartItem, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

// Total sums price times quantity over all items. It is recomputed on
// demand and never cached.
func Total(items []domain.CartItem) int64 {
	var sum int64
	for _, it := range items {
		sum += it.Price * int64(it.Quantity)
	}
	return sum
}
