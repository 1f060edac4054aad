package domain

// CartItem is a product plus the quantity chosen by the shopper.
// Quantity is always positive; an item that would drop to zero is
// removed from the cart instead.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Clone returns a deep copy of the item.
func (i CartItem) Clone() CartItem {
	c := i
	c.Product = i.Product.Clone()
	return c
}

// CloneItems deep-copies a cart item list. Order snapshots rely on this
// so that later cart mutations never reach a saved order.
func CloneItems(items []CartItem) []CartItem {
	if items == nil {
		return nil
	}
	out := make([]CartItem, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}
