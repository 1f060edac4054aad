package domain

// Product is a catalog record. ID 0 marks a record that has not been
// saved yet; the catalog repository assigns a real id on insert.
type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Category    string   `json:"category"`
	Rating      float64  `json:"rating"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
}

// Clone returns a deep copy, including the Images slice.
func (p Product) Clone() Product {
	c := p
	if p.Images != nil {
		c.Images = make([]string, len(p.Images))
		copy(c.Images, p.Images)
	}
	return c
}
