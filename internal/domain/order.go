package domain

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	return s == OrderStatusPending || s == OrderStatusCompleted
}

func (s OrderStatus) String() string {
	return string(s)
}

// Customer holds the checkout form data that is flattened onto the
// order record, matching the stored shape of the original system.
type Customer struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	City          string `json:"city"`
	PaymentMethod string `json:"paymentMethod"`
}

// Order is a persisted purchase. Items is an immutable snapshot taken
// at submission time.
type Order struct {
	ID     string      `json:"id"`
	Date   string      `json:"date"`
	Total  int64       `json:"total"`
	Status OrderStatus `json:"status"`
	Items  []CartItem  `json:"items"`
	Customer
}
