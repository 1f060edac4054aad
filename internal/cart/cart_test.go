package cart

import (
	"testing"

	"github.com/idir2023/argan-project/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id int64, price int64) domain.Product {
	return domain.Product{
		ID:     id,
		Name:   "منتج",
		Price:  price,
		Images: []string{"img"},
	}
}

func TestAdd_NewItemStartsAtOne(t *testing.T) {
	items := Add(nil, product(1, 100))

	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestAdd_ExistingItemIncrements(t *testing.T) {
	items := Add(nil, product(1, 100))
	items = Add(items, product(1, 100))

	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestUpdateQuantity_ClampsAtZeroAndRemoves(t *testing.T) {
	items := Add(nil, product(1, 100))
	items = Add(items, product(2, 50))

	items = UpdateQuantity(items, 1, -5)

	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].ID)
}

func TestUpdateQuantity_UnknownIDIsNoOp(t *testing.T) {
	items := Add(nil, product(1, 100))

	updated := UpdateQuantity(items, 42, 3)

	assert.Equal(t, items, updated)
}

func TestRemove(t *testing.T) {
	items := Add(nil, product(1, 100))
	items = Add(items, product(2, 50))

	items = Remove(items, 1)

	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].ID)
}

// Total must always equal the sum of price*quantity over surviving
// items, and no surviving item may have quantity <= 0, for any
// sequence of operations.
func TestTotal_InvariantUnderOperationSequences(t *testing.T) {
	type op struct {
		kind  string
		id    int64
		delta int
	}

	ops := []op{
		{kind: "add", id: 1},
		{kind: "add", id: 2},
		{kind: "add", id: 1},
		{kind: "update", id: 2, delta: 3},
		{kind: "update", id: 1, delta: -1},
		{kind: "update", id: 1, delta: -10},
		{kind: "add", id: 3},
		{kind: "remove", id: 2},
		{kind: "update", id: 3, delta: 2},
	}

	prices := map[int64]int64{1: 100, 2: 50, 3: 75}

	var items []domain.CartItem
	for _, o := range ops {
		switch o.kind {
		case "add":
			items = Add(items, product(o.id, prices[o.id]))
		case "update":
			items = UpdateQuantity(items, o.id, o.delta)
		case "remove":
			items = Remove(items, o.id)
		}

		var expected int64
		for _, it := range items {
			require.Positive(t, it.Quantity, "no item with quantity <= 0 may survive")
			expected += it.Price * int64(it.Quantity)
		}
		assert.Equal(t, expected, Total(items))
	}

	// Final state: item 3 with quantity 3 (1 added + delta 2).
	require.Len(t, items, 1)
	assert.Equal(t, int64(3), items[0].ID)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, int64(225), Total(items))
}

func TestManager_SessionsAreIsolated(t *testing.T) {
	m := NewManager()

	m.Add("a", product(1, 100))
	m.Add("b", product(2, 50))

	require.Len(t, m.Items("a"), 1)
	require.Len(t, m.Items("b"), 1)
	assert.Equal(t, int64(1), m.Items("a")[0].ID)
	assert.Equal(t, int64(2), m.Items("b")[0].ID)

	m.Clear("a")
	assert.Empty(t, m.Items("a"))
	assert.Len(t, m.Items("b"), 1)
}

func TestManager_ItemsReturnsCopy(t *testing.T) {
	m := NewManager()
	m.Add("a", product(1, 100))

	items := m.Items("a")
	items[0].Quantity = 99

	assert.Equal(t, 1, m.Items("a")[0].Quantity)
}
