package store

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-shop-client/internal/models"
	"golang-shop-client/internal/storage"
)

// memStore is an in-memory storage.Store for tests.
type memStore struct {
	data    map[string][]byte
	failSet bool
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Get(key string, dest interface{}) error {
	raw, ok := m.data[key]
	if !ok {
		return storage.ErrNotFound
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return storage.ErrNotFound
	}
	return nil
}

func (m *memStore) Set(key string, value interface{}) error {
	if m.failSet {
		return errors.New("storage unavailable")
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func (m *memStore) Delete(key string) error {
	delete(m.data, key)
	return nil
}

func product(id int64, name string, price float64) models.Product {
	return models.Product{ID: id, Name: name, Price: price, Currency: "USD"}
}

func TestCartAddMergesByProduct(t *testing.T) {
	cart := NewCart(newMemStore())

	cart.Add(product(1, "Mug", 10), 2)
	cart.Add(product(1, "Mug", 10), 3)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, 5, cart.TotalItems())
	assert.Equal(t, 50.0, cart.TotalAmount())
}

func TestCartAddNonPositiveQuantityIsNoOp(t *testing.T) {
	cart := NewCart(newMemStore())

	cart.Add(product(1, "Mug", 10), 0)
	cart.Add(product(1, "Mug", 10), -2)

	assert.Empty(t, cart.Lines())
	assert.Equal(t, 0, cart.TotalItems())
	assert.Equal(t, 0.0, cart.TotalAmount())
}

func TestCartTotalsMatchLinesAfterMutationSequence(t *testing.T) {
	cart := NewCart(newMemStore())

	cart.Add(product(1, "Mug", 12), 2)
	cart.Add(product(2, "Lamp", 34), 1)
	cart.Add(product(3, "Book", 42), 4)
	cart.SetQuantity(2, 3)
	cart.Remove(3)
	cart.Add(product(1, "Mug", 12), 1)

	wantItems := 0
	wantAmount := 0.0
	for _, line := range cart.Lines() {
		wantItems += line.Quantity
		wantAmount += line.UnitPrice * float64(line.Quantity)
	}
	assert.Equal(t, wantItems, cart.TotalItems())
	assert.InDelta(t, wantAmount, cart.TotalAmount(), 1e-9)
}

func TestCartSetQuantityRemovesAtZeroOrBelow(t *testing.T) {
	cart := NewCart(newMemStore())

	cart.Add(product(1, "Mug", 10), 2)
	cart.SetQuantity(1, 0)
	assert.Empty(t, cart.Lines())

	cart.Add(product(2, "Lamp", 34), 1)
	cart.SetQuantity(2, -3)
	assert.Empty(t, cart.Lines())
}

func TestCartRemoveUnknownProductIsNoOp(t *testing.T) {
	cart := NewCart(newMemStore())

	cart.Add(product(1, "Mug", 10), 1)
	cart.Remove(99)

	assert.Len(t, cart.Lines(), 1)
}

func TestCartClear(t *testing.T) {
	cart := NewCart(newMemStore())

	cart.Add(product(1, "Mug", 10), 2)
	cart.Add(product(2, "Lamp", 34), 1)
	cart.Clear()

	assert.Empty(t, cart.Lines())
	assert.Equal(t, 0, cart.TotalItems())
	assert.Equal(t, 0.0, cart.TotalAmount())
}

func TestCartPreservesInsertionOrder(t *testing.T) {
	cart := NewCart(newMemStore())

	cart.Add(product(3, "Book", 42), 1)
	cart.Add(product(1, "Mug", 10), 1)
	cart.Add(product(2, "Lamp", 34), 1)

	lines := cart.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, int64(3), lines[0].ProductID)
	assert.Equal(t, int64(1), lines[1].ProductID)
	assert.Equal(t, int64(2), lines[2].ProductID)
}

func TestCartSurvivesReload(t *testing.T) {
	mem := newMemStore()

	cart := NewCart(mem)
	cart.Add(product(1, "Mug", 10), 2)
	cart.Add(product(2, "Lamp", 34), 1)
	cart.SetQuantity(2, 4)

	reloaded := NewCart(mem)
	assert.Equal(t, cart.Lines(), reloaded.Lines())
	assert.Equal(t, cart.TotalItems(), reloaded.TotalItems())
	assert.InDelta(t, cart.TotalAmount(), reloaded.TotalAmount(), 1e-9)
}

func TestCartHydrateFromCorruptStorageStartsEmpty(t *testing.T) {
	mem := newMemStore()
	mem.data[storage.KeyCartItems] = []byte("{broken")

	cart := NewCart(mem)
	assert.Empty(t, cart.Lines())
	assert.Equal(t, 0, cart.TotalItems())
}

func TestCartPersistFailureKeepsInMemoryState(t *testing.T) {
	mem := newMemStore()
	mem.failSet = true

	cart := NewCart(mem)
	cart.Add(product(1, "Mug", 10), 2)

	assert.Equal(t, 2, cart.TotalItems())
	assert.Equal(t, 20.0, cart.TotalAmount())
}

func TestCartOrderRequest(t *testing.T) {
	cart := NewCart(newMemStore())
	cart.Add(product(1, "Mug", 10), 2)
	cart.Add(product(2, "Lamp", 34), 1)

	req := cart.OrderRequest()
	require.NoError(t, req.Validate())
	require.Len(t, req.Items, 2)
	assert.Equal(t, models.OrderItemRequest{ProductID: 1, Quantity: 2}, req.Items[0])
	assert.Equal(t, models.OrderItemRequest{ProductID: 2, Quantity: 1}, req.Items[1])
}
