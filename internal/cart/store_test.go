package cart

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(WithLogger(slog.New(slog.DiscardHandler)))
}

func TestStore_StartsEmpty(t *testing.T) {
	s := newTestStore(t)

	assert.True(t, s.Cart().IsEmpty())
	assert.Equal(t, 0, s.Total())
	assert.Equal(t, 0, s.ItemCount())
}

func TestStore_FullSession(t *testing.T) {
	s := newTestStore(t)
	kurta := makeProduct("w001", "Kurta Set", 2499)
	saree := makeProduct("w002", "Saree", 4999)

	s.AddToCart(kurta, 1, "M", "Royal Blue")
	s.AddToCart(kurta, 1, "M", "Royal Blue")
	s.AddToCart(saree, 2, "One Size", "")
	requireConsistent(t, s.Cart())

	require.Len(t, s.Cart().Items, 2)
	assert.Equal(t, 2*2499+2*4999, s.Total())
	assert.Equal(t, 4, s.ItemCount())

	s.UpdateQuantity(saree.ID, 1)
	requireConsistent(t, s.Cart())
	assert.Equal(t, 2*2499+4999, s.Total())

	s.RemoveFromCart(kurta.ID)
	requireConsistent(t, s.Cart())
	require.Len(t, s.Cart().Items, 1)
	assert.Equal(t, "w002", s.Cart().Items[0].Product.ID)

	s.ClearCart()
	requireConsistent(t, s.Cart())
	assert.True(t, s.Cart().IsEmpty())
}

func TestStore_SnapshotIsIsolated(t *testing.T) {
	s := newTestStore(t)
	s.AddToCart(makeProduct("w001", "Kurta Set", 2499), 1, "M", "")

	snapshot := s.Cart()
	snapshot.Items[0].Quantity = 99

	assert.Equal(t, 1, s.Cart().Items[0].Quantity, "snapshot mutation must not reach the store")
	assert.Equal(t, 2499, s.Total())
}

func TestStore_IndependentInstances(t *testing.T) {
	a := newTestStore(t)
	b := newTestStore(t)

	a.AddToCart(makeProduct("w001", "Kurta Set", 2499), 1, "", "")

	assert.Equal(t, 1, a.ItemCount())
	assert.Equal(t, 0, b.ItemCount(), "stores must not share state")
}

func TestStore_DispatchReturnsResultingState(t *testing.T) {
	s := newTestStore(t)

	got := s.Dispatch(Add(makeProduct("w001", "Kurta Set", 2499), 2, "", ""))

	assert.Equal(t, 4998, got.Total)
	assert.Equal(t, 2, got.ItemCount)
	assert.Equal(t, got.Total, s.Total())
}
