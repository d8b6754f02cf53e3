package cart_test

import (
	"math/rand"
	"testing"

	"go-storefront-api/internal/cart"

	"github.com/stretchr/testify/assert"
)

func TestCartStore_Add(t *testing.T) {
	t.Run("insert_then_increment", func(t *testing.T) {
		s := cart.NewStore()

		s.Add(1)
		assert.Equal(t, int32(1), s.Quantity(1))

		s.Add(1)
		s.Add(1)
		assert.Equal(t, int32(3), s.Quantity(1))
	})

	t.Run("independent_items", func(t *testing.T) {
		s := cart.NewStore()

		s.Add(1)
		s.Add(2)
		s.Add(2)

		assert.Equal(t, int32(1), s.Quantity(1))
		assert.Equal(t, int32(2), s.Quantity(2))
		assert.Equal(t, int32(3), s.Count())
	})
}

func TestCartStore_Remove(t *testing.T) {
	t.Run("decrement", func(t *testing.T) {
		s := cart.NewStore()
		s.Add(1)
		s.Add(1)

		s.Remove(1)
		assert.Equal(t, int32(1), s.Quantity(1))
	})

	t.Run("last_unit_deletes_key", func(t *testing.T) {
		s := cart.NewStore()
		s.Add(1)

		s.Remove(1)

		assert.Equal(t, int32(0), s.Quantity(1))
		_, exists := s.Items()[1]
		assert.False(t, exists, "a zero quantity must never be stored")
	})

	t.Run("absent_id_is_noop", func(t *testing.T) {
		s := cart.NewStore()
		s.Add(1)

		s.Remove(99)

		assert.Equal(t, map[int64]int32{1: 1}, s.Items())
	})
}

func TestCartStore_Clear(t *testing.T) {
	s := cart.NewStore()
	s.Add(1)
	s.Add(2)

	s.Clear()

	assert.Empty(t, s.Items())
	assert.Equal(t, int32(0), s.Count())
	assert.Equal(t, int32(0), s.Quantity(1))
}

func TestCartStore_ItemsReturnsCopy(t *testing.T) {
	s := cart.NewStore()
	s.Add(1)

	items := s.Items()
	items[1] = 100
	items[2] = 5

	assert.Equal(t, int32(1), s.Quantity(1))
	assert.Equal(t, int32(0), s.Quantity(2))
}

// Quantities must stay strictly positive under any add/remove sequence.
func TestCartStore_QuantitiesNeverNonPositive(t *testing.T) {
	s := cart.NewStore()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 5000; i++ {
		id := int64(rng.Intn(5))
		if rng.Intn(2) == 0 {
			s.Add(id)
		} else {
			s.Remove(id)
		}

		for storedID, qty := range s.Items() {
			assert.Greaterf(t, qty, int32(0), "item %d stored with quantity %d", storedID, qty)
		}
	}
}
