package cart

import "sync"

// Store holds one session's selections as item id -> quantity. A key exists
// only while its quantity is >= 1; reaching zero removes the key instead of
// storing it. The store is owned by a single session but guarded anyway,
// since HTTP handlers run on concurrent goroutines.
type Store struct {
	mu    sync.Mutex
	items map[int64]int32
}

func NewStore() *Store {
	return &Store{items: make(map[int64]int32)}
}

// Add increments the quantity for id by one, inserting at 1 when absent.
// There is no upper bound and no error condition.
func (s *Store) Add(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[id]++
}

// Remove decrements the quantity for id by one and deletes the key when it
// would reach zero. Removing an absent id is a no-op.
func (s *Store) Remove(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	qty, ok := s.items[id]
	if !ok {
		return
	}
	if qty <= 1 {
		delete(s.items, id)
		return
	}
	s.items[id] = qty - 1
}

// Clear resets the cart to empty. Called after a successful order.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[int64]int32)
}

// Quantity returns the stored quantity for id, or 0 when absent.
func (s *Store) Quantity(id int64) int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[id]
}

// Items returns a defensive copy of the selections.
func (s *Store) Items() map[int64]int32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[int64]int32, len(s.items))
	for id, qty := range s.items {
		out[id] = qty
	}
	return out
}

// Count returns the total number of units across all selections.
func (s *Store) Count() int32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int32
	for _, qty := range s.items {
		total += qty
	}
	return total
}
