package flow

import (
	"net/http"
	"sync"

	"go-storefront-api/internal/pkg/apperror"
)

// State is one of the three storefront views.
type State string

const (
	StateBrowse       State = "BROWSE"
	StateCart         State = "CART"
	StateConfirmation State = "CONFIRMATION"
)

// Legal moves between views. No state is terminal; the cycle repeats.
var transitions = map[State]map[State]struct{}{
	StateBrowse: {
		StateCart: {},
	},
	StateCart: {
		StateBrowse:       {},
		StateConfirmation: {},
	},
	StateConfirmation: {
		StateBrowse: {},
	},
}

// ErrInvalidTransition is returned for any move the table does not allow.
var ErrInvalidTransition = apperror.New(http.StatusConflict, apperror.CodeInvalidTransition, "requested view transition is not allowed")

// Machine sequences the browse -> cart -> confirmation cycle for one
// session. It owns no business logic: it only validates transitions and
// holds the finished order while the confirmation view is showing.
type Machine struct {
	mu    sync.Mutex
	state State
	order any
}

func NewMachine() *Machine {
	return &Machine{state: StateBrowse}
}

// Current reports the state and, while in CONFIRMATION, the held order.
func (m *Machine) Current() (State, any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, m.order
}

// RequestCheckout moves Browse -> Cart.
func (m *Machine) RequestCheckout() error {
	return m.move(StateBrowse, StateCart, nil)
}

// RequestReturn moves Cart -> Browse.
func (m *Machine) RequestReturn() error {
	return m.move(StateCart, StateBrowse, nil)
}

// CompleteOrder moves Cart -> Confirmation, retaining the order for display.
func (m *Machine) CompleteOrder(order any) error {
	return m.move(StateCart, StateConfirmation, order)
}

// StartNewOrder moves Confirmation -> Browse, discarding the held order.
func (m *Machine) StartNewOrder() error {
	return m.move(StateConfirmation, StateBrowse, nil)
}

func (m *Machine) move(from, next State, order any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != from {
		return ErrInvalidTransition
	}
	if _, ok := transitions[from][next]; !ok {
		return ErrInvalidTransition
	}

	m.state = next
	// The order is held only while confirmation is showing.
	if next == StateConfirmation {
		m.order = order
	} else {
		m.order = nil
	}
	return nil
}
