package session

import (
	"sync"

	"go-storefront-api/internal/cart"
	"go-storefront-api/internal/flow"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextKey is where the middleware parks the session state in the Gin
// context.
const ContextKey = "storefront_session"

// State is everything one browsing session owns: its cart and its view
// flow. Nothing here outlives the process.
type State struct {
	ID   string
	Cart *cart.Store
	Flow *flow.Machine
}

// Manager hands out per-cookie session state. Single-owner semantics: each
// State belongs to exactly one client.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*State
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*State)}
}

// GetOrCreate returns the state for id, minting a fresh session (and id)
// when the given one is empty or unknown.
func (m *Manager) GetOrCreate(id string) *State {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id != "" {
		if st, ok := m.sessions[id]; ok {
			return st
		}
	}

	st := &State{
		ID:   uuid.NewString(),
		Cart: cart.NewStore(),
		Flow: flow.NewMachine(),
	}
	m.sessions[st.ID] = st
	return st
}

// FromContext pulls the session state the middleware attached. Handlers are
// only registered behind that middleware, so a missing state is a wiring
// bug.
func FromContext(c *gin.Context) *State {
	v, ok := c.Get(ContextKey)
	if !ok {
		return nil
	}
	st, _ := v.(*State)
	return st
}
