package cart

import (
	"context"
	"sync"
)

// Manager binds one cart session to a Store key. Every mutation runs the
// reducer and synchronously saves the new state, so a restarted session
// reloads the pending cart. Snapshots arriving through Watch replace the
// local state wholesale, which converges concurrent sessions on the same key.
type Manager struct {
	mu    sync.Mutex
	key   string
	store Store
	state State
}

func NewManager(ctx context.Context, key string, store Store) (*Manager, error) {
	m := &Manager{key: key, store: store, state: Empty()}

	state, ok, err := store.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	if ok {
		m.state = state
	}

	ch, err := store.Watch(ctx, key)
	if err != nil {
		return nil, err
	}
	go m.resync(ch)

	return m, nil
}

func (m *Manager) resync(ch <-chan State) {
	for state := range ch {
		m.mu.Lock()
		m.state = state
		m.mu.Unlock()
	}
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Manager) AddItem(ctx context.Context, item Item) (State, error) {
	return m.apply(ctx, func(s State) State { return Add(s, item) })
}

func (m *Manager) RemoveItem(ctx context.Context, itemID uint) (State, error) {
	return m.apply(ctx, func(s State) State { return Remove(s, itemID) })
}

func (m *Manager) SetQuantity(ctx context.Context, itemID uint, quantity int) (State, error) {
	return m.apply(ctx, func(s State) State { return SetQuantity(s, itemID, quantity) })
}

func (m *Manager) Clear(ctx context.Context) (State, error) {
	return m.apply(ctx, Clear)
}

func (m *Manager) apply(ctx context.Context, transition func(State) State) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := transition(m.state)
	if err := m.store.Save(ctx, m.key, next); err != nil {
		return m.state, err
	}
	m.state = next
	return next, nil
}
