package ticker

import "sync"

// memo holds a value computed at most once. The zero value is unevaluated.
type memo[T any] struct {
	mu    sync.Mutex
	done  bool
	value T
}

// get returns the cached value, running compute on the first call only.
func (m *memo[T]) get(compute func() T) T {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.done {
		m.value = compute()
		m.done = true
	}
	return m.value
}

func (m *memo[T]) evaluated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.done
}
