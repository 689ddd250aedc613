package game

import "sync"

// PreStateChange is published right before a game changes state.
type PreStateChange struct {
	Game     Game
	From, To GameState
}

// PostStateChange is published right after a game changed state.
type PostStateChange struct {
	Game     Game
	From, To GameState
}

// Bus delivers events to subscribers synchronously, in the order they subscribed. The zero value is ready to use.
type Bus struct {
	mu   sync.RWMutex
	subs []func(event any)
}

// Subscribe adds fn to the subscribers. It receives every event published afterwards.
func (b *Bus) Subscribe(fn func(event any)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, fn)
}

// Publish calls every subscriber with the event and returns once all of them returned.
func (b *Bus) Publish(event any) {
	b.mu.RLock()
	subs := append([]func(any){}, b.subs...)
	b.mu.RUnlock()
	for _, fn := range subs {
		fn(event)
	}
}
