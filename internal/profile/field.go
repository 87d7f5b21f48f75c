package profile

import "sync"

// Field is a value that can be read at any time and observed for changes.
// Writes come from the fetch goroutine; reads come from renderers.
type Field[T any] struct {
	mu     sync.RWMutex
	value  T
	subs   map[int]chan T
	nextID int
}

// NewField creates a field holding initial.
func NewField[T any](initial T) *Field[T] {
	return &Field[T]{
		value: initial,
		subs:  make(map[int]chan T),
	}
}

// Get returns the current value.
func (f *Field[T]) Get() T {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.value
}

// Subscribe returns a channel receiving every subsequent value and a func to stop observing.
// A slow subscriber only sees the latest value; intermediate ones are dropped.
func (f *Field[T]) Subscribe() (<-chan T, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++
	ch := make(chan T, 1)
	f.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			delete(f.subs, id)
			close(ch)
		})
	}

	return ch, cancel
}

// set stores v and notifies subscribers without blocking.
func (f *Field[T]) set(v T) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.value = v
	for _, ch := range f.subs {
		select {
		case ch <- v:
		default:
			// Replace the unread value with the latest one
			select {
			case <-ch:
			default:
			}
			ch <- v
		}
	}
}
