package profile

import (
	"context"
	"sync"
)

// Factory creates a fresh, unstarted view-model.
type Factory func() *ViewModel

// Screen ties a view-model to a cancellable lifetime.
type Screen struct {
	vm     *ViewModel
	cancel context.CancelFunc
}

// OpenScreen creates a view-model from factory and starts it under a child of parent.
func OpenScreen(parent context.Context, factory Factory) *Screen {
	ctx, cancel := context.WithCancel(parent)
	vm := factory()
	vm.Start(ctx)
	return &Screen{vm: vm, cancel: cancel}
}

// ViewModel returns the screen's view-model.
func (s *Screen) ViewModel() *ViewModel {
	return s.vm
}

// Close cancels any request still in flight.
func (s *Screen) Close() {
	s.cancel()
}

// Host keeps the single current profile screen, opening it lazily.
// Reload discards the current screen and opens a new one.
type Host struct {
	parent  context.Context
	factory Factory

	mu     sync.Mutex
	screen *Screen
}

// NewHost creates a host whose screens live at most as long as parent.
func NewHost(parent context.Context, factory Factory) *Host {
	return &Host{parent: parent, factory: factory}
}

// Current returns the current view-model, opening a screen on first use.
func (h *Host) Current() *ViewModel {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.screen == nil {
		h.screen = OpenScreen(h.parent, h.factory)
	}
	return h.screen.ViewModel()
}

// Reload closes the current screen and returns the view-model of a new one.
func (h *Host) Reload() *ViewModel {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.screen != nil {
		h.screen.Close()
	}
	h.screen = OpenScreen(h.parent, h.factory)
	return h.screen.ViewModel()
}

// Close closes the current screen, if any.
func (h *Host) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.screen != nil {
		h.screen.Close()
		h.screen = nil
	}
}
