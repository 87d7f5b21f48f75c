package profile

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/vilaca/gloom/internal/api"
	"github.com/vilaca/gloom/internal/domain"
)

// Logger interface for logging operations.
type Logger interface {
	Printf(format string, v ...interface{})
}

var errNoViewer = errors.New("viewer query returned no profile")

// ViewModel fetches the viewer profile and its readme, exposing the results as observable fields.
// The readme request is only issued after the profile query succeeds.
type ViewModel struct {
	viewer api.ViewerClient
	readme api.ReadmeClient
	logger Logger

	Profile   *Field[*domain.Profile]
	ReadMe    *Field[string]
	HasErrors *Field[bool]

	// IsLoading starts true and is never cleared. Branch on State instead.
	IsLoading *Field[bool]

	fetchID string
	once    sync.Once
	done    chan struct{}
}

// NewViewModel creates a view-model in its initial state. Nothing is fetched until Start.
func NewViewModel(viewer api.ViewerClient, readme api.ReadmeClient, logger Logger) *ViewModel {
	return &ViewModel{
		viewer:    viewer,
		readme:    readme,
		logger:    logger,
		Profile:   NewField[*domain.Profile](nil),
		ReadMe:    NewField(""),
		HasErrors: NewField(false),
		IsLoading: NewField(true),
		fetchID:   uuid.NewString(),
		done:      make(chan struct{}),
	}
}

// Start launches the fetch sequence bound to ctx. Calls after the first are no-ops.
// Cancelling ctx aborts whichever request is in flight.
func (vm *ViewModel) Start(ctx context.Context) {
	vm.once.Do(func() {
		go vm.fetch(ctx)
	})
}

// Done returns a channel closed once the fetch sequence has finished.
func (vm *ViewModel) Done() <-chan struct{} {
	return vm.done
}

// Wait blocks until the fetch sequence finishes or ctx is done.
func (vm *ViewModel) Wait(ctx context.Context) error {
	select {
	case <-vm.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// FetchID returns the correlation id used in this view-model's log lines.
func (vm *ViewModel) FetchID() string {
	return vm.fetchID
}

// State returns the current fetch state. A loaded profile is returned by value.
func (vm *ViewModel) State() domain.FetchState {
	if p := vm.Profile.Get(); p != nil {
		return domain.Loaded(*p)
	}
	if vm.HasErrors.Get() {
		return domain.Failed()
	}
	return domain.Loading()
}

// Snapshot is a point-in-time copy of all observable fields.
type Snapshot struct {
	State     domain.FetchState
	ReadMe    string
	HasErrors bool
	IsLoading bool
}

// Snapshot returns the current values of all fields.
func (vm *ViewModel) Snapshot() Snapshot {
	return Snapshot{
		State:     vm.State(),
		ReadMe:    vm.ReadMe.Get(),
		HasErrors: vm.HasErrors.Get(),
		IsLoading: vm.IsLoading.Get(),
	}
}

// fetch runs the profile query and, on success, the readme request.
func (vm *ViewModel) fetch(ctx context.Context) {
	defer close(vm.done)

	vm.logger.Printf("[Profile %s] Fetching viewer profile", vm.fetchID)

	user, err := vm.viewer.GetViewer(ctx)
	if err == nil && user == nil {
		err = errNoViewer
	}
	if err != nil {
		vm.logger.Printf("[Profile %s] Failed to fetch viewer: %v", vm.fetchID, err)
		vm.HasErrors.set(true)
		return
	}

	vm.Profile.set(user)
	vm.logger.Printf("[Profile %s] Loaded profile for %s", vm.fetchID, user.Login)

	// The profile readme lives in the repository named after the user
	text, err := vm.readme.GetRepoReadMe(ctx, user.Login, user.Login)
	if err != nil {
		vm.logger.Printf("[Profile %s] Readme unavailable for %s: %v", vm.fetchID, user.Login, err)
		return
	}

	vm.ReadMe.set(text)
}
