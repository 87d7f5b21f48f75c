package domain

// FetchStatus represents the phase of a profile fetch.
type FetchStatus string

const (
	FetchLoading FetchStatus = "loading"
	FetchLoaded  FetchStatus = "loaded"
	FetchFailed  FetchStatus = "failed"
)

// FetchState is the tri-state result of a profile fetch: Loading, Loaded(Profile) or Failed.
// Profile is only set when Status is FetchLoaded, and is carried by value.
type FetchState struct {
	Status  FetchStatus
	Profile Profile
}

// Loading returns the initial fetch state.
func Loading() FetchState {
	return FetchState{Status: FetchLoading}
}

// Loaded returns a state holding the fetched profile.
func Loaded(p Profile) FetchState {
	return FetchState{Status: FetchLoaded, Profile: p}
}

// Failed returns the state for a failed fetch.
func Failed() FetchState {
	return FetchState{Status: FetchFailed}
}

// IsLoaded reports whether the state carries a profile.
func (s FetchState) IsLoaded() bool {
	return s.Status == FetchLoaded
}
