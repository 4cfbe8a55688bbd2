package domain

type FetchStatus string

const (
	FetchLoading FetchStatus = "loading"
	FetchReady   FetchStatus = "ready"
	FetchFailed  FetchStatus = "failed"
)

// FetchResult is the tri-state a content view renders from. Data is only
// meaningful when Status is FetchReady and Err only when it is FetchFailed.
type FetchResult[T any] struct {
	Status FetchStatus
	Data   T
	Err    error
}

func (r FetchResult[T]) Loading() bool {
	return r.Status == FetchLoading
}

func (r FetchResult[T]) Ready() bool {
	return r.Status == FetchReady
}

func (r FetchResult[T]) Failed() bool {
	return r.Status == FetchFailed
}

type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

// Notification is a toast shown once to the visitor.
type Notification struct {
	Kind    NotificationKind `json:"kind"`
	Message string           `json:"message"`
}
