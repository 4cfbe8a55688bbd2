package services

import (
	"context"
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/srgjo27/epic_events/internal/core/domain"
)

var tracer = otel.Tracer("github.com/srgjo27/epic_events/internal/core/services")

type LoadFunc[T any] func(ctx context.Context) (T, error)

// Fetcher runs one read per cycle against the content store and holds the
// result as a FetchResult. A cycle starts in loading and resolves exactly once
// to ready or failed. Results from a superseded cycle, or arriving after
// Unmount, are dropped.
type Fetcher[T any] struct {
	name string
	load LoadFunc[T]

	mu        sync.Mutex
	gen       uint64
	result    domain.FetchResult[T]
	done      chan struct{}
	unmounted bool
}

func NewFetcher[T any](name string, load LoadFunc[T]) *Fetcher[T] {
	done := make(chan struct{})
	close(done)

	return &Fetcher[T]{
		name:   name,
		load:   load,
		result: domain.FetchResult[T]{Status: domain.FetchLoading},
		done:   done,
	}
}

func (f *Fetcher[T]) Name() string {
	return f.name
}

// Start begins a new cycle. The previous cycle, if still in flight, becomes
// stale.
func (f *Fetcher[T]) Start(ctx context.Context) {
	f.mu.Lock()
	if f.unmounted {
		f.mu.Unlock()
		return
	}

	f.gen++
	gen := f.gen
	done := make(chan struct{})
	f.done = done
	f.result = domain.FetchResult[T]{Status: domain.FetchLoading}
	f.mu.Unlock()

	go func() {
		defer close(done)

		ctx, span := tracer.Start(ctx, "fetch "+f.name)
		data, err := f.load(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.SetAttributes(attribute.Int64("fetch.generation", int64(gen)))
		span.End()

		f.apply(gen, data, err)
	}()
}

func (f *Fetcher[T]) apply(gen uint64, data T, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.unmounted || gen != f.gen {
		return
	}

	if err != nil {
		log.Printf("Error fetching %s: %v", f.name, err)
		f.result = domain.FetchResult[T]{Status: domain.FetchFailed, Err: err}
		return
	}

	f.result = domain.FetchResult[T]{Status: domain.FetchReady, Data: data}
}

// Done is closed when the current cycle has resolved.
func (f *Fetcher[T]) Done() <-chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.done
}

func (f *Fetcher[T]) Result() domain.FetchResult[T] {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.result
}

func (f *Fetcher[T]) Status() domain.FetchStatus {
	return f.Result().Status
}

// Wait blocks until the current cycle resolves or ctx ends, then returns the
// result as it stands.
func (f *Fetcher[T]) Wait(ctx context.Context) domain.FetchResult[T] {
	select {
	case <-f.Done():
	case <-ctx.Done():
	}

	return f.Result()
}

func (f *Fetcher[T]) Unmount() {
	f.mu.Lock()
	f.unmounted = true
	f.mu.Unlock()
}

// Mountable is the part of a Fetcher a composite view needs.
type Mountable interface {
	Name() string
	Start(ctx context.Context)
	Done() <-chan struct{}
	Status() domain.FetchStatus
	Unmount()
}

// View groups fetchers that render together. Its fetches are issued
// concurrently and it counts as loaded once none of them is loading.
type View struct {
	members []Mountable
}

func NewView(members ...Mountable) *View {
	return &View{members: members}
}

func (v *View) Mount(ctx context.Context) {
	for _, m := range v.members {
		m.Start(ctx)
	}
}

func (v *View) Loading() bool {
	for _, m := range v.members {
		if m.Status() == domain.FetchLoading {
			return true
		}
	}

	return false
}

// Wait returns true once every member has resolved, or false if ctx ended
// first.
func (v *View) Wait(ctx context.Context) bool {
	for _, m := range v.members {
		select {
		case <-m.Done():
		case <-ctx.Done():
			return false
		}
	}

	return true
}

func (v *View) Unmount() {
	for _, m := range v.members {
		m.Unmount()
	}
}
