package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/epic_events/internal/core/domain"
	"github.com/srgjo27/epic_events/internal/core/services"
)

// gate is a load function whose calls block until the test answers them.
// Each call hands the test its own reply channel.
type gate[T any] struct {
	calls chan chan result[T]
}

type result[T any] struct {
	data T
	err  error
}

func newGate[T any]() *gate[T] {
	return &gate[T]{calls: make(chan chan result[T], 8)}
}

func (g *gate[T]) load(ctx context.Context) (T, error) {
	reply := make(chan result[T], 1)
	g.calls <- reply
	r := <-reply
	return r.data, r.err
}

func waitCtx(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestFetcher_LoadingThenReady(t *testing.T) {
	g := newGate[[]string]()
	f := services.NewFetcher("games", g.load)

	f.Start(context.Background())
	reply := <-g.calls
	assert.True(t, f.Result().Loading())

	reply <- result[[]string]{data: []string{"Racing"}}
	res := f.Wait(waitCtx(t))

	assert.True(t, res.Ready())
	assert.Equal(t, []string{"Racing"}, res.Data)
	assert.NoError(t, res.Err)
}

func TestFetcher_LoadingThenFailed(t *testing.T) {
	f := services.NewFetcher("hero", func(ctx context.Context) (*domain.HeroContent, error) {
		return nil, errors.New("connection refused")
	})

	f.Start(context.Background())
	res := f.Wait(waitCtx(t))

	assert.True(t, res.Failed())
	assert.Nil(t, res.Data)
	assert.EqualError(t, res.Err, "connection refused")
}

func TestFetcher_IssuesOneReadPerCycle(t *testing.T) {
	calls := 0
	f := services.NewFetcher("footer", func(ctx context.Context) (int, error) {
		calls++
		return calls, nil
	})

	f.Start(context.Background())
	f.Wait(waitCtx(t))

	assert.Equal(t, 1, calls)
	assert.Equal(t, domain.FetchReady, f.Status())
}

func TestFetcher_DropsStaleResult(t *testing.T) {
	g := newGate[string]()
	f := services.NewFetcher("hero", g.load)

	f.Start(context.Background())
	oldReply := <-g.calls
	first := f.Done()

	f.Start(context.Background())
	newReply := <-g.calls

	// the newer request answers first, then the stale one arrives
	newReply <- result[string]{data: "new"}
	res := f.Wait(waitCtx(t))
	require.True(t, res.Ready())

	oldReply <- result[string]{data: "old"}
	<-first

	assert.Equal(t, "new", f.Result().Data)
}

func TestFetcher_IgnoresResultAfterUnmount(t *testing.T) {
	g := newGate[string]()
	f := services.NewFetcher("contact_info", g.load)

	f.Start(context.Background())
	reply := <-g.calls
	done := f.Done()

	f.Unmount()
	reply <- result[string]{data: "late"}
	<-done

	assert.True(t, f.Result().Loading())
	assert.Empty(t, f.Result().Data)
}

func TestFetcher_StartAfterUnmountIsNoop(t *testing.T) {
	calls := 0
	f := services.NewFetcher("events", func(ctx context.Context) (int, error) {
		calls++
		return 1, nil
	})

	f.Unmount()
	f.Start(context.Background())

	assert.Equal(t, 0, calls)
}

func TestView_LoadingUntilEveryMemberResolves(t *testing.T) {
	contact := newGate[*domain.ContactInfo]()
	games := newGate[[]domain.GameOffering]()

	contactFetcher := services.NewFetcher("contact_info", contact.load)
	gamesFetcher := services.NewFetcher("basic_game_cards", games.load)
	view := services.NewView(contactFetcher, gamesFetcher)

	view.Mount(context.Background())
	contactReply := <-contact.calls
	gamesReply := <-games.calls
	assert.True(t, view.Loading())

	contactReply <- result[*domain.ContactInfo]{data: &domain.ContactInfo{Email: "info@epicevents.com"}}
	contactFetcher.Wait(waitCtx(t))
	assert.True(t, view.Loading(), "view must stay loading while the game catalog is pending")

	gamesReply <- result[[]domain.GameOffering]{err: errors.New("timeout")}
	require.True(t, view.Wait(waitCtx(t)))

	assert.False(t, view.Loading())
	assert.True(t, contactFetcher.Result().Ready())
	assert.True(t, gamesFetcher.Result().Failed())
}

func TestView_WaitGivesUpWithContext(t *testing.T) {
	g := newGate[int]()
	view := services.NewView(services.NewFetcher("hero", g.load))
	view.Mount(context.Background())
	reply := <-g.calls

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.False(t, view.Wait(ctx))
	assert.True(t, view.Loading())

	view.Unmount()
	reply <- result[int]{data: 1}
}
