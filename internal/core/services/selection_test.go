package services_test

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/srgjo27/epic_events/internal/core/domain"
	"github.com/srgjo27/epic_events/internal/core/services"
)

func game(name string) domain.GameOffering {
	return domain.GameOffering{ID: uuid.New(), Name: domain.NewLocalizedText(name, nil)}
}

func TestSelectionStore_ToggleAddsAndRemoves(t *testing.T) {
	store := services.NewSelectionStore()
	racing := game("Racing")
	vr := game("VR Arena")

	assert.True(t, store.Toggle(racing))
	assert.True(t, store.Toggle(vr))
	assert.True(t, store.Contains(racing.ID))
	assert.Equal(t, []uuid.UUID{racing.ID, vr.ID}, store.IDs())

	assert.False(t, store.Toggle(racing))
	assert.False(t, store.Contains(racing.ID))
	assert.Equal(t, []uuid.UUID{vr.ID}, store.IDs())
}

func TestSelectionStore_ToggleMatchesByID(t *testing.T) {
	store := services.NewSelectionStore()
	racing := game("Racing")

	store.Toggle(racing)

	refetched := racing
	refetched.Name = domain.NewLocalizedText("Racing (updated)", nil)
	store.Toggle(refetched)

	assert.Equal(t, 0, store.Len())
}

func TestSelectionStore_DoubleToggleRestoresMembershipAndOrder(t *testing.T) {
	store := services.NewSelectionStore()
	a, b, c, d := game("A"), game("B"), game("C"), game("D")
	store.Toggle(a)
	store.Toggle(b)
	store.Toggle(c)
	before := store.IDs()

	store.Toggle(b)
	store.Toggle(b)
	assert.Equal(t, before, store.IDs())

	store.Toggle(d)
	store.Toggle(d)
	assert.Equal(t, before, store.IDs())
}

func TestSelectionStore_NewGamesAreAppended(t *testing.T) {
	store := services.NewSelectionStore()
	a, b, c := game("A"), game("B"), game("C")
	store.Toggle(a)
	store.Toggle(b)
	store.Toggle(a)
	store.Toggle(c)

	assert.Equal(t, []uuid.UUID{b.ID, c.ID}, store.IDs())
}

func TestSelectionStore_OddToggleCountInFirstToggleOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pool := []domain.GameOffering{game("A"), game("B"), game("C"), game("D"), game("E")}

	for run := 0; run < 50; run++ {
		store := services.NewSelectionStore()
		counts := make(map[uuid.UUID]int)
		var firstToggle []uuid.UUID

		for i := 0; i < 30; i++ {
			g := pool[rng.Intn(len(pool))]
			store.Toggle(g)
			if counts[g.ID] == 0 {
				firstToggle = append(firstToggle, g.ID)
			}
			counts[g.ID]++
		}

		want := []uuid.UUID{}
		for _, id := range firstToggle {
			if counts[id]%2 == 1 {
				want = append(want, id)
			}
		}

		assert.Equal(t, want, store.IDs())
	}
}

func TestSelectionStore_Clear(t *testing.T) {
	store := services.NewSelectionStore()
	store.Toggle(game("A"))
	store.Toggle(game("B"))

	store.Clear()

	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.Games())
}

func TestSelectionStore_ClearForgetsOrder(t *testing.T) {
	store := services.NewSelectionStore()
	a, b := game("A"), game("B")
	store.Toggle(a)
	store.Toggle(b)
	store.Clear()

	store.Toggle(b)
	store.Toggle(a)

	assert.Equal(t, []uuid.UUID{b.ID, a.ID}, store.IDs())
}

func TestSelectionStore_RemoveKeepsOthersInOrder(t *testing.T) {
	store := services.NewSelectionStore()
	a, b, c := game("A"), game("B"), game("C")
	store.Toggle(a)
	store.Toggle(b)
	store.Toggle(c)

	store.Remove(a.ID, c.ID, uuid.New())

	assert.Equal(t, []uuid.UUID{b.ID}, store.IDs())

	store.Toggle(a)
	assert.Equal(t, []uuid.UUID{b.ID, a.ID}, store.IDs())
}

func TestSelectionStore_GamesReturnsCopy(t *testing.T) {
	store := services.NewSelectionStore()
	a := game("A")
	store.Toggle(a)

	games := store.Games()
	games[0].ID = uuid.New()

	assert.True(t, store.Contains(a.ID))
}
