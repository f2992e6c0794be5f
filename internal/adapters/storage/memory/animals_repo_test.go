package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"animal-registry/internal/domain/animals"
)

func newAnimal(id, name string) animals.Animal {
	return animals.New(id, name, 2, animals.Domestic{}, time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC))
}

func TestAnimalRepo_ListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewAnimalRepo()

	for _, a := range []animals.Animal{newAnimal("a1", "Rex"), newAnimal("a2", "Ace"), newAnimal("a3", "Max")} {
		require.NoError(t, repo.Create(ctx, a))
	}

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, "Rex", items[0].Name)
	require.Equal(t, "Ace", items[1].Name)
	require.Equal(t, "Max", items[2].Name)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestAnimalRepo_Create_RejectsMissingAndDuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := NewAnimalRepo()

	require.Error(t, repo.Create(ctx, newAnimal("", "Rex")))
	require.NoError(t, repo.Create(ctx, newAnimal("a1", "Rex")))
	require.Error(t, repo.Create(ctx, newAnimal("a1", "Other")))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestAnimalRepo_FindFirstByName_ReturnsFirstMatch(t *testing.T) {
	ctx := context.Background()
	repo := NewAnimalRepo()

	require.NoError(t, repo.Create(ctx, newAnimal("a1", "Rex")))
	require.NoError(t, repo.Create(ctx, newAnimal("a2", "Rex")))

	a, ok, err := repo.FindFirstByName(ctx, "Rex")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "a1", a.ID)

	// match exacto, sensible a mayúsculas
	_, ok, err = repo.FindFirstByName(ctx, "rex")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAnimalRepo_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewAnimalRepo()

	a := newAnimal("a1", "Rex")
	require.NoError(t, repo.Create(ctx, a))

	a.AddCommand("sit")
	require.NoError(t, repo.Update(ctx, a))

	got, ok, err := repo.FindFirstByName(ctx, "Rex")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "sit", got.ListCommands())

	require.ErrorIs(t, repo.Update(ctx, newAnimal("missing", "Ghost")), ErrNotFound)
}

func TestAnimalRepo_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewAnimalRepo()

	a := newAnimal("a1", "Rex")
	a.AddCommand("sit")
	require.NoError(t, repo.Create(ctx, a))

	// mutar lo que devuelve el repo no debe tocar lo guardado
	got, _, err := repo.FindFirstByName(ctx, "Rex")
	require.NoError(t, err)
	got.AddCommand("stay")

	items, err := repo.List(ctx)
	require.NoError(t, err)
	items[0].AddCommand("roll")

	again, _, err := repo.FindFirstByName(ctx, "Rex")
	require.NoError(t, err)
	require.Equal(t, "sit", again.ListCommands())
}
