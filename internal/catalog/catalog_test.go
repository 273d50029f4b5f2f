package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCatalogLookups(t *testing.T) {
	cat := New(SeedExercises())

	ex, err := cat.Get("goblet-squat")
	require.NoError(t, err)
	assert.Equal(t, "squat", ex.Category)
	assert.True(t, ex.RequiresEquipment())

	_, err = cat.Get("nonexistent")
	assert.ErrorIs(t, err, ErrExerciseNotFound)

	assert.True(t, cat.Has("push-up"))
	assert.False(t, cat.Has(""))
	assert.Len(t, cat.All(), len(SeedExercises()))
}

func TestFindCandidatesFiltersAndPreservesOrder(t *testing.T) {
	cat := New(SeedExercises())

	// No equipment: only bodyweight squats, in declaration order.
	candidates := cat.FindCandidates("squat", nil, 0)
	require.NotEmpty(t, candidates)
	assert.Equal(t, "bodyweight-squat", candidates[0].ID)
	for _, c := range candidates {
		assert.False(t, c.RequiresEquipment())
	}

	// Difficulty cap excludes the pistol squat.
	capped := cat.FindCandidates("squat", nil, 3)
	for _, c := range capped {
		assert.LessOrEqual(t, c.Difficulty, 3)
	}

	// With a dumbbell the goblet squat becomes available.
	withDumbbell := cat.FindCandidates("squat", []string{"dumbbell"}, 0)
	ids := make([]string, 0, len(withDumbbell))
	for _, c := range withDumbbell {
		ids = append(ids, c.ID)
	}
	assert.Contains(t, ids, "goblet-squat")
}

func TestDuplicateIDsKeepFirstDeclaration(t *testing.T) {
	cat := New([]Exercise{
		{ID: "x", Name: "First", Category: "core"},
		{ID: "x", Name: "Second", Category: "core"},
	})

	ex, err := cat.Get("x")
	require.NoError(t, err)
	assert.Equal(t, "First", ex.Name)
	assert.Len(t, cat.All(), 1)
}
