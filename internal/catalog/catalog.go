package catalog

import "errors"

// ErrExerciseNotFound is returned when an exercise id is not in the catalog.
var ErrExerciseNotFound = errors.New("exercise not found in catalog")

// Exercise is a read-only catalog entry. The catalog is reference data:
// consumed by the customizer and template validation, never mutated.
type Exercise struct {
	ID           string   `bson:"_id" json:"id"`
	Name         string   `bson:"name" json:"name"`
	Category     string   `bson:"category" json:"category"` // e.g. "squat", "push", "pull", "hinge", "core", "cardio"
	MuscleGroups []string `bson:"muscleGroups" json:"muscleGroups"`
	// Equipment lists required equipment tags; empty means bodyweight only.
	Equipment  []string `bson:"equipment" json:"equipment"`
	Difficulty int      `bson:"difficulty" json:"difficulty"` // 1 (easiest) - 5
}

// RequiresEquipment reports whether the exercise needs any equipment at all.
func (e Exercise) RequiresEquipment() bool {
	return len(e.Equipment) > 0
}

// Catalog is a read-only lookup of exercises keyed by id.
type Catalog interface {
	// Get returns the exercise with the given id, or ErrExerciseNotFound.
	Get(id string) (Exercise, error)
	// Has reports whether the id exists without returning the entry.
	Has(id string) bool
	// FindCandidates returns exercises in the given category whose equipment
	// requirements are fully covered by the available tags and whose
	// difficulty does not exceed maxDifficulty. Results come back in the
	// catalog's stable declaration order so substitution is deterministic.
	FindCandidates(category string, available []string, maxDifficulty int) []Exercise
	// All returns every exercise in declaration order.
	All() []Exercise
}

// memoryCatalog is the in-memory Catalog implementation used in production
// (hydrated from the exercise collection at startup) and in tests.
type memoryCatalog struct {
	order []string
	byID  map[string]Exercise
}

// New builds an in-memory catalog from a slice of exercises, preserving order.
func New(exercises []Exercise) Catalog {
	c := &memoryCatalog{
		order: make([]string, 0, len(exercises)),
		byID:  make(map[string]Exercise, len(exercises)),
	}
	for _, ex := range exercises {
		if _, dup := c.byID[ex.ID]; dup {
			continue // first declaration wins
		}
		c.byID[ex.ID] = ex
		c.order = append(c.order, ex.ID)
	}
	return c
}

func (c *memoryCatalog) Get(id string) (Exercise, error) {
	ex, ok := c.byID[id]
	if !ok {
		return Exercise{}, ErrExerciseNotFound
	}
	return ex, nil
}

func (c *memoryCatalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

func (c *memoryCatalog) All() []Exercise {
	out := make([]Exercise, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

func (c *memoryCatalog) FindCandidates(category string, available []string, maxDifficulty int) []Exercise {
	availSet := make(map[string]bool, len(available))
	for _, tag := range available {
		availSet[tag] = true
	}

	var out []Exercise
	for _, id := range c.order {
		ex := c.byID[id]
		if ex.Category != category {
			continue
		}
		if maxDifficulty > 0 && ex.Difficulty > maxDifficulty {
			continue
		}
		satisfied := true
		for _, tag := range ex.Equipment {
			if !availSet[tag] {
				satisfied = false
				break
			}
		}
		if satisfied {
			out = append(out, ex)
		}
	}
	return out
}
