package records

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/healthsync/internal/server/models"
	"github.com/google/uuid"
)

type MemoryRepository struct {
	mu        sync.Mutex
	exercises []models.Exercise
	nutrition []models.Nutrition
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) CreateExercise(_ context.Context, e *models.Exercise) (*models.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	r.exercises = append(r.exercises, *e)
	return e, nil
}

func (r *MemoryRepository) CreateNutrition(_ context.Context, n *models.Nutrition) (*models.Nutrition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	r.nutrition = append(r.nutrition, *n)
	return n, nil
}

// Exercises returns the stored exercise entries for userID, oldest first.
func (r *MemoryRepository) Exercises(userID string) []models.Exercise {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Exercise
	for _, e := range r.exercises {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out
}

// Nutrition returns the stored nutrition entries for userID, oldest first.
func (r *MemoryRepository) Nutrition(userID string) []models.Nutrition {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Nutrition
	for _, n := range r.nutrition {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}
