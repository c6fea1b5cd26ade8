// Package records stores exercise and nutrition entries logged by
// authenticated identities.
package records

import (
	"context"

	"github.com/dmitrijs2005/healthsync/internal/server/models"
)

type Repository interface {
	CreateExercise(ctx context.Context, e *models.Exercise) (*models.Exercise, error)
	CreateNutrition(ctx context.Context, n *models.Nutrition) (*models.Nutrition, error)
}
