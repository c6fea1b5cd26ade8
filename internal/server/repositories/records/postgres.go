package records

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/healthsync/internal/dbx"
	"github.com/dmitrijs2005/healthsync/internal/server/models"
	"github.com/google/uuid"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateExercise(ctx context.Context, e *models.Exercise) (*models.Exercise, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO exercises (id, user_id, name, duration, calories_burned, date)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 `

	_, err := r.db.ExecContext(ctx, query, e.ID, e.UserID, e.Name, e.Duration, e.CaloriesBurned, e.Date)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

func (r *PostgresRepository) CreateNutrition(ctx context.Context, n *models.Nutrition) (*models.Nutrition, error) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO nutrition (id, user_id, food_name, calories, protein, carbs, fat, meal_type, date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 `

	_, err := r.db.ExecContext(ctx, query,
		n.ID, n.UserID, n.FoodName, n.Calories, n.Protein, n.Carbs, n.Fat, n.MealType, n.Date)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
