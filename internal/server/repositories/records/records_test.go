package records

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/healthsync/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	exerciseQuery  = `(?s)^INSERT\s+INTO\s+exercises\s*\(id,\s*user_id,\s*name,\s*duration,\s*calories_burned,\s*date\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6\)\s*$`
	nutritionQuery = `(?s)^INSERT\s+INTO\s+nutrition\s*\(id,\s*user_id,\s*food_name,\s*calories,\s*protein,\s*carbs,\s*fat,\s*meal_type,\s*date\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6,\s*\$7,\s*\$8,\s*\$9\)\s*$`
)

var logged = time.Date(2024, 2, 3, 7, 30, 0, 0, time.UTC)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock, db
}

func TestPostgresCreateExercise(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectExec(exerciseQuery).
		WithArgs(sqlmock.AnyArg(), "u-1", "run", 30.0, 250.0, logged).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.CreateExercise(context.Background(), &models.Exercise{
		UserID: "u-1", Name: "run", Duration: 30, CaloriesBurned: 250, Date: logged,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreateExercise_DBError(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectExec(exerciseQuery).WillReturnError(errors.New("fk violation"))

	_, err := repo.CreateExercise(context.Background(), &models.Exercise{UserID: "u-1", Name: "run"})
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`db error: .*fk violation`), err.Error())
}

func TestPostgresCreateNutrition(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectExec(nutritionQuery).
		WithArgs("n-1", "u-1", "oats", 150.0, 5.0, 27.0, 3.0, "breakfast", logged).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.CreateNutrition(context.Background(), &models.Nutrition{
		ID: "n-1", UserID: "u-1", FoodName: "oats", Calories: 150, Protein: 5, Carbs: 27, Fat: 3,
		MealType: "breakfast", Date: logged,
	})
	require.NoError(t, err)
	assert.Equal(t, "n-1", got.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreateNutrition_DBError(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectExec(nutritionQuery).WillReturnError(errors.New("db down"))

	_, err := repo.CreateNutrition(context.Background(), &models.Nutrition{UserID: "u-1", FoodName: "oats"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
}

func TestMemoryRepository_StoresPerUser(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.CreateExercise(ctx, &models.Exercise{UserID: "u-1", Name: "run"})
	require.NoError(t, err)
	_, err = repo.CreateExercise(ctx, &models.Exercise{UserID: "u-2", Name: "swim"})
	require.NoError(t, err)
	_, err = repo.CreateNutrition(ctx, &models.Nutrition{UserID: "u-1", FoodName: "oats"})
	require.NoError(t, err)

	ex := repo.Exercises("u-1")
	require.Len(t, ex, 1)
	assert.Equal(t, "run", ex[0].Name)
	assert.NotEmpty(t, ex[0].ID)

	assert.Len(t, repo.Nutrition("u-1"), 1)
	assert.Empty(t, repo.Nutrition("u-2"))
}
