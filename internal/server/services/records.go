package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/healthsync/internal/api"
	"github.com/dmitrijs2005/healthsync/internal/common"
	"github.com/dmitrijs2005/healthsync/internal/logging"
	"github.com/dmitrijs2005/healthsync/internal/server/models"
	"github.com/dmitrijs2005/healthsync/internal/server/repositories/records"
)

// RecordService logs exercise and nutrition entries for the identity an
// authorized request belongs to.
type RecordService struct {
	store  records.Repository
	logger logging.Logger
	now    func() time.Time
}

func NewRecordService(store records.Repository, logger logging.Logger) *RecordService {
	return &RecordService{
		store:  store,
		logger: logger.With("module", "records"),
		now:    time.Now,
	}
}

func (s *RecordService) LogExercise(ctx context.Context, binding *models.TokenBinding, in api.ExerciseInput) (*models.Exercise, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	e, err := s.store.CreateExercise(ctx, &models.Exercise{
		UserID:         binding.IdentityID,
		Name:           in.Name,
		Duration:       in.Duration,
		CaloriesBurned: in.CaloriesBurned,
		Date:           s.now().UTC(),
	})
	if err != nil {
		s.logger.Error(ctx, "create exercise failed", "user_id", binding.IdentityID, "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	return e, nil
}

func (s *RecordService) LogNutrition(ctx context.Context, binding *models.TokenBinding, in api.NutritionInput) (*models.Nutrition, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	n, err := s.store.CreateNutrition(ctx, &models.Nutrition{
		UserID:   binding.IdentityID,
		FoodName: in.FoodName,
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fat:      in.Fat,
		MealType: in.MealType,
		Date:     s.now().UTC(),
	})
	if err != nil {
		s.logger.Error(ctx, "create nutrition failed", "user_id", binding.IdentityID, "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	return n, nil
}
