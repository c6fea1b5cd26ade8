package client

import (
	"context"

	"github.com/dmitrijs2005/healthsync/internal/api"
)

// Client is the HealthSync API surface the CLI depends on.
type Client interface {
	Ping(ctx context.Context) error
	Register(ctx context.Context, in api.RegisterInput) (*api.AuthResponse, error)
	Login(ctx context.Context, in api.LoginInput) (*api.AuthResponse, error)
	Refresh(ctx context.Context) error
	LogExercise(ctx context.Context, in api.ExerciseInput) (*api.Exercise, error)
	LogNutrition(ctx context.Context, in api.NutritionInput) (*api.Nutrition, error)
	Logout()
	LoggedIn() bool
}
