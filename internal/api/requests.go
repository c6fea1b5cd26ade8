// Package api holds the JSON request and response types shared by the
// HealthSync server and its command-line client.
package api

import (
	"fmt"

	"github.com/dmitrijs2005/healthsync/internal/common"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type RegisterInput struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     string  `json:"name"`
	Height   float64 `json:"height"`
	Weight   float64 `json:"weight"`
	Age      int     `json:"age"`
}

func (in RegisterInput) Validate() error {
	return invalid(validation.ValidateStruct(&in,
		validation.Field(&in.Email, validation.Required, is.Email),
		validation.Field(&in.Password, validation.Required),
		validation.Field(&in.Name, validation.Required),
		validation.Field(&in.Height, validation.Min(0.0)),
		validation.Field(&in.Weight, validation.Min(0.0)),
		validation.Field(&in.Age, validation.Min(0)),
	))
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in LoginInput) Validate() error {
	return invalid(validation.ValidateStruct(&in,
		validation.Field(&in.Email, validation.Required),
		validation.Field(&in.Password, validation.Required),
	))
}

type ExerciseInput struct {
	Name           string  `json:"name"`
	Duration       float64 `json:"duration"`
	CaloriesBurned float64 `json:"calories_burned"`
}

func (in ExerciseInput) Validate() error {
	return invalid(validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required),
		validation.Field(&in.Duration, validation.Min(0.0)),
		validation.Field(&in.CaloriesBurned, validation.Min(0.0)),
	))
}

type NutritionInput struct {
	FoodName string  `json:"food_name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	MealType string  `json:"meal_type"`
}

func (in NutritionInput) Validate() error {
	return invalid(validation.ValidateStruct(&in,
		validation.Field(&in.FoodName, validation.Required),
		validation.Field(&in.Calories, validation.Min(0.0)),
		validation.Field(&in.Protein, validation.Min(0.0)),
		validation.Field(&in.Carbs, validation.Min(0.0)),
		validation.Field(&in.Fat, validation.Min(0.0)),
	))
}

func invalid(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", common.ErrValidation, err)
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
