package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/healthsync/internal/api"
)

func (a *App) AddExercise(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Exercise name", a.out)
	if err != nil {
		return a.report(err)
	}
	duration, err := GetFloat(a.reader, "Duration in minutes", a.out)
	if err != nil {
		return a.report(err)
	}
	calories, err := GetFloat(a.reader, "Calories burned", a.out)
	if err != nil {
		return a.report(err)
	}

	in := api.ExerciseInput{Name: name, Duration: duration, CaloriesBurned: calories}
	if err := in.Validate(); err != nil {
		return a.report(err)
	}

	e, err := a.api.LogExercise(ctx, in)
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintf(a.out, "Logged %s, %.0f min, %.0f kcal (id %s)\n", e.Name, e.Duration, e.CaloriesBurned, e.ID)
	return nil
}

func (a *App) AddNutrition(ctx context.Context) error {
	food, err := GetSimpleText(a.reader, "Food name", a.out)
	if err != nil {
		return a.report(err)
	}
	meal, err := GetSimpleText(a.reader, "Meal type (breakfast, lunch, dinner, snack)", a.out)
	if err != nil {
		return a.report(err)
	}

	var values [4]float64
	for i, prompt := range []string{"Calories", "Protein (g)", "Carbs (g)", "Fat (g)"} {
		if values[i], err = GetFloat(a.reader, prompt, a.out); err != nil {
			return a.report(err)
		}
	}

	in := api.NutritionInput{
		FoodName: food,
		MealType: meal,
		Calories: values[0],
		Protein:  values[1],
		Carbs:    values[2],
		Fat:      values[3],
	}
	if err := in.Validate(); err != nil {
		return a.report(err)
	}

	n, err := a.api.LogNutrition(ctx, in)
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintf(a.out, "Logged %s, %.0f kcal (id %s)\n", n.FoodName, n.Calories, n.ID)
	return nil
}
