package models

import "time"

type Exercise struct {
	ID             string
	UserID         string
	Name           string
	Duration       float64
	CaloriesBurned float64
	Date           time.Time
}

type Nutrition struct {
	ID       string
	UserID   string
	FoodName string
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	MealType string
	Date     time.Time
}
