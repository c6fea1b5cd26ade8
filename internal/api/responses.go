package api

import "time"

// Profile is the client-visible view of an identity.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Height    float64   `json:"height"`
	Weight    float64   `json:"weight"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	UserID       string  `json:"user_id"`
	Email        string  `json:"email"`
	Token        string  `json:"token"`
	RefreshToken string  `json:"refresh_token"`
	Profile      Profile `json:"profile"`
}

type RefreshResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

type Exercise struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Name           string    `json:"name"`
	Duration       float64   `json:"duration"`
	CaloriesBurned float64   `json:"calories_burned"`
	Date           time.Time `json:"date"`
}

type Nutrition struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user_id"`
	FoodName string    `json:"food_name"`
	Calories float64   `json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
	MealType string    `json:"meal_type"`
	Date     time.Time `json:"date"`
}
