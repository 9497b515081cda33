package entities

import (
	"time"

	"github.com/google/uuid"
)

type MacroLog struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   string    `gorm:"index" json:"user_id"`
	LogDate  string    `gorm:"index" json:"log_date"` // YYYY-MM-DD
	MealTime time.Time `json:"meal_time"`
	FoodItem string    `json:"food_item"`
	ProteinG float64   `json:"protein_g"`
	CarbsG   float64   `json:"carbs_g"`
	FatsG    float64   `json:"fats_g"`
	Calories float64   `json:"calories"`
	ImageURL string    `json:"image_url,omitempty"`

	Timestamp
}
