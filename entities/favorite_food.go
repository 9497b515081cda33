package entities

import (
	"github.com/google/uuid"
)

type FavoriteFood struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   string    `gorm:"uniqueIndex:uq_favorite_user_food" json:"user_id"`
	FoodItem string    `gorm:"uniqueIndex:uq_favorite_user_food" json:"food_item"`
	ProteinG float64   `json:"protein_g"`
	CarbsG   float64   `json:"carbs_g"`
	FatsG    float64   `json:"fats_g"`
	Calories float64   `json:"calories"`

	Timestamp
}
