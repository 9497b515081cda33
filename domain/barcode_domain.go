package domain

import (
	"errors"
)

var (
	MessageSuccessBarcodeMacros = "barcode macros calculated successfully"

	MessageFailedBarcodeMacros  = "failed to process barcode"
	MessageInvalidBarcodeFormat = "invalid barcode format"
	MessageProductNotFound      = "product not found"
	MessageInsufficientNutrient = "insufficient nutrient data for this product"
	MessageUpstreamUnreachable  = "failed to reach Open Food Facts API"

	ErrInvalidBarcode       = errors.New("barcode must be a digit string of length 6-14")
	ErrProductNotFound      = errors.New("product not found")
	ErrInsufficientNutrient = errors.New("insufficient nutrient data for this product")
)

type (
	BarcodeMacrosRequest struct {
		Barcode string `json:"barcode" validate:"required"`
		UserID  string `json:"userId" validate:"required"`
		Weight  string `json:"weight"`
	}

	BarcodeMacrosResponse struct {
		ID       string  `json:"id"`
		FoodItem string  `json:"foodItem"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fats     float64 `json:"fats"`
		Calories float64 `json:"calories"`
		Date     string  `json:"date"`
		MealTime string  `json:"mealTime"`
	}
)
