package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessCalculateMacros = "macros calculated successfully"
	MessageSuccessGetDayMacros    = "daily macros retrieved successfully"
	MessageSuccessGetPastMacros   = "past macros retrieved successfully"
	MessageSuccessDeleteMacroLog  = "meal removed successfully"
	MessageSuccessRelogMacro      = "meal added to today"

	MessageFailedCalculateMacros = "could not calculate macros"
	MessageFailedGetDayMacros    = "failed to retrieve daily macros"
	MessageFailedGetPastMacros   = "failed to retrieve past macros"
	MessageFailedDeleteMacroLog  = "failed to delete meal"
	MessageFailedRelogMacro      = "failed to re-log meal"
	MessageFailedInvalidImage    = "please upload a valid image file (JPG, PNG, GIF, WebP)"

	MessageMacroSuggestion      = `Example: "100g chicken breast" or "1 medium apple"`
	MessageImageSuggestion      = `Example: upload a clear nutrition label image with weight "100g"`
	MessageNoEntriesToday       = "No food entries logged for today yet!"
	MessageNoEntriesForDay      = "No food entries logged for this day."

	ErrZeroMacros        = errors.New("could not calculate macros")
	ErrMacroLogNotFound  = errors.New("log entry not found or user does not have permission to delete")
	ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidDaysParam  = errors.New("please choose a number between 1 and 30 days")
	ErrInvalidImageType  = errors.New("invalid image file type")
)

type (
	// MacroRecord is the normalized nutrient tuple produced by extraction,
	// barcode lookup or the zero fallback.
	MacroRecord struct {
		ProteinG       float64 `json:"protein_g"`
		CarbsG         float64 `json:"carbs_g"`
		FatsG          float64 `json:"fats_g"`
		Calories       float64 `json:"calories"`
		ParsedFoodItem string  `json:"parsed_food_item"`
	}

	CalculateMacrosRequest struct {
		FoodDescription string `json:"foodDescription" validate:"required"`
		UserID          string `json:"userId" validate:"required"`
	}

	CalculateImageMacrosRequest struct {
		Image  *multipart.FileHeader `json:"image" form:"image" validate:"required"`
		Weight string                `json:"weight" form:"weight"`
		UserID string                `json:"userId" form:"userId" validate:"required"`
	}

	RelogMacroRequest struct {
		UserID   string   `json:"userId" validate:"required"`
		FoodItem string   `json:"foodItem" validate:"required"`
		Protein  *float64 `json:"protein" validate:"required"`
		Carbs    *float64 `json:"carbs" validate:"required"`
		Fats     *float64 `json:"fats" validate:"required"`
		Calories *float64 `json:"calories" validate:"required"`
	}

	MacroLogResponse struct {
		ID       string  `json:"id"`
		FoodItem string  `json:"foodItem"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fats     float64 `json:"fats"`
		Calories float64 `json:"calories"`
		MealTime string  `json:"mealTime"`
		Date     string  `json:"date"`
	}

	CalculateMacrosResponse struct {
		MacroRecord
		ID       string `json:"id"`
		Date     string `json:"date"`
		MealTime string `json:"mealTime"`
	}

	TotalMacros struct {
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fats     float64 `json:"fats"`
		Calories float64 `json:"calories"`
	}

	DayMacrosResponse struct {
		Date        string             `json:"date"`
		TotalMacros TotalMacros        `json:"totalMacros"`
		Meals       []MacroLogResponse `json:"meals"`
		Message     string             `json:"message,omitempty"`
	}

	DailySummary struct {
		Date          string  `json:"date"`
		TotalProtein  float64 `json:"totalProtein"`
		TotalCarbs    float64 `json:"totalCarbs"`
		TotalFats     float64 `json:"totalFats"`
		TotalCalories float64 `json:"totalCalories"`
	}

	PastMacrosResponse struct {
		Days           int            `json:"days"`
		DailySummaries []DailySummary `json:"dailySummaries"`
		Message        string         `json:"message,omitempty"`
	}
)
