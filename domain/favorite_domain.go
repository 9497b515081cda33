package domain

import (
	"errors"
)

var (
	MessageSuccessGetFavorites   = "favorites retrieved successfully"
	MessageSuccessAddFavorite    = "added to favourites!"
	MessageSuccessDeleteFavorite = "removed from favourites!"
	MessageSuccessRenameFavorite = "favorite updated successfully!"
	MessageSuccessAddToMeals     = "added to today's meals!"

	MessageFailedGetFavorites   = "failed to retrieve favorites"
	MessageFailedAddFavorite    = "failed to save favorite"
	MessageFailedDeleteFavorite = "failed to remove from favourites"
	MessageFailedRenameFavorite = "failed to update favorite"
	MessageFailedAddToMeals     = "failed to add favorite to meals"

	MessageNoFavoritesYet   = "You don't have any favourite foods yet!"
	MessageAlreadyFavorite  = "already in favourites!"
	MessageFoodItemRequired = "food item name is required"

	ErrFavoriteAlreadyExists = errors.New("this item is already in your favorites")
	ErrFavoriteNotFound      = errors.New("favorite item not found or user does not have permission")
)

type (
	AddFavoriteRequest struct {
		FoodItem string   `json:"foodItem" validate:"required"`
		Protein  *float64 `json:"protein" validate:"required"`
		Carbs    *float64 `json:"carbs" validate:"required"`
		Fats     *float64 `json:"fats" validate:"required"`
		Calories *float64 `json:"calories" validate:"required"`
	}

	RenameFavoriteRequest struct {
		FoodItem string `json:"foodItem" validate:"required"`
	}

	AddToMealsRequest struct {
		FavoriteID string `json:"favoriteId" validate:"required"`
	}

	FavoriteResponse struct {
		ID        string  `json:"id"`
		FoodItem  string  `json:"foodItem"`
		Protein   float64 `json:"protein"`
		Carbs     float64 `json:"carbs"`
		Fats      float64 `json:"fats"`
		Calories  float64 `json:"calories"`
		CreatedAt string  `json:"createdAt"`
	}

	FavoritesListResponse struct {
		Favorites []FavoriteResponse `json:"favorites"`
		Message   string             `json:"message,omitempty"`
	}
)
