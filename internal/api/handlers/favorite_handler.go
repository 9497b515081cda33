package handlers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/macromate/macromate-backend/domain"
	"github.com/macromate/macromate-backend/internal/api/presenters"
	"github.com/macromate/macromate-backend/pkg/favorite"
)

type (
	FavoriteHandler interface {
		GetFavorites(c *fiber.Ctx) error
		AddFavorite(c *fiber.Ctx) error
		DeleteFavorite(c *fiber.Ctx) error
		RenameFavorite(c *fiber.Ctx) error
		AddToMeals(c *fiber.Ctx) error
	}

	favoriteHandler struct {
		favoriteService favorite.FavoriteService
		validator       *validator.Validate
	}
)

func NewFavoriteHandler(favoriteService favorite.FavoriteService, validator *validator.Validate) FavoriteHandler {
	return &favoriteHandler{
		favoriteService: favoriteService,
		validator:       validator,
	}
}

func (h *favoriteHandler) GetFavorites(c *fiber.Ctx) error {
	userID := c.Params("userId")

	res, err := h.favoriteService.GetFavorites(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFavorites, err)
	}

	if len(res.Favorites) == 0 {
		res.Message = domain.MessageNoFavoritesYet
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFavorites)
}

func (h *favoriteHandler) AddFavorite(c *fiber.Ctx) error {
	userID := c.Params("userId")
	req := new(domain.AddFavoriteRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, "missing required fields: foodItem, protein, carbs, fats, calories", err)
	}

	res, err := h.favoriteService.AddFavorite(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrFavoriteAlreadyExists) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageAlreadyFavorite, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddFavorite, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAddFavorite)
}

func (h *favoriteHandler) DeleteFavorite(c *fiber.Ctx) error {
	userID := c.Params("userId")
	favoriteID := c.Params("favoriteId")

	res, err := h.favoriteService.DeleteFavorite(c.Context(), favoriteID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrFavoriteNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteFavorite, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteFavorite, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDeleteFavorite)
}

func (h *favoriteHandler) RenameFavorite(c *fiber.Ctx) error {
	userID := c.Params("userId")
	favoriteID := c.Params("favoriteId")
	req := new(domain.RenameFavoriteRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if strings.TrimSpace(req.FoodItem) == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFoodItemRequired, nil)
	}

	res, err := h.favoriteService.RenameFavorite(c.Context(), favoriteID, userID, *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFavoriteNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedRenameFavorite, err)
		case errors.Is(err, domain.ErrFavoriteAlreadyExists):
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageAlreadyFavorite, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedRenameFavorite, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRenameFavorite)
}

func (h *favoriteHandler) AddToMeals(c *fiber.Ctx) error {
	userID := c.Params("userId")
	req := new(domain.AddToMealsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, "missing favoriteId in request body", err)
	}

	res, err := h.favoriteService.AddToTodaysMeals(c.Context(), req.FavoriteID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrFavoriteNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, "favourite item not found", err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddToMeals, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAddToMeals)
}
