package handlers

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/macromate/macromate-backend/domain"
	"github.com/macromate/macromate-backend/internal/api/presenters"
	"github.com/macromate/macromate-backend/pkg/macro"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type (
	MacroHandler interface {
		Health(c *fiber.Ctx) error
		TestService(c *fiber.Ctx) error
		CalculateMacros(c *fiber.Ctx) error
		CalculateImageMacros(c *fiber.Ctx) error
		CalculateBarcodeMacros(c *fiber.Ctx) error
		GetTodayMacros(c *fiber.Ctx) error
		GetDayMacros(c *fiber.Ctx) error
		GetPastMacros(c *fiber.Ctx) error
		DeleteMacroLog(c *fiber.Ctx) error
		RelogMacro(c *fiber.Ctx) error
	}

	macroHandler struct {
		macroService macro.MacroService
		validator    *validator.Validate
	}
)

func NewMacroHandler(macroService macro.MacroService, validator *validator.Validate) MacroHandler {
	return &macroHandler{
		macroService: macroService,
		validator:    validator,
	}
}

func (h *macroHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *macroHandler) TestService(c *fiber.Ctx) error {
	result, err := h.macroService.TestService(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, "service test failed", err)
	}
	return presenters.SuccessResponse(c, result, fiber.StatusOK, "")
}

func (h *macroHandler) CalculateMacros(c *fiber.Ctx) error {
	req := new(domain.CalculateMacrosRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, "missing required fields: foodDescription and userId", err)
	}

	res, err := h.macroService.CalculateMacros(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrZeroMacros) {
			return presenters.ErrorWithSuggestion(c, fiber.StatusBadRequest,
				domain.MessageFailedCalculateMacros,
				fmt.Sprintf("I couldn't calculate macros for %q. Please try being more specific about the food items and quantities.", req.FoodDescription),
				domain.MessageMacroSuggestion)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCalculateMacros, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCalculateMacros)
}

func (h *macroHandler) CalculateImageMacros(c *fiber.Ctx) error {
	req := &domain.CalculateImageMacrosRequest{
		Weight: c.FormValue("weight"),
		UserID: c.FormValue("userId"),
	}

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, "missing required fields: image file and userId", err)
	}
	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, "missing required fields: image file and userId", err)
	}

	res, err := h.macroService.CalculateImageMacros(c.Context(), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidImageType):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidImage, err)
		case errors.Is(err, domain.ErrZeroMacros):
			return presenters.ErrorWithSuggestion(c, fiber.StatusBadRequest,
				"could not calculate macros from image",
				"I couldn't calculate macros from this image. Please try again with a clearer nutrition label or include the weight.",
				domain.MessageImageSuggestion)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, "failed to process image", err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCalculateMacros)
}

func (h *macroHandler) CalculateBarcodeMacros(c *fiber.Ctx) error {
	req := new(domain.BarcodeMacrosRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, "missing required fields: barcode and userId", err)
	}

	res, err := h.macroService.CalculateBarcodeMacros(c.Context(), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidBarcode):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidBarcodeFormat, nil)
		case errors.Is(err, domain.ErrUpstreamUnavailable):
			return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageUpstreamUnreachable, nil)
		case errors.Is(err, domain.ErrProductNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageProductNotFound, nil)
		case errors.Is(err, domain.ErrInsufficientNutrient):
			return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageInsufficientNutrient, nil)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedBarcodeMacros, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessBarcodeMacros)
}

func (h *macroHandler) GetTodayMacros(c *fiber.Ctx) error {
	userID := c.Params("userId")
	today := time.Now().UTC().Format("2006-01-02")

	res, err := h.macroService.GetDayMacros(c.Context(), userID, today)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDayMacros, err)
	}

	if len(res.Meals) == 0 {
		res.Message = domain.MessageNoEntriesToday
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDayMacros)
}

func (h *macroHandler) GetDayMacros(c *fiber.Ctx) error {
	userID := c.Params("userId")
	date := c.Params("date")

	if !datePattern.MatchString(date) {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, "invalid date format", domain.ErrInvalidDateFormat)
	}

	res, err := h.macroService.GetDayMacros(c.Context(), userID, date)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDayMacros, err)
	}

	if len(res.Meals) == 0 {
		res.Message = domain.MessageNoEntriesForDay
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDayMacros)
}

func (h *macroHandler) GetPastMacros(c *fiber.Ctx) error {
	userID := c.Params("userId")

	days, err := strconv.Atoi(c.Params("days", "3"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, "invalid days parameter", domain.ErrInvalidDaysParam)
	}

	res, err := h.macroService.GetPastMacros(c.Context(), userID, days)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDaysParam) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, "invalid days parameter", err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPastMacros, err)
	}

	if len(res.DailySummaries) == 0 {
		res.Message = fmt.Sprintf("No macro data found for the past %d days.", res.Days)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPastMacros)
}

func (h *macroHandler) DeleteMacroLog(c *fiber.Ctx) error {
	logID := c.Params("logId")
	userID := c.Query("userId")

	if userID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, "missing userId in query parameters", nil)
	}

	res, err := h.macroService.DeleteLog(c.Context(), logID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrMacroLogNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteMacroLog, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteMacroLog, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDeleteMacroLog)
}

func (h *macroHandler) RelogMacro(c *fiber.Ctx) error {
	req := new(domain.RelogMacroRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, "missing required fields", err)
	}

	res, err := h.macroService.RelogMacro(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedRelogMacro, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRelogMacro)
}
