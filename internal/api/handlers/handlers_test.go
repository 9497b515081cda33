package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macromate/macromate-backend/domain"
	"github.com/macromate/macromate-backend/internal/api/handlers"
	"github.com/macromate/macromate-backend/internal/api/routes"
	"github.com/macromate/macromate-backend/internal/middleware"
)

type macroServiceMock struct {
	calculateRes domain.CalculateMacrosResponse
	calculateErr error
	barcodeRes   domain.BarcodeMacrosResponse
	barcodeErr   error
	dayRes       domain.DayMacrosResponse
	pastRes      domain.PastMacrosResponse
	pastErr      error
	deleteRes    domain.MacroLogResponse
	deleteErr    error
	relogRes     domain.MacroLogResponse
}

func (m *macroServiceMock) CalculateMacros(ctx context.Context, req domain.CalculateMacrosRequest) (domain.CalculateMacrosResponse, error) {
	return m.calculateRes, m.calculateErr
}

func (m *macroServiceMock) CalculateImageMacros(ctx context.Context, req domain.CalculateImageMacrosRequest) (domain.CalculateMacrosResponse, error) {
	return m.calculateRes, m.calculateErr
}

func (m *macroServiceMock) CalculateBarcodeMacros(ctx context.Context, req domain.BarcodeMacrosRequest) (domain.BarcodeMacrosResponse, error) {
	return m.barcodeRes, m.barcodeErr
}

func (m *macroServiceMock) GetDayMacros(ctx context.Context, userID, date string) (domain.DayMacrosResponse, error) {
	return m.dayRes, nil
}

func (m *macroServiceMock) GetPastMacros(ctx context.Context, userID string, days int) (domain.PastMacrosResponse, error) {
	return m.pastRes, m.pastErr
}

func (m *macroServiceMock) DeleteLog(ctx context.Context, logID, userID string) (domain.MacroLogResponse, error) {
	return m.deleteRes, m.deleteErr
}

func (m *macroServiceMock) RelogMacro(ctx context.Context, req domain.RelogMacroRequest) (domain.MacroLogResponse, error) {
	return m.relogRes, nil
}

func (m *macroServiceMock) TestService(ctx context.Context) (domain.MacroRecord, error) {
	return domain.MacroRecord{ParsedFoodItem: "test"}, nil
}

type favoriteServiceMock struct {
	listRes   domain.FavoritesListResponse
	addRes    domain.FavoriteResponse
	addErr    error
	deleteErr error
	renameErr error
	mealRes   domain.MacroLogResponse
	mealErr   error
}

func (m *favoriteServiceMock) GetFavorites(ctx context.Context, userID string) (domain.FavoritesListResponse, error) {
	return m.listRes, nil
}

func (m *favoriteServiceMock) AddFavorite(ctx context.Context, req domain.AddFavoriteRequest, userID string) (domain.FavoriteResponse, error) {
	return m.addRes, m.addErr
}

func (m *favoriteServiceMock) DeleteFavorite(ctx context.Context, favoriteID, userID string) (domain.FavoriteResponse, error) {
	return domain.FavoriteResponse{}, m.deleteErr
}

func (m *favoriteServiceMock) RenameFavorite(ctx context.Context, favoriteID, userID string, req domain.RenameFavoriteRequest) (domain.FavoriteResponse, error) {
	return domain.FavoriteResponse{FoodItem: req.FoodItem}, m.renameErr
}

func (m *favoriteServiceMock) AddToTodaysMeals(ctx context.Context, favoriteID, userID string) (domain.MacroLogResponse, error) {
	return m.mealRes, m.mealErr
}

type userServiceMock struct {
	res domain.MigrateUserResponse
}

func (m *userServiceMock) MigrateUser(ctx context.Context, req domain.MigrateUserRequest) (domain.MigrateUserResponse, error) {
	return m.res, nil
}

func newApp(macroSvc *macroServiceMock, favoriteSvc *favoriteServiceMock, userSvc *userServiceMock) *fiber.App {
	app := fiber.New()
	v := validator.New()

	routeConfig := routes.Config{
		App:             app,
		MacroHandler:    handlers.NewMacroHandler(macroSvc, v),
		FavoriteHandler: handlers.NewFavoriteHandler(favoriteSvc, v),
		UserHandler:     handlers.NewUserHandler(userSvc, v),
		Middleware:      middleware.NewMiddleware(),
	}
	routeConfig.Setup()
	return app
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, res *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestHealthEndpoint(t *testing.T) {
	app := newApp(&macroServiceMock{}, &favoriteServiceMock{}, &userServiceMock{})

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	body := decodeBody(t, res)
	assert.Equal(t, "OK", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestCalculateMacrosSuccessEnvelope(t *testing.T) {
	macroSvc := &macroServiceMock{calculateRes: domain.CalculateMacrosResponse{
		MacroRecord: domain.MacroRecord{ProteinG: 31, FatsG: 3.7, Calories: 165, ParsedFoodItem: "100g chicken breast"},
		ID:          "log-1",
	}}
	app := newApp(macroSvc, &favoriteServiceMock{}, &userServiceMock{})

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/calculate-macros", fiber.Map{
		"foodDescription": "100g chicken breast",
		"userId":          "user-1",
	}))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	body := decodeBody(t, res)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "100g chicken breast", data["parsed_food_item"])
}

func TestCalculateMacrosMissingFields(t *testing.T) {
	app := newApp(&macroServiceMock{}, &favoriteServiceMock{}, &userServiceMock{})

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/calculate-macros", fiber.Map{
		"foodDescription": "toast",
	}))

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	body := decodeBody(t, res)
	assert.Equal(t, false, body["success"])
}

func TestCalculateMacrosZeroResultSuggestion(t *testing.T) {
	macroSvc := &macroServiceMock{calculateErr: domain.ErrZeroMacros}
	app := newApp(macroSvc, &favoriteServiceMock{}, &userServiceMock{})

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/calculate-macros", fiber.Map{
		"foodDescription": "asdfgh",
		"userId":          "user-1",
	}))

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	body := decodeBody(t, res)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["message"], `"asdfgh"`)
	assert.NotEmpty(t, body["suggestion"])
}

func TestCalculateImageMacrosRequiresImage(t *testing.T) {
	app := newApp(&macroServiceMock{}, &favoriteServiceMock{}, &userServiceMock{})

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	_ = writer.WriteField("userId", "user-1")
	_ = writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/calculate-image-macros", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	res, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestCalculateImageMacrosAccepted(t *testing.T) {
	macroSvc := &macroServiceMock{calculateRes: domain.CalculateMacrosResponse{
		MacroRecord: domain.MacroRecord{ProteinG: 20, CarbsG: 5, FatsG: 10, Calories: 190, ParsedFoodItem: "omelette"},
	}}
	app := newApp(macroSvc, &favoriteServiceMock{}, &userServiceMock{})

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	_ = writer.WriteField("userId", "user-1")
	part, err := writer.CreateFormFile("image", "meal.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00})
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/calculate-image-macros", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	res, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	body := decodeBody(t, res)
	assert.Equal(t, true, body["success"])
}

func TestCalculateBarcodeMacrosStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"malformed barcode", domain.ErrInvalidBarcode, http.StatusBadRequest},
		{"upstream down", domain.ErrUpstreamUnavailable, http.StatusBadGateway},
		{"unknown product", domain.ErrProductNotFound, http.StatusNotFound},
		{"no nutrition data", domain.ErrInsufficientNutrient, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp(&macroServiceMock{barcodeErr: tt.serviceErr}, &favoriteServiceMock{}, &userServiceMock{})

			res, err := app.Test(jsonRequest(http.MethodPost, "/api/barcode-macros", fiber.Map{
				"barcode": "5000112637922",
				"userId":  "user-1",
			}))

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.StatusCode)
		})
	}
}

func TestGetDayMacrosRejectsBadDate(t *testing.T) {
	app := newApp(&macroServiceMock{}, &favoriteServiceMock{}, &userServiceMock{})

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/day-macros/user-1/28-08-2026x", nil))

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestGetTodayMacrosEmptyMessage(t *testing.T) {
	app := newApp(&macroServiceMock{dayRes: domain.DayMacrosResponse{Date: "2026-08-28"}}, &favoriteServiceMock{}, &userServiceMock{})

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/today-macros/user-1", nil))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	body := decodeBody(t, res)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, domain.MessageNoEntriesToday, data["message"])
}

func TestGetPastMacrosRejectsBadDays(t *testing.T) {
	app := newApp(&macroServiceMock{pastErr: domain.ErrInvalidDaysParam}, &favoriteServiceMock{}, &userServiceMock{})

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/past-macros/user-1/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/past-macros/user-1/31", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestDeleteMacroLogStatusMapping(t *testing.T) {
	app := newApp(&macroServiceMock{deleteErr: domain.ErrMacroLogNotFound}, &favoriteServiceMock{}, &userServiceMock{})

	res, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/macro-log/log-1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, "userId query param is required")

	res, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/macro-log/log-1?userId=user-2", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestAddFavoriteConflict(t *testing.T) {
	app := newApp(&macroServiceMock{}, &favoriteServiceMock{addErr: domain.ErrFavoriteAlreadyExists}, &userServiceMock{})

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/favorites/user-1", fiber.Map{
		"foodItem": "overnight oats",
		"protein":  12.0,
		"carbs":    45.0,
		"fats":     9.0,
		"calories": 312.0,
	}))

	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

func TestRenameFavoriteBlankName(t *testing.T) {
	app := newApp(&macroServiceMock{}, &favoriteServiceMock{}, &userServiceMock{})

	res, err := app.Test(jsonRequest(http.MethodPut, "/api/favorites/user-1/fav-1", fiber.Map{
		"foodItem": "   ",
	}))

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	body := decodeBody(t, res)
	assert.Equal(t, domain.MessageFoodItemRequired, body["error"])
}

func TestAddToMealsRouteResolvesBeforeAddFavorite(t *testing.T) {
	favoriteSvc := &favoriteServiceMock{mealRes: domain.MacroLogResponse{FoodItem: "greek salad"}}
	app := newApp(&macroServiceMock{}, favoriteSvc, &userServiceMock{})

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/favorites/user-1/add-to-meals", fiber.Map{
		"favoriteId": "fav-1",
	}))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	body := decodeBody(t, res)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "greek salad", data["foodItem"])
}

func TestAddToMealsMissingFavorite(t *testing.T) {
	app := newApp(&macroServiceMock{}, &favoriteServiceMock{mealErr: domain.ErrFavoriteNotFound}, &userServiceMock{})

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/favorites/user-1/add-to-meals", fiber.Map{
		"favoriteId": "fav-404",
	}))

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestMigrateUser(t *testing.T) {
	userSvc := &userServiceMock{res: domain.MigrateUserResponse{MacroLogsMoved: 4, FavoriteFoodsMoved: 2}}
	app := newApp(&macroServiceMock{}, &favoriteServiceMock{}, userSvc)

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/migrate-user", fiber.Map{
		"telegramId":     "12345",
		"supabaseUserId": "uuid-abc",
	}))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	body := decodeBody(t, res)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(4), data["macroLogsMoved"])

	res, err = app.Test(jsonRequest(http.MethodPost, "/api/migrate-user", fiber.Map{
		"telegramId": "12345",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
