package favorite_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macromate/macromate-backend/domain"
	"github.com/macromate/macromate-backend/entities"
	"github.com/macromate/macromate-backend/pkg/favorite"
)

type favoriteRepoMock struct {
	created   []*entities.FavoriteFood
	favorites []*entities.FavoriteFood
	createErr error
	getErr    error
	renamed   *entities.FavoriteFood
	renameErr error
}

func (m *favoriteRepoMock) CreateFavorite(ctx context.Context, favorite *entities.FavoriteFood) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, favorite)
	return nil
}

func (m *favoriteRepoMock) GetFavorites(ctx context.Context, userID string) ([]*entities.FavoriteFood, error) {
	return m.favorites, nil
}

func (m *favoriteRepoMock) GetFavoriteByID(ctx context.Context, favoriteID, userID string) (*entities.FavoriteFood, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, f := range m.favorites {
		if f.ID.String() == favoriteID && f.UserID == userID {
			return f, nil
		}
	}
	return nil, domain.ErrFavoriteNotFound
}

func (m *favoriteRepoMock) DeleteFavorite(ctx context.Context, favoriteID, userID string) (*entities.FavoriteFood, error) {
	return m.GetFavoriteByID(ctx, favoriteID, userID)
}

func (m *favoriteRepoMock) RenameFavorite(ctx context.Context, favoriteID, userID, foodItem string) (*entities.FavoriteFood, error) {
	if m.renameErr != nil {
		return nil, m.renameErr
	}
	m.renamed = &entities.FavoriteFood{UserID: userID, FoodItem: foodItem}
	return m.renamed, nil
}

func (m *favoriteRepoMock) UpdateFavoriteOwner(ctx context.Context, oldUserID, newUserID string) (int64, error) {
	return 0, nil
}

type macroRepoMock struct {
	created []*entities.MacroLog
}

func (m *macroRepoMock) CreateLog(ctx context.Context, log *entities.MacroLog) error {
	m.created = append(m.created, log)
	return nil
}

func (m *macroRepoMock) GetLogsForDate(ctx context.Context, userID, date string) ([]*entities.MacroLog, error) {
	return nil, nil
}

func (m *macroRepoMock) GetLogsInRange(ctx context.Context, userID, startDate, endDate string) ([]*entities.MacroLog, error) {
	return nil, nil
}

func (m *macroRepoMock) DeleteLog(ctx context.Context, logID, userID string) (*entities.MacroLog, error) {
	return nil, domain.ErrMacroLogNotFound
}

func (m *macroRepoMock) UpdateLogOwner(ctx context.Context, oldUserID, newUserID string) (int64, error) {
	return 0, nil
}

func floatPtr(v float64) *float64 { return &v }

func TestAddFavoriteRoundsValues(t *testing.T) {
	repo := &favoriteRepoMock{}
	svc := favorite.NewFavoriteService(repo, &macroRepoMock{})

	res, err := svc.AddFavorite(context.Background(), domain.AddFavoriteRequest{
		FoodItem: "overnight oats",
		Protein:  floatPtr(12.345),
		Carbs:    floatPtr(45.0),
		Fats:     floatPtr(8.96),
		Calories: floatPtr(312.49),
	}, "user-1")

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, 12.3, res.Protein)
	assert.Equal(t, 9.0, res.Fats)
	assert.Equal(t, 312.5, res.Calories)
	assert.Equal(t, "overnight oats", res.FoodItem)
}

func TestAddFavoriteDuplicateConflict(t *testing.T) {
	repo := &favoriteRepoMock{createErr: domain.ErrFavoriteAlreadyExists}
	svc := favorite.NewFavoriteService(repo, &macroRepoMock{})

	_, err := svc.AddFavorite(context.Background(), domain.AddFavoriteRequest{
		FoodItem: "overnight oats",
		Protein:  floatPtr(12),
		Carbs:    floatPtr(45),
		Fats:     floatPtr(9),
		Calories: floatPtr(312),
	}, "user-1")

	assert.ErrorIs(t, err, domain.ErrFavoriteAlreadyExists)
}

func TestDeleteFavoriteWrongOwner(t *testing.T) {
	owned := &entities.FavoriteFood{ID: uuid.New(), UserID: "user-1", FoodItem: "ramen"}
	repo := &favoriteRepoMock{favorites: []*entities.FavoriteFood{owned}}
	svc := favorite.NewFavoriteService(repo, &macroRepoMock{})

	_, err := svc.DeleteFavorite(context.Background(), owned.ID.String(), "user-2")
	assert.ErrorIs(t, err, domain.ErrFavoriteNotFound)

	res, err := svc.DeleteFavorite(context.Background(), owned.ID.String(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "ramen", res.FoodItem)
}

func TestRenameFavoriteTrimsName(t *testing.T) {
	repo := &favoriteRepoMock{}
	svc := favorite.NewFavoriteService(repo, &macroRepoMock{})

	res, err := svc.RenameFavorite(context.Background(), uuid.New().String(), "user-1", domain.RenameFavoriteRequest{
		FoodItem: "  protein shake  ",
	})

	require.NoError(t, err)
	assert.Equal(t, "protein shake", res.FoodItem)
}

func TestAddToTodaysMealsCopiesFavorite(t *testing.T) {
	fav := &entities.FavoriteFood{
		ID:       uuid.New(),
		UserID:   "user-1",
		FoodItem: "greek salad",
		ProteinG: 6.5,
		CarbsG:   12.0,
		FatsG:    18.2,
		Calories: 240.0,
	}
	favRepo := &favoriteRepoMock{favorites: []*entities.FavoriteFood{fav}}
	macroRepo := &macroRepoMock{}
	svc := favorite.NewFavoriteService(favRepo, macroRepo)

	res, err := svc.AddToTodaysMeals(context.Background(), fav.ID.String(), "user-1")

	require.NoError(t, err)
	require.Len(t, macroRepo.created, 1)
	logged := macroRepo.created[0]
	assert.Equal(t, "greek salad", logged.FoodItem)
	assert.Equal(t, 6.5, logged.ProteinG)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), logged.LogDate)
	assert.NotEqual(t, fav.ID.String(), res.ID, "the meal entry gets its own id")
	assert.Equal(t, 240.0, res.Calories)
}

func TestAddToTodaysMealsMissingFavorite(t *testing.T) {
	svc := favorite.NewFavoriteService(&favoriteRepoMock{}, &macroRepoMock{})

	_, err := svc.AddToTodaysMeals(context.Background(), uuid.New().String(), "user-1")

	assert.ErrorIs(t, err, domain.ErrFavoriteNotFound)
}
