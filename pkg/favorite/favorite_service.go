package favorite

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/macromate/macromate-backend/domain"
	"github.com/macromate/macromate-backend/entities"
	"github.com/macromate/macromate-backend/pkg/macro"
)

type (
	FavoriteService interface {
		GetFavorites(ctx context.Context, userID string) (domain.FavoritesListResponse, error)
		AddFavorite(ctx context.Context, req domain.AddFavoriteRequest, userID string) (domain.FavoriteResponse, error)
		DeleteFavorite(ctx context.Context, favoriteID, userID string) (domain.FavoriteResponse, error)
		RenameFavorite(ctx context.Context, favoriteID, userID string, req domain.RenameFavoriteRequest) (domain.FavoriteResponse, error)
		AddToTodaysMeals(ctx context.Context, favoriteID, userID string) (domain.MacroLogResponse, error)
	}

	favoriteService struct {
		favoriteRepository FavoriteRepository
		macroRepository    macro.MacroRepository
	}
)

func NewFavoriteService(favoriteRepository FavoriteRepository, macroRepository macro.MacroRepository) FavoriteService {
	return &favoriteService{
		favoriteRepository: favoriteRepository,
		macroRepository:    macroRepository,
	}
}

func (s *favoriteService) GetFavorites(ctx context.Context, userID string) (domain.FavoritesListResponse, error) {
	favorites, err := s.favoriteRepository.GetFavorites(ctx, userID)
	if err != nil {
		return domain.FavoritesListResponse{}, err
	}

	response := domain.FavoritesListResponse{
		Favorites: make([]domain.FavoriteResponse, 0, len(favorites)),
	}
	for _, favorite := range favorites {
		response.Favorites = append(response.Favorites, favoriteResponse(favorite))
	}
	return response, nil
}

func (s *favoriteService) AddFavorite(ctx context.Context, req domain.AddFavoriteRequest, userID string) (domain.FavoriteResponse, error) {
	favorite := &entities.FavoriteFood{
		ID:       uuid.New(),
		UserID:   userID,
		FoodItem: req.FoodItem,
		ProteinG: macro.Round1(*req.Protein),
		CarbsG:   macro.Round1(*req.Carbs),
		FatsG:    macro.Round1(*req.Fats),
		Calories: macro.Round1(*req.Calories),
	}

	if err := s.favoriteRepository.CreateFavorite(ctx, favorite); err != nil {
		return domain.FavoriteResponse{}, err
	}
	return favoriteResponse(favorite), nil
}

func (s *favoriteService) DeleteFavorite(ctx context.Context, favoriteID, userID string) (domain.FavoriteResponse, error) {
	deleted, err := s.favoriteRepository.DeleteFavorite(ctx, favoriteID, userID)
	if err != nil {
		return domain.FavoriteResponse{}, err
	}
	return favoriteResponse(deleted), nil
}

func (s *favoriteService) RenameFavorite(ctx context.Context, favoriteID, userID string, req domain.RenameFavoriteRequest) (domain.FavoriteResponse, error) {
	updated, err := s.favoriteRepository.RenameFavorite(ctx, favoriteID, userID, strings.TrimSpace(req.FoodItem))
	if err != nil {
		return domain.FavoriteResponse{}, err
	}
	return favoriteResponse(updated), nil
}

// AddToTodaysMeals copies a favorite into the meal log under the current
// date without touching the favorite itself.
func (s *favoriteService) AddToTodaysMeals(ctx context.Context, favoriteID, userID string) (domain.MacroLogResponse, error) {
	favorite, err := s.favoriteRepository.GetFavoriteByID(ctx, favoriteID, userID)
	if err != nil {
		return domain.MacroLogResponse{}, err
	}

	now := time.Now().UTC()
	entry := &entities.MacroLog{
		ID:       uuid.New(),
		UserID:   userID,
		LogDate:  now.Format("2006-01-02"),
		MealTime: now,
		FoodItem: favorite.FoodItem,
		ProteinG: favorite.ProteinG,
		CarbsG:   favorite.CarbsG,
		FatsG:    favorite.FatsG,
		Calories: favorite.Calories,
	}

	if err := s.macroRepository.CreateLog(ctx, entry); err != nil {
		return domain.MacroLogResponse{}, err
	}

	return domain.MacroLogResponse{
		ID:       entry.ID.String(),
		FoodItem: entry.FoodItem,
		Protein:  entry.ProteinG,
		Carbs:    entry.CarbsG,
		Fats:     entry.FatsG,
		Calories: entry.Calories,
		MealTime: entry.MealTime.Format(time.RFC3339),
		Date:     entry.LogDate,
	}, nil
}

func favoriteResponse(favorite *entities.FavoriteFood) domain.FavoriteResponse {
	return domain.FavoriteResponse{
		ID:        favorite.ID.String(),
		FoodItem:  favorite.FoodItem,
		Protein:   favorite.ProteinG,
		Carbs:     favorite.CarbsG,
		Fats:      favorite.FatsG,
		Calories:  favorite.Calories,
		CreatedAt: favorite.CreatedAt.Format(time.RFC3339),
	}
}
