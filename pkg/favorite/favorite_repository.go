package favorite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/macromate/macromate-backend/domain"
	"github.com/macromate/macromate-backend/entities"
)

type (
	FavoriteRepository interface {
		CreateFavorite(ctx context.Context, favorite *entities.FavoriteFood) error
		GetFavorites(ctx context.Context, userID string) ([]*entities.FavoriteFood, error)
		GetFavoriteByID(ctx context.Context, favoriteID, userID string) (*entities.FavoriteFood, error)
		DeleteFavorite(ctx context.Context, favoriteID, userID string) (*entities.FavoriteFood, error)
		RenameFavorite(ctx context.Context, favoriteID, userID, foodItem string) (*entities.FavoriteFood, error)
		UpdateFavoriteOwner(ctx context.Context, oldUserID, newUserID string) (int64, error)
	}

	favoriteRepository struct {
		db *gorm.DB
	}
)

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// CreateFavorite relies on the uq_favorite_user_food unique index for
// (user_id, food_item) uniqueness, so a duplicate surfaces as a single
// constraint violation instead of a check-then-insert race.
func (r *favoriteRepository) CreateFavorite(ctx context.Context, favorite *entities.FavoriteFood) error {
	if err := r.db.WithContext(ctx).Create(favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrFavoriteAlreadyExists
		}
		return err
	}
	return nil
}

func (r *favoriteRepository) GetFavorites(ctx context.Context, userID string) ([]*entities.FavoriteFood, error) {
	var favorites []*entities.FavoriteFood
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *favoriteRepository) GetFavoriteByID(ctx context.Context, favoriteID, userID string) (*entities.FavoriteFood, error) {
	var favorite entities.FavoriteFood
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", favoriteID, userID).
		First(&favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFavoriteNotFound
		}
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) DeleteFavorite(ctx context.Context, favoriteID, userID string) (*entities.FavoriteFood, error) {
	favorite, err := r.GetFavoriteByID(ctx, favoriteID, userID)
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", favoriteID, userID).
		Delete(&entities.FavoriteFood{}).Error; err != nil {
		return nil, err
	}
	return favorite, nil
}

func (r *favoriteRepository) RenameFavorite(ctx context.Context, favoriteID, userID, foodItem string) (*entities.FavoriteFood, error) {
	favorite, err := r.GetFavoriteByID(ctx, favoriteID, userID)
	if err != nil {
		return nil, err
	}

	favorite.FoodItem = foodItem
	if err := r.db.WithContext(ctx).Save(favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrFavoriteAlreadyExists
		}
		return nil, err
	}
	return favorite, nil
}

func (r *favoriteRepository) UpdateFavoriteOwner(ctx context.Context, oldUserID, newUserID string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entities.FavoriteFood{}).
		Where("user_id = ?", oldUserID).
		Update("user_id", newUserID)
	return result.RowsAffected, result.Error
}
