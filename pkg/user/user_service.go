package user

import (
	"context"

	"github.com/macromate/macromate-backend/domain"
	"github.com/macromate/macromate-backend/pkg/favorite"
	"github.com/macromate/macromate-backend/pkg/macro"
)

type (
	UserService interface {
		MigrateUser(ctx context.Context, req domain.MigrateUserRequest) (domain.MigrateUserResponse, error)
	}

	userService struct {
		macroRepository    macro.MacroRepository
		favoriteRepository favorite.FavoriteRepository
	}
)

func NewUserService(macroRepository macro.MacroRepository, favoriteRepository favorite.FavoriteRepository) UserService {
	return &userService{
		macroRepository:    macroRepository,
		favoriteRepository: favoriteRepository,
	}
}

// MigrateUser re-owns every row under the old Telegram-derived id to the
// Supabase auth user id, across both tables.
func (s *userService) MigrateUser(ctx context.Context, req domain.MigrateUserRequest) (domain.MigrateUserResponse, error) {
	logsMoved, err := s.macroRepository.UpdateLogOwner(ctx, req.TelegramID, req.SupabaseUserID)
	if err != nil {
		return domain.MigrateUserResponse{}, err
	}

	favoritesMoved, err := s.favoriteRepository.UpdateFavoriteOwner(ctx, req.TelegramID, req.SupabaseUserID)
	if err != nil {
		return domain.MigrateUserResponse{}, err
	}

	return domain.MigrateUserResponse{
		MacroLogsMoved:     logsMoved,
		FavoriteFoodsMoved: favoritesMoved,
	}, nil
}
