package domain

var (
	MessageSuccessMigrateUser = "migration completed"
	MessageFailedMigrateUser  = "failed to migrate user data"
)

type (
	MigrateUserRequest struct {
		TelegramID     string `json:"telegramId" validate:"required"`
		SupabaseUserID string `json:"supabaseUserId" validate:"required"`
	}

	MigrateUserResponse struct {
		MacroLogsMoved     int64 `json:"macroLogsMoved"`
		FavoriteFoodsMoved int64 `json:"favoriteFoodsMoved"`
	}
)
