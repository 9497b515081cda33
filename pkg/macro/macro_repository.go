package macro

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/macromate/macromate-backend/domain"
	"github.com/macromate/macromate-backend/entities"
)

type (
	MacroRepository interface {
		CreateLog(ctx context.Context, log *entities.MacroLog) error
		GetLogsForDate(ctx context.Context, userID, date string) ([]*entities.MacroLog, error)
		GetLogsInRange(ctx context.Context, userID, startDate, endDate string) ([]*entities.MacroLog, error)
		DeleteLog(ctx context.Context, logID, userID string) (*entities.MacroLog, error)
		UpdateLogOwner(ctx context.Context, oldUserID, newUserID string) (int64, error)
	}

	macroRepository struct {
		db *gorm.DB
	}
)

func NewMacroRepository(db *gorm.DB) MacroRepository {
	return &macroRepository{db: db}
}

func (r *macroRepository) CreateLog(ctx context.Context, log *entities.MacroLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *macroRepository) GetLogsForDate(ctx context.Context, userID, date string) ([]*entities.MacroLog, error) {
	var logs []*entities.MacroLog
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND log_date = ?", userID, date).
		Order("meal_time asc").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *macroRepository) GetLogsInRange(ctx context.Context, userID, startDate, endDate string) ([]*entities.MacroLog, error) {
	var logs []*entities.MacroLog
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND log_date >= ? AND log_date < ?", userID, startDate, endDate).
		Order("log_date desc").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// DeleteLog removes the row matching both id and user id. The (id, user)
// match is the only ownership check in the system.
func (r *macroRepository) DeleteLog(ctx context.Context, logID, userID string) (*entities.MacroLog, error) {
	var log entities.MacroLog
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", logID, userID).
		First(&log).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMacroLogNotFound
		}
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", logID, userID).
		Delete(&entities.MacroLog{}).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *macroRepository) UpdateLogOwner(ctx context.Context, oldUserID, newUserID string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entities.MacroLog{}).
		Where("user_id = ?", oldUserID).
		Update("user_id", newUserID)
	return result.RowsAffected, result.Error
}
