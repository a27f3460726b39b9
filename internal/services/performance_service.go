package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "folio/internal/errors"
	"folio/internal/logger"
	"folio/internal/models"
	"folio/internal/portfolio"
)

// performanceService handles the monthly performance time series.
type performanceService struct {
	db *gorm.DB
}

// NewPerformanceService creates a new PerformanceServicer.
func NewPerformanceService(db *gorm.DB) PerformanceServicer {
	return &performanceService{db: db}
}

// GetHistory returns a user's performance points in chronological order.
// An absent collection yields an empty slice.
func (s *performanceService) GetHistory(userID string) ([]models.PerformancePoint, error) {
	points := []models.PerformancePoint{}
	if err := s.db.Where("user_id = ?", userID).
		Order("month_key ASC").
		Find(&points).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return points, nil
}

// Reconcile applies the monthly reconciliation rule for the given profit
// percentage and returns the updated history. The durable write is
// fire-and-forget: a failure is logged and the returned history still
// reflects the change, so the caller's view is never blocked on storage.
func (s *performanceService) Reconcile(userID string, now time.Time, profitPct float64, history []models.PerformancePoint) []models.PerformancePoint {
	monthKey := portfolio.MonthKey(now)
	action, point := portfolio.ReconcileMonthly(monthKey, profitPct, history)

	switch action {
	case portfolio.ActionAppend:
		point.UserID = userID
		if err := s.db.Create(&point).Error; err != nil {
			logger.Get().Errorw("failed to persist performance point",
				"month", monthKey,
				"error", err.Error(),
			)
		}
		return append(history, point)

	case portfolio.ActionUpdate:
		if err := s.db.Model(&models.PerformancePoint{}).
			Where("user_id = ? AND month_key = ?", userID, monthKey).
			Update("value", point.Value).Error; err != nil {
			logger.Get().Errorw("failed to update performance point",
				"month", monthKey,
				"error", err.Error(),
			)
		}
		updated := make([]models.PerformancePoint, len(history))
		copy(updated, history)
		updated[len(updated)-1].Value = point.Value
		return updated

	default:
		return history
	}
}

// Clear removes a user's entire performance history. Called when the last
// holding is removed: an empty portfolio has no performance to track.
func (s *performanceService) Clear(userID string) error {
	if err := s.db.Where("user_id = ?", userID).
		Delete(&models.PerformancePoint{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
