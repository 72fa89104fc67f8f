package queries

import (
	"context"
	"database/sql"
	"errors"

	"sokoni/internal/core/domain/model/delivery"
	"sokoni/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetRiderStatsQueryHandler computes a rider's earnings dashboard.
type GetRiderStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetRiderStatsQueryHandler creates a handler for rider stats reads.
func NewGetRiderStatsQueryHandler(db *gorm.DB) GetRiderStatsQueryHandler {
	return GetRiderStatsQueryHandler{db: db}
}

// Handle executes the read. An unregistered rider yields an ObjectNotFoundError.
func (h GetRiderStatsQueryHandler) Handle(ctx context.Context, query GetRiderStatsQuery) (RiderStats, error) {
	if err := query.Validate(); err != nil {
		return RiderStats{}, err
	}

	stats := RiderStats{RiderID: query.RiderID()}

	row := h.db.WithContext(ctx).Raw(`
		SELECT is_available, is_verified, total_deliveries, total_earnings
		FROM riders
		WHERE id = ?
	`, query.RiderID().Bytes()).Row()

	err := row.Scan(&stats.IsAvailable, &stats.IsVerified, &stats.TotalDeliveries, &stats.TotalEarnings)
	if errors.Is(err, sql.ErrNoRows) {
		return RiderStats{}, errs.NewObjectNotFoundError("riderID", query.RiderID().String())
	}
	if err != nil {
		return RiderStats{}, err
	}

	row = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FILTER (WHERE status = ? AND delivered_at::date = CURRENT_DATE),
		       COALESCE(SUM(rider_earnings) FILTER (WHERE status = ? AND delivered_at::date = CURRENT_DATE), 0),
		       COUNT(*) FILTER (WHERE status NOT IN (?, ?))
		FROM deliveries
		WHERE rider_id = ?
	`, int(delivery.Delivered), int(delivery.Delivered),
		int(delivery.Delivered), int(delivery.Failed),
		query.RiderID().Bytes()).Row()

	err = row.Scan(&stats.TodayDeliveries, &stats.TodayEarnings, &stats.ActiveDeliveries)
	if err != nil {
		return RiderStats{}, err
	}
	return stats, nil
}
