package matching

import (
	"context"
	"time"

	"github.com/nikhildhanda04/vmatch/db/model"
)

// DailyLikeLimit caps positive actions per user per calendar day.
const DailyLikeLimit = 10

// CanSubmitLike reports whether userID may record one more like as of the
// given instant. The day boundary is wall-clock midnight in the server's
// local timezone; likes recorded before midnight were yesterday's and do
// not count.
func (s *Service) CanSubmitLike(ctx context.Context, userID string, asOf time.Time) (bool, error) {
	y, m, d := asOf.Date()
	startOfDay := time.Date(y, m, d, 0, 0, 0, 0, asOf.Location())

	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.Like{}).
		Where("from_id = ? AND status = ? AND created_at >= ?", userID, model.StatusMatched, startOfDay).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count < DailyLikeLimit, nil
}
