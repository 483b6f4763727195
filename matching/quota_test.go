package matching

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikhildhanda04/vmatch/db/model"
)

func seedLikes(t *testing.T, s *Service, from string, n int, status model.LikeStatus, createdAt time.Time) {
	for i := 0; i < n; i++ {
		target := fmt.Sprintf("target-%s-%d", createdAt.Format("20060102"), i)
		createUser(t, s.db, target, "Target "+target)
		l := &model.Like{FromID: from, ToID: target, Status: status}
		l.CreatedAt = createdAt
		require.NoError(t, s.db.Create(l).Error)
	}
}

func TestQuotaEnforcement(t *testing.T) {
	ctx := context.Background()

	t.Run("eleventh like is refused and writes nothing", func(t *testing.T) {
		s, _ := newTestService(t)
		createUser(t, s.db, "u", "U Sharma")
		createUser(t, s.db, "fresh", "Fresh Face")
		seedLikes(t, s, "u", DailyLikeLimit, model.StatusMatched, time.Now())

		ok, err := s.CanSubmitLike(ctx, "u", time.Now())
		require.NoError(t, err)
		assert.False(t, ok)

		_, err = s.SubmitAction(ctx, "u", "fresh", model.StatusMatched)
		assert.ErrorIs(t, err, ErrQuotaExceeded)
		assert.Equal(t, int64(DailyLikeLimit), likeCount(t, s.db))
	})

	t.Run("passes are not rationed", func(t *testing.T) {
		s, _ := newTestService(t)
		createUser(t, s.db, "u", "U Sharma")
		createUser(t, s.db, "fresh", "Fresh Face")
		seedLikes(t, s, "u", DailyLikeLimit, model.StatusMatched, time.Now())

		mutual, err := s.SubmitAction(ctx, "u", "fresh", model.StatusRejected)
		require.NoError(t, err)
		assert.False(t, mutual)
		assert.Equal(t, int64(DailyLikeLimit+1), likeCount(t, s.db))
	})

	t.Run("yesterday's likes do not count", func(t *testing.T) {
		s, _ := newTestService(t)
		createUser(t, s.db, "u", "U Sharma")
		createUser(t, s.db, "fresh", "Fresh Face")
		seedLikes(t, s, "u", DailyLikeLimit, model.StatusMatched, time.Now().Add(-25*time.Hour))

		ok, err := s.CanSubmitLike(ctx, "u", time.Now())
		require.NoError(t, err)
		assert.True(t, ok)

		mutual, err := s.SubmitAction(ctx, "u", "fresh", model.StatusMatched)
		require.NoError(t, err)
		assert.False(t, mutual)
	})

	t.Run("pending and rejected rows do not count", func(t *testing.T) {
		s, _ := newTestService(t)
		createUser(t, s.db, "u", "U Sharma")
		seedLikes(t, s, "u", DailyLikeLimit, model.StatusRejected, time.Now())

		ok, err := s.CanSubmitLike(ctx, "u", time.Now())
		require.NoError(t, err)
		assert.True(t, ok)
	})
}
