package matching

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nikhildhanda04/vmatch/db/model"
	"github.com/nikhildhanda04/vmatch/notify"
)

// Service owns the like ledger and the match records. Every write is an
// idempotent upsert backed by a unique index, so duplicate or concurrent
// submissions converge on the same end state without in-process locking.
type Service struct {
	db         *gorm.DB
	dispatcher notify.Dispatcher
	logger     *log.Logger
	now        func() time.Time
}

func NewService(gdb *gorm.DB, dispatcher notify.Dispatcher, logger *log.Logger) *Service {
	return &Service{db: gdb, dispatcher: dispatcher, logger: logger, now: time.Now}
}

// SubmitAction records fromID's decision about toID and reports whether it
// completed a mutual match.
func (s *Service) SubmitAction(ctx context.Context, fromID, toID string, status model.LikeStatus) (bool, error) {
	if status != model.StatusMatched && status != model.StatusRejected {
		return false, ErrInvalidStatus
	}
	if fromID == toID {
		return false, ErrSelfAction
	}

	var target model.User
	if err := s.db.WithContext(ctx).First(&target, "id = ?", toID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrUserNotFound
		}
		return false, err
	}

	if status == model.StatusMatched {
		ok, err := s.CanSubmitLike(ctx, fromID, s.now())
		if err != nil {
			return false, err
		}
		if !ok {
			return false, ErrQuotaExceeded
		}
	}

	// Whether the other side has already acted toward the caller.
	var reciprocal model.Like
	err := s.db.WithContext(ctx).
		Where(&model.Like{FromID: toID, ToID: fromID}).
		First(&reciprocal).
		Error
	hasReciprocal := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	if err := s.upsertLike(ctx, fromID, toID, status); err != nil {
		return false, err
	}

	if status == model.StatusMatched && hasReciprocal && reciprocal.Status == model.StatusMatched {
		if err := s.upsertMatch(ctx, fromID, toID); err != nil {
			return false, err
		}
		s.notifyBoth(ctx, fromID, toID)
		return true, nil
	}

	if status == model.StatusMatched && !hasReciprocal {
		s.dispatch(ctx, notify.Event{Type: notify.EventLikeReceived, UserID: toID, ActorID: fromID})
	}
	return false, nil
}

// RespondToLike resolves a pending incoming like addressed to callerID.
func (s *Service) RespondToLike(ctx context.Context, callerID, likeID string, status model.LikeStatus) (bool, error) {
	if status != model.StatusMatched && status != model.StatusRejected {
		return false, ErrInvalidStatus
	}

	var like model.Like
	if err := s.db.WithContext(ctx).First(&like, "id = ?", likeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrLikeNotFound
		}
		return false, err
	}
	// not-found rather than forbidden, so like ids cannot be probed
	if like.ToID != callerID {
		return false, ErrLikeNotFound
	}
	if like.Status != model.StatusPending {
		return false, ErrAlreadyResolved
	}

	if err := s.db.WithContext(ctx).
		Model(&model.Like{}).
		Where("id = ?", like.ID).
		Update("status", status).
		Error; err != nil {
		return false, err
	}
	if status != model.StatusMatched {
		return false, nil
	}

	// Keep the ledger self-consistent: a match row must always be
	// explicable by two MATCHED likes.
	if err := s.upsertLike(ctx, callerID, like.FromID, model.StatusMatched); err != nil {
		return false, err
	}
	if err := s.upsertMatch(ctx, callerID, like.FromID); err != nil {
		return false, err
	}
	s.notifyBoth(ctx, callerID, like.FromID)
	return true, nil
}

// IncomingLikes lists pending likes addressed to userID, newest first, with
// the liker's profile preloaded.
func (s *Service) IncomingLikes(ctx context.Context, userID string) ([]model.Like, error) {
	likes := make([]model.Like, 0)
	err := s.db.WithContext(ctx).
		Where(&model.Like{ToID: userID, Status: model.StatusPending}).
		Preload("From").
		Order("created_at DESC").
		Find(&likes).
		Error
	return likes, err
}

// Matches lists every match userID belongs to, newest first.
func (s *Service) Matches(ctx context.Context, userID string) ([]model.Match, error) {
	matches := make([]model.Match, 0)
	err := s.db.WithContext(ctx).
		Where("user1_id = ? OR user2_id = ?", userID, userID).
		Preload("User1").
		Preload("User2").
		Order("created_at DESC").
		Find(&matches).
		Error
	return matches, err
}

// upsertLike writes the (from, to) row to the submitted status, creating it
// if absent. The unique index on (from_id, to_id) makes retries converge.
func (s *Service) upsertLike(ctx context.Context, fromID, toID string, status model.LikeStatus) error {
	like := model.Like{FromID: fromID, ToID: toID, Status: status}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "from_id"}, {Name: "to_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"status": status, "updated_at": s.now()}),
		}).
		Create(&like).
		Error
}

// upsertMatch creates the canonical match row for the unordered pair. The
// unique index on the normalized pair is the concurrency boundary: both
// sides of a simultaneous mutual like still yield exactly one row.
func (s *Service) upsertMatch(ctx context.Context, a, b string) error {
	u1, u2 := OrderPair(a, b)
	match := model.Match{User1ID: u1, User2ID: u2}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user1_id"}, {Name: "user2_id"}},
			DoNothing: true,
		}).
		Create(&match).
		Error
}

// OrderPair normalizes two user ids so the lexicographically smaller one
// sorts first.
func OrderPair(a, b string) (string, string) {
	if a < b {
		return a, b
	}
	return b, a
}

func (s *Service) notifyBoth(ctx context.Context, a, b string) {
	s.dispatch(ctx, notify.Event{Type: notify.EventMatchFormed, UserID: a, ActorID: b})
	s.dispatch(ctx, notify.Event{Type: notify.EventMatchFormed, UserID: b, ActorID: a})
}

// dispatch is fire-and-forget: a failed hand-off is logged and swallowed,
// never surfaced to the caller and never rolled back into ledger state.
func (s *Service) dispatch(ctx context.Context, e notify.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Notify(ctx, e); err != nil {
		s.logger.Printf("notify %s -> %s: %v", e.Type, e.UserID, err)
	}
}
