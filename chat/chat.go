package chat

import (
	"context"
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/nikhildhanda04/vmatch/db/model"
)

// MessagePageSize bounds a single fetch; the polling client re-reads the
// window every few seconds rather than holding a connection open.
const MessagePageSize = 100

var (
	ErrMatchNotFound  = errors.New("match not found")
	ErrNotParticipant = errors.New("caller is not part of this match")
	ErrEmptyText      = errors.New("message text is required")
)

// Store is the per-match ordered message log, gated by match membership.
type Store struct {
	db     *gorm.DB
	logger *log.Logger
}

func NewStore(gdb *gorm.DB, logger *log.Logger) *Store {
	return &Store{db: gdb, logger: logger}
}

// ListMessages returns up to the most recent MessagePageSize messages of
// the match, oldest first. The caller must be one of the two participants.
func (s *Store) ListMessages(ctx context.Context, matchID, callerID string) ([]model.Message, error) {
	if _, err := s.authorize(ctx, matchID, callerID); err != nil {
		return nil, err
	}
	msgs := make([]model.Message, 0)
	err := s.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("created_at DESC").
		Limit(MessagePageSize).
		Find(&msgs).
		Error
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

// SendMessage appends a message to the match's log and returns the
// persisted record. Messages are immutable once created.
func (s *Store) SendMessage(ctx context.Context, matchID, callerID, text string) (*model.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if _, err := s.authorize(ctx, matchID, callerID); err != nil {
		return nil, err
	}
	msg := &model.Message{MatchID: matchID, SenderID: callerID, Text: text}
	if err := s.db.WithContext(ctx).Create(msg).Error; err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *Store) authorize(ctx context.Context, matchID, callerID string) (*model.Match, error) {
	var m model.Match
	if err := s.db.WithContext(ctx).First(&m, "id = ?", matchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	if !m.HasParticipant(callerID) {
		return nil, ErrNotParticipant
	}
	return &m, nil
}
