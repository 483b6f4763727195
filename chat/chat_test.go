package chat

import (
	"context"
	"fmt"
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nikhildhanda04/vmatch/db/model"
)

func newTestStore(t *testing.T) *Store {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&model.User{}, &model.Like{}, &model.Match{}, &model.Message{}))
	return NewStore(gdb, log.New(io.Discard, "", 0))
}

func seedMatch(t *testing.T, s *Store) *model.Match {
	for _, u := range []struct{ id, name string }{
		{"alice", "Alice Kumar"},
		{"bob", "Bob Singh"},
		{"carol", "Carol Iyer"},
	} {
		require.NoError(t, s.db.Create(&model.User{Base: model.Base{ID: u.id}, Email: u.id + "@campus.test", Name: u.name}).Error)
	}
	m := &model.Match{User1ID: "alice", User2ID: "bob"}
	require.NoError(t, s.db.Create(m).Error)
	return m
}

func TestSendAndListRoundTrip(t *testing.T) {
	s := newTestStore(t)
	m := seedMatch(t, s)
	ctx := context.Background()

	for _, text := range []string{"hey!", "how was the lecture?", "coffee later?"} {
		msg, err := s.SendMessage(ctx, m.ID, "alice", text)
		require.NoError(t, err)
		assert.Equal(t, text, msg.Text)
		assert.Equal(t, "alice", msg.SenderID)
		time.Sleep(2 * time.Millisecond)
	}

	msgs, err := s.ListMessages(ctx, m.ID, "bob")
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "hey!", msgs[0].Text)
	assert.Equal(t, "how was the lecture?", msgs[1].Text)
	assert.Equal(t, "coffee later?", msgs[2].Text)
}

func TestSendMessageValidation(t *testing.T) {
	s := newTestStore(t)
	m := seedMatch(t, s)
	ctx := context.Background()

	t.Run("empty text", func(t *testing.T) {
		_, err := s.SendMessage(ctx, m.ID, "alice", "")
		assert.ErrorIs(t, err, ErrEmptyText)
	})

	t.Run("whitespace only", func(t *testing.T) {
		_, err := s.SendMessage(ctx, m.ID, "alice", "   \n\t ")
		assert.ErrorIs(t, err, ErrEmptyText)
	})

	t.Run("text is trimmed", func(t *testing.T) {
		msg, err := s.SendMessage(ctx, m.ID, "bob", "  hi there  ")
		require.NoError(t, err)
		assert.Equal(t, "hi there", msg.Text)
	})
}

func TestConversationAuthorization(t *testing.T) {
	s := newTestStore(t)
	m := seedMatch(t, s)
	ctx := context.Background()

	t.Run("outsider cannot list", func(t *testing.T) {
		_, err := s.ListMessages(ctx, m.ID, "carol")
		assert.ErrorIs(t, err, ErrNotParticipant)
	})

	t.Run("outsider cannot send", func(t *testing.T) {
		_, err := s.SendMessage(ctx, m.ID, "carol", "let me in")
		assert.ErrorIs(t, err, ErrNotParticipant)
	})

	t.Run("unknown match", func(t *testing.T) {
		_, err := s.ListMessages(ctx, "no-such-match", "alice")
		assert.ErrorIs(t, err, ErrMatchNotFound)
		_, err = s.SendMessage(ctx, "no-such-match", "alice", "hello?")
		assert.ErrorIs(t, err, ErrMatchNotFound)
	})
}

func TestListMessagesWindow(t *testing.T) {
	s := newTestStore(t)
	m := seedMatch(t, s)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	total := MessagePageSize + 5
	for i := 0; i < total; i++ {
		msg := &model.Message{MatchID: m.ID, SenderID: "alice", Text: fmt.Sprintf("msg %03d", i)}
		msg.CreatedAt = base.Add(time.Duration(i) * time.Second)
		require.NoError(t, s.db.Create(msg).Error)
	}

	msgs, err := s.ListMessages(ctx, m.ID, "alice")
	require.NoError(t, err)
	require.Len(t, msgs, MessagePageSize)
	// the oldest five fell out of the window, order stays ascending
	assert.Equal(t, "msg 005", msgs[0].Text)
	assert.Equal(t, fmt.Sprintf("msg %03d", total-1), msgs[len(msgs)-1].Text)
}
