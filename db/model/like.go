package model

type LikeStatus string

// A like is recorded as intent to match, so the positive status is MATCHED.
// PENDING means the other side has not responded yet.
const (
	StatusPending  LikeStatus = "PENDING"
	StatusMatched  LikeStatus = "MATCHED"
	StatusRejected LikeStatus = "REJECTED"
)

// Like is one user's decision about another. There is at most one row per
// ordered (from, to) pair; resubmission overwrites the status in place
// rather than appending history.
type Like struct {
	Base
	FromID string     `gorm:"size:36;not null;uniqueIndex:idx_likes_from_to" json:"from_id"`
	ToID   string     `gorm:"size:36;not null;uniqueIndex:idx_likes_from_to" json:"to_id"`
	Status LikeStatus `gorm:"size:16;not null" json:"status"`
	From   *User      `gorm:"foreignKey:FromID" json:"from,omitempty"`
	To     *User      `gorm:"foreignKey:ToID" json:"to,omitempty"`
}
