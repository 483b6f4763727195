package model

// Message belongs to exactly one match and is immutable once created.
type Message struct {
	Base
	MatchID  string `gorm:"size:36;not null;index" json:"match_id"`
	SenderID string `gorm:"size:36;not null" json:"sender_id"`
	Text     string `gorm:"not null" json:"text"`
	Match    *Match `gorm:"foreignKey:MatchID" json:"-"`
	Sender   *User  `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
}
