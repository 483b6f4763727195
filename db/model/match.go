package model

// Match is a confirmed mutual connection. The pair is stored with
// User1ID < User2ID so the unique index holds exactly one row per
// unordered pair and creation stays idempotent under concurrent writes.
type Match struct {
	Base
	User1ID string `gorm:"size:36;not null;uniqueIndex:idx_matches_pair" json:"user1_id"`
	User2ID string `gorm:"size:36;not null;uniqueIndex:idx_matches_pair" json:"user2_id"`
	User1   *User  `gorm:"foreignKey:User1ID" json:"user1,omitempty"`
	User2   *User  `gorm:"foreignKey:User2ID" json:"user2,omitempty"`
}

func (m *Match) HasParticipant(userID string) bool {
	return m.User1ID == userID || m.User2ID == userID
}

// Other returns the participant that is not userID.
func (m *Match) Other(userID string) string {
	if m.User1ID == userID {
		return m.User2ID
	}
	return m.User1ID
}
