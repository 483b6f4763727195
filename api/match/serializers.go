package match

import (
	"time"

	"github.com/nikhildhanda04/vmatch/db/model"
)

type OutMatch struct {
	MatchID   string      `json:"match_id"`
	User      *model.User `json:"user"`
	CreatedAt time.Time   `json:"created_at"`
}
