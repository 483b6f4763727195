package like

import (
	"time"

	"github.com/nikhildhanda04/vmatch/db/model"
)

type InSubmitLike struct {
	ToID   *string `json:"to_id"`
	Status *string `json:"status"`
}

type InRespondLike struct {
	LikeID *string `json:"like_id"`
	Status *string `json:"status"`
}

type OutActionResult struct {
	Success       bool `json:"success"`
	IsMutualMatch bool `json:"is_mutual_match"`
}

type OutIncomingLike struct {
	LikeID    string      `json:"like_id"`
	User      *model.User `json:"user"`
	CreatedAt time.Time   `json:"created_at"`
}
