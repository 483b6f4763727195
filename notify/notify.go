package notify

import "context"

// Event kinds understood by the delivery worker.
const (
	EventMatchFormed  = "match.formed"
	EventLikeReceived = "like.received"
)

// Event is a best-effort notification trigger. UserID is the recipient,
// ActorID the user whose action caused the event.
type Event struct {
	Type    string `json:"type"`
	UserID  string `json:"user_id"`
	ActorID string `json:"actor_id"`
}

// Dispatcher hands events off to a background worker. A returned error
// means the hand-off itself failed; callers log it and move on, it never
// affects the persisted match or like state.
type Dispatcher interface {
	Notify(ctx context.Context, e Event) error
}
