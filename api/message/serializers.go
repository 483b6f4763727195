package message

type InSendMessage struct {
	MatchID *string `json:"match_id"`
	Text    *string `json:"text"`
}
