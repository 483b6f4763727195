package notify

import (
	expo "github.com/oliveroneill/exponent-server-sdk-golang/sdk"
)

// Pusher delivers Expo push notifications to registered devices.
type Pusher struct {
	client *expo.PushClient
}

func NewPusher() *Pusher {
	return &Pusher{client: expo.NewPushClient(nil)}
}

func (p *Pusher) Send(token, title, body string) error {
	pushToken, err := expo.NewExponentPushToken(token)
	if err != nil {
		return err
	}
	resp, err := p.client.Publish(&expo.PushMessage{
		To:       []expo.ExponentPushToken{pushToken},
		Title:    title,
		Body:     body,
		Sound:    "default",
		Priority: expo.DefaultPriority,
	})
	if err != nil {
		return err
	}
	return resp.ValidateResponse()
}
