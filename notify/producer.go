package notify

import (
	"context"
	"encoding/json"

	"github.com/nsqio/go-nsq"
)

// Topic carries notification events from the request path to the delivery
// worker.
const Topic = "notifications"

// Producer publishes events to nsqd. The queue is what decouples delivery
// from the request: once published, nothing about the event can block or
// roll back the caller.
type Producer struct {
	producer *nsq.Producer
}

func NewProducer(addr string) (*Producer, error) {
	cfg := nsq.NewConfig()
	p, err := nsq.NewProducer(addr, cfg)
	if err != nil {
		return nil, err
	}
	return &Producer{producer: p}, nil
}

func (p *Producer) Notify(ctx context.Context, e Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return p.producer.Publish(Topic, body)
}

func (p *Producer) Stop() {
	p.producer.Stop()
}
