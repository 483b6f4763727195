package notify

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/nsqio/go-nsq"
	"gorm.io/gorm"

	"github.com/nikhildhanda04/vmatch/db/model"
)

// Consumer delivers queued notification events over email and Expo push.
// Delivery is best-effort: failures are logged and the message finished,
// so a broken mailbox can never wedge the queue or the request path.
type Consumer struct {
	db       *gorm.DB
	mailer   *Mailer
	pusher   *Pusher
	logger   *log.Logger
	consumer *nsq.Consumer
}

func NewConsumer(gdb *gorm.DB, mailer *Mailer, pusher *Pusher, logger *log.Logger) (*Consumer, error) {
	c := &Consumer{db: gdb, mailer: mailer, pusher: pusher, logger: logger}
	consumer, err := nsq.NewConsumer(Topic, "delivery", nsq.NewConfig())
	if err != nil {
		return nil, err
	}
	consumer.AddHandler(nsq.HandlerFunc(c.handle))
	c.consumer = consumer
	return c, nil
}

func (c *Consumer) Start(lookupdAddr string) error {
	return c.consumer.ConnectToNSQLookupd(lookupdAddr)
}

func (c *Consumer) Stop() {
	c.consumer.Stop()
}

func (c *Consumer) handle(m *nsq.Message) error {
	var e Event
	if err := json.Unmarshal(m.Body, &e); err != nil {
		c.logger.Println(err)
		return nil
	}
	var user, actor model.User
	if err := c.db.First(&user, "id = ?", e.UserID).Error; err != nil {
		c.logger.Println(err)
		return nil
	}
	if err := c.db.First(&actor, "id = ?", e.ActorID).Error; err != nil {
		c.logger.Println(err)
		return nil
	}

	first := firstName(actor.Name)
	var subject, html, push string
	switch e.Type {
	case EventMatchFormed:
		subject = "You have a new Match on Vmatch! 🎉"
		html = c.mailer.NewMatchBody(first)
		push = "You matched with " + first + ". Say hi!"
	case EventLikeReceived:
		subject = "Someone likes you! 🔥"
		html = c.mailer.NewLikeBody(first)
		push = "Someone just liked your profile."
	default:
		c.logger.Printf("unknown notification type %q", e.Type)
		return nil
	}

	if err := c.mailer.Send(user.Email, subject, html); err != nil {
		c.logger.Println(err)
	}
	if user.ExpoPushToken != "" {
		if err := c.pusher.Send(user.ExpoPushToken, subject, push); err != nil {
			c.logger.Println(err)
		}
	}
	return nil
}

func firstName(name string) string {
	if name == "" {
		return "Someone"
	}
	return strings.SplitN(name, " ", 2)[0]
}
