package messagestream

import (
	"fmt"

	"wirpackens-service/config"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-amqp/pkg/amqp"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const (
	TypeGoChannel = "gochannel"
	TypeAmqp      = "amqp"
)

type MessageStream interface {
	NewPublisher() (message.Publisher, error)
	NewSubscriber() (message.Subscriber, error)
}

// New returns the broker selected by cfg.Type. Anything other than amqp
// gets an in-process channel.
func New(cfg *config.MessageStreamConfig, logger watermill.LoggerAdapter) MessageStream {
	if cfg.Type == TypeAmqp {
		return &amqpStream{cfg: amqp.NewDurableQueueConfig(cfg.AmqpURL), logger: logger}
	}
	return &channelStream{ch: gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 64,
		Persistent:          false,
	}, logger)}
}

type amqpStream struct {
	cfg    amqp.Config
	logger watermill.LoggerAdapter
}

func (a *amqpStream) NewPublisher() (message.Publisher, error) {
	pub, err := amqp.NewPublisher(a.cfg, a.logger)
	if err != nil {
		return nil, fmt.Errorf("amqp publisher: %w", err)
	}
	return pub, nil
}

func (a *amqpStream) NewSubscriber() (message.Subscriber, error) {
	sub, err := amqp.NewSubscriber(a.cfg, a.logger)
	if err != nil {
		return nil, fmt.Errorf("amqp subscriber: %w", err)
	}
	return sub, nil
}

// Publisher and subscriber share one channel so messages actually meet.
type channelStream struct {
	ch *gochannel.GoChannel
}

func (c *channelStream) NewPublisher() (message.Publisher, error) {
	return c.ch, nil
}

func (c *channelStream) NewSubscriber() (message.Subscriber, error) {
	return c.ch, nil
}

// NewRouter wires a single consumer. Messages whose handler keeps failing
// are moved to poisonTopic.
func NewRouter(publisher message.Publisher, poisonTopic, handlerName, topic string, subscriber message.Subscriber, handlerFunc message.NoPublishHandlerFunc, logger watermill.LoggerAdapter) (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, err
	}

	poisonQueue, err := middleware.PoisonQueue(publisher, poisonTopic)
	if err != nil {
		return nil, err
	}

	router.AddMiddleware(
		middleware.Recoverer,
		poisonQueue,
		middleware.Retry{
			MaxRetries: 2,
			Logger:     logger,
		}.Middleware,
	)

	router.AddNoPublisherHandler(handlerName, topic, subscriber, handlerFunc)

	return router, nil
}
