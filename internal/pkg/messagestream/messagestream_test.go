package messagestream_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"wirpackens-service/config"
	"wirpackens-service/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRouter(t *testing.T, handler message.NoPublishHandlerFunc) (message.Publisher, message.Subscriber) {
	t.Helper()
	logger := watermill.NopLogger{}
	stream := messagestream.New(&config.MessageStreamConfig{Type: messagestream.TypeGoChannel}, logger)

	pub, err := stream.NewPublisher()
	require.NoError(t, err)
	sub, err := stream.NewSubscriber()
	require.NoError(t, err)

	router, err := messagestream.NewRouter(pub, "test_poisoned", "test_handler", "test_topic", sub, handler, logger)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(func() {
		cancel()
		_ = router.Close()
	})
	go func() { _ = router.Run(ctx) }()
	<-router.Running()

	return pub, sub
}

func TestRouterDeliversMessages(t *testing.T) {
	received := make(chan string, 1)
	pub, _ := runRouter(t, func(msg *message.Message) error {
		received <- string(msg.Payload)
		return nil
	})

	require.NoError(t, pub.Publish("test_topic", message.NewMessage(watermill.NewUUID(), []byte("hello"))))

	select {
	case got := <-received:
		assert.Equal(t, "hello", got)
	case <-time.After(2 * time.Second):
		t.Fatal("message not delivered")
	}
}

func TestRouterPoisonsFailingMessages(t *testing.T) {
	pub, sub := runRouter(t, func(msg *message.Message) error {
		return stderrors.New("cannot handle")
	})

	poisoned, err := sub.Subscribe(context.Background(), "test_poisoned")
	require.NoError(t, err)

	require.NoError(t, pub.Publish("test_topic", message.NewMessage(watermill.NewUUID(), []byte("bad"))))

	select {
	case msg := <-poisoned:
		assert.Equal(t, "bad", string(msg.Payload))
		msg.Ack()
	case <-time.After(2 * time.Second):
		t.Fatal("message not moved to poison topic")
	}
}
