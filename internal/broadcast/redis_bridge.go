package broadcast

import (
	"context"
	"encoding/json"

	"relay-chat/internal/domain/message"
	"relay-chat/internal/redis"
	"relay-chat/pkg/logger"
)

// MessageCreatedChannel is the Redis channel shared by all API instances
// for the message-created topic.
const MessageCreatedChannel = "relay:message.created"

// RedisBridge links the local broadcaster to a Redis channel so that
// subscribers on one instance observe messages created on another. Durability
// semantics are unchanged: Redis pub/sub drops events for absent consumers.
type RedisBridge struct {
	publisher   *redis.Publisher
	subscriber  *redis.Subscriber
	broadcaster *Broadcaster
	log         *logger.Logger
}

func NewRedisBridge(publisher *redis.Publisher, subscriber *redis.Subscriber, broadcaster *Broadcaster, log *logger.Logger) *RedisBridge {
	return &RedisBridge{
		publisher:   publisher,
		subscriber:  subscriber,
		broadcaster: broadcaster,
		log:         log,
	}
}

// Publish forwards a created message to the shared Redis channel. Local
// delivery happens when the subscription loop receives it back.
func (b *RedisBridge) Publish(ctx context.Context, msg message.Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return b.publisher.Publish(ctx, MessageCreatedChannel, payload)
}

// Run consumes the shared channel and fans received messages into the local
// broadcaster. Blocks until ctx is cancelled.
func (b *RedisBridge) Run(ctx context.Context) error {
	return b.subscriber.Subscribe(ctx, []string{MessageCreatedChannel}, func(channel string, payload []byte) {
		var msg message.Message
		if err := json.Unmarshal(payload, &msg); err != nil {
			if b.log != nil {
				b.log.Errorf("bridge: dropping malformed payload on %s: %s", channel, err)
			}
			return
		}
		b.broadcaster.Publish(msg)
	})
}
