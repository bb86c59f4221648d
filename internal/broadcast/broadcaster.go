package broadcast

import (
	"sync"

	"relay-chat/internal/domain/message"
)

const subscriberBuffer = 256

// Subscription is one listener's live view of the message-created topic.
// Events arrive on C until Close is called; events published before the
// subscription existed are never delivered.
type Subscription struct {
	C chan message.Message

	b    *Broadcaster
	once sync.Once
}

// Close deregisters the subscription and closes C. Safe to call more than
// once and safe concurrently with Publish.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.b.remove(s)
	})
}

// Broadcaster fans out created messages to every live subscriber on a single
// logical topic. Delivery is at-most-once and non-durable; a subscriber whose
// buffer is full has that event dropped rather than stalling the publisher.
type Broadcaster struct {
	mu   sync.RWMutex
	subs map[*Subscription]struct{}
}

func New() *Broadcaster {
	return &Broadcaster{
		subs: make(map[*Subscription]struct{}),
	}
}

// Subscribe registers a new listener. The caller must Close the subscription
// when done, otherwise its registration is never released.
func (b *Broadcaster) Subscribe() *Subscription {
	sub := &Subscription{
		C: make(chan message.Message, subscriberBuffer),
		b: b,
	}

	b.mu.Lock()
	b.subs[sub] = struct{}{}
	b.mu.Unlock()

	return sub
}

// Publish delivers msg to every currently registered subscriber. The hand-off
// per subscriber is non-blocking: one slow listener cannot stall message
// creation for all callers.
func (b *Broadcaster) Publish(msg message.Message) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.subs {
		select {
		case sub.C <- msg:
		default:
			// Buffer full, event dropped for this subscriber
		}
	}
}

// SubscriberCount returns the number of live subscriptions.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

func (b *Broadcaster) remove(sub *Subscription) {
	b.mu.Lock()
	delete(b.subs, sub)
	b.mu.Unlock()
	close(sub.C)
}
