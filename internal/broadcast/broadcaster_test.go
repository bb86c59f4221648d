package broadcast

import (
	"sync"
	"testing"
	"time"

	"relay-chat/internal/domain/message"

	"github.com/google/uuid"
)

func newMessage(text string) message.Message {
	return message.Message{
		ID:         uuid.New(),
		Text:       text,
		SenderID:   uuid.New(),
		ReceiverID: uuid.New(),
		CreatedAt:  time.Now(),
	}
}

func TestPublish_AllSubscribersReceiveInOrder(t *testing.T) {
	t.Parallel()

	b := New()
	sub1 := b.Subscribe()
	defer sub1.Close()
	sub2 := b.Subscribe()
	defer sub2.Close()

	first := newMessage("first")
	second := newMessage("second")
	b.Publish(first)
	b.Publish(second)

	for _, sub := range []*Subscription{sub1, sub2} {
		got1 := <-sub.C
		got2 := <-sub.C
		if got1.ID != first.ID {
			t.Fatalf("first event mismatch: got %s want %s", got1.ID, first.ID)
		}
		if got2.ID != second.ID {
			t.Fatalf("second event mismatch: got %s want %s", got2.ID, second.ID)
		}
	}
}

func TestSubscribe_LateSubscriberMissesEarlierEvents(t *testing.T) {
	t.Parallel()

	b := New()
	b.Publish(newMessage("before"))

	sub := b.Subscribe()
	defer sub.Close()

	select {
	case msg := <-sub.C:
		t.Fatalf("late subscriber received pre-subscription event %q", msg.Text)
	default:
	}

	after := newMessage("after")
	b.Publish(after)
	if got := <-sub.C; got.ID != after.ID {
		t.Fatalf("expected %s, got %s", after.ID, got.ID)
	}
}

func TestClose_StopsDelivery(t *testing.T) {
	t.Parallel()

	b := New()
	sub := b.Subscribe()
	sub.Close()

	if n := b.SubscriberCount(); n != 0 {
		t.Fatalf("expected 0 subscribers after close, got %d", n)
	}

	// Publishing after close must not panic; the channel is closed.
	b.Publish(newMessage("late"))

	if _, ok := <-sub.C; ok {
		t.Fatalf("expected closed channel after Close")
	}

	// Close is idempotent.
	sub.Close()
}

func TestPublish_SlowSubscriberDoesNotBlock(t *testing.T) {
	t.Parallel()

	b := New()
	slow := b.Subscribe()
	defer slow.Close()

	// Nobody drains slow; overfill its buffer and make sure Publish returns.
	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer+10; i++ {
			b.Publish(newMessage("flood"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("Publish blocked on a slow subscriber")
	}

	if len(slow.C) != subscriberBuffer {
		t.Fatalf("expected a full buffer of %d, got %d", subscriberBuffer, len(slow.C))
	}
}

func TestBroadcaster_ConcurrentSubscribePublishClose(t *testing.T) {
	t.Parallel()

	b := New()
	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				sub := b.Subscribe()
				b.Publish(newMessage("concurrent"))
				sub.Close()
			}
		}()
	}

	wg.Wait()

	if n := b.SubscriberCount(); n != 0 {
		t.Fatalf("expected no subscribers left, got %d", n)
	}
}
