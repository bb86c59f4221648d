package broadcast

import (
	"context"

	"relay-chat/internal/domain/message"
)

// Local adapts a Broadcaster to the publisher interface used by services,
// for single-instance deployments with no Redis bridge.
type Local struct {
	Broadcaster *Broadcaster
}

func (l Local) Publish(_ context.Context, msg message.Message) error {
	l.Broadcaster.Publish(msg)
	return nil
}
