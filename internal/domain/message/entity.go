package message

import (
	"time"

	"github.com/google/uuid"
)

// Message represents the messages table. Messages are append-only:
// once created they are never updated or deleted.
type Message struct {
	ID         uuid.UUID
	Text       string
	SenderID   uuid.UUID `gorm:"index:idx_messages_pair"`
	ReceiverID uuid.UUID `gorm:"index:idx_messages_pair"`
	CreatedAt  time.Time
}

func (Message) TableName() string {
	return "messages"
}
