package repository

import (
	"context"

	"github.com/google/uuid"

	"relay-chat/internal/domain/message"
	"relay-chat/internal/domain/user"
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	GetByID(ctx context.Context, id uuid.UUID) (user.User, error)
	GetByEmail(ctx context.Context, email string) (user.User, error)
	ListOthers(ctx context.Context, requesterID uuid.UUID) ([]user.User, error)
}

type MessageRepository interface {
	Create(ctx context.Context, m *message.Message) error
	GetConversation(ctx context.Context, selfID, otherID uuid.UUID) ([]message.Message, error)
}
