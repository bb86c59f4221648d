package services

import (
	"context"
	"time"

	"relay-chat/internal/domain/message"
	"relay-chat/internal/repository"
	relay_errors "relay-chat/pkg/errors"
	"relay-chat/pkg/logger"

	"github.com/google/uuid"
)

// EventPublisher receives every successfully persisted message.
type EventPublisher interface {
	Publish(ctx context.Context, msg message.Message) error
}

type MessageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	publisher   EventPublisher
	log         *logger.Logger
}

func NewMessageService(messageRepo repository.MessageRepository, userRepo repository.UserRepository, publisher EventPublisher, log *logger.Logger) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		publisher:   publisher,
		log:         log,
	}
}

// Create persists a new message from the authenticated caller and then
// publishes it. Publication never precedes persistence; a failed write is
// never announced. The receiver must be a registered user other than the
// sender.
func (s *MessageService) Create(ctx context.Context, text, receiverID string) (message.Message, error) {
	ac, ok := AuthFromContext(ctx)
	if !ok {
		return message.Message{}, relay_errors.ErrUnauthenticated
	}

	if text == "" || receiverID == "" {
		return message.Message{}, relay_errors.ErrValidation
	}

	senderID, err := uuid.Parse(ac.Claims.UserID)
	if err != nil {
		return message.Message{}, relay_errors.ErrUnauthenticated
	}

	parsedReceiver, err := uuid.Parse(receiverID)
	if err != nil {
		return message.Message{}, relay_errors.ErrValidation
	}

	if parsedReceiver == senderID {
		return message.Message{}, relay_errors.ErrValidation
	}

	if _, err := s.userRepo.GetByID(ctx, parsedReceiver); err != nil {
		return message.Message{}, err
	}

	msg := &message.Message{
		ID:         uuid.New(),
		Text:       text,
		SenderID:   senderID,
		ReceiverID: parsedReceiver,
		CreatedAt:  time.Now(),
	}

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return message.Message{}, err
	}

	if err := s.publisher.Publish(ctx, *msg); err != nil && s.log != nil {
		// The message is already persisted; a failed notification only
		// affects live listeners.
		s.log.ErrorCtx(ctx, "publish message %s: %s", msg.ID, err)
	}

	return *msg, nil
}

// History returns the conversation between the caller and otherID, oldest
// first.
func (s *MessageService) History(ctx context.Context, otherID string) ([]message.Message, error) {
	ac, ok := AuthFromContext(ctx)
	if !ok {
		return nil, relay_errors.ErrUnauthenticated
	}

	if otherID == "" {
		return nil, relay_errors.ErrValidation
	}

	selfID, err := uuid.Parse(ac.Claims.UserID)
	if err != nil {
		return nil, relay_errors.ErrUnauthenticated
	}

	parsedOther, err := uuid.Parse(otherID)
	if err != nil {
		return nil, relay_errors.ErrValidation
	}

	return s.messageRepo.GetConversation(ctx, selfID, parsedOther)
}
