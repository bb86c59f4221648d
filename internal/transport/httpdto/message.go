package httpdto

import (
	"time"

	"relay-chat/internal/domain/message"
)

type CreateMessageRequest struct {
	Text       string `json:"text" binding:"required"`
	ReceiverID string `json:"receiver_id" binding:"required"`
}

type MessageDTO struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewMessageDTO(m message.Message) MessageDTO {
	return MessageDTO{
		ID:         m.ID.String(),
		Text:       m.Text,
		SenderID:   m.SenderID.String(),
		ReceiverID: m.ReceiverID.String(),
		CreatedAt:  m.CreatedAt,
	}
}

func NewMessageDTOs(messages []message.Message) []MessageDTO {
	dtos := make([]MessageDTO, 0, len(messages))
	for _, m := range messages {
		dtos = append(dtos, NewMessageDTO(m))
	}
	return dtos
}
