package services

import (
	"context"
	"sort"
	"sync"

	"relay-chat/internal/domain/message"
	"relay-chat/internal/domain/user"
	relay_errors "relay-chat/pkg/errors"

	"github.com/google/uuid"
)

// In-memory repositories mirroring the behavior of the gorm-backed ones:
// unique email, created_at ordering, pair-filtered conversation lookup.

type memUserRepo struct {
	mu    sync.Mutex
	users []user.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{}
}

func (r *memUserRepo) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return relay_errors.ErrAlreadyExists
		}
	}
	r.users = append(r.users, *u)
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, relay_errors.ErrNotFound
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, relay_errors.ErrNotFound
}

func (r *memUserRepo) ListOthers(_ context.Context, requesterID uuid.UUID) ([]user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var others []user.User
	for _, u := range r.users {
		if u.ID != requesterID {
			others = append(others, u)
		}
	}
	sort.Slice(others, func(i, j int) bool {
		return others[i].CreatedAt.After(others[j].CreatedAt)
	})
	return others, nil
}

type memMessageRepo struct {
	mu       sync.Mutex
	messages []message.Message
}

func newMemMessageRepo() *memMessageRepo {
	return &memMessageRepo{}
}

func (r *memMessageRepo) Create(_ context.Context, m *message.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, *m)
	return nil
}

func (r *memMessageRepo) GetConversation(_ context.Context, selfID, otherID uuid.UUID) ([]message.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []message.Message
	for _, m := range r.messages {
		if (m.SenderID == selfID && m.ReceiverID == otherID) ||
			(m.SenderID == otherID && m.ReceiverID == selfID) {
			result = append(result, m)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// capturePublisher records published messages in order.
type capturePublisher struct {
	mu        sync.Mutex
	published []message.Message
}

func (p *capturePublisher) Publish(_ context.Context, msg message.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, msg)
	return nil
}

func (p *capturePublisher) all() []message.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]message.Message(nil), p.published...)
}
