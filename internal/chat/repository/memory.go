package repository

import (
	"context"

	"github.com/pkg/errors"

	"github.com/fekuna/omnipos-marketplace-service/internal/chat"
	"github.com/fekuna/omnipos-marketplace-service/internal/fixture"
	"github.com/fekuna/omnipos-marketplace-service/internal/model"
)

type MemoryRepository struct {
	conversations []*model.Conversation
	messages      map[string][]*model.ChatMessage
}

func NewMemoryRepository(c *fixture.Catalog) *MemoryRepository {
	byConversation := make(map[string][]*model.ChatMessage)
	for _, m := range c.Messages {
		byConversation[m.ConversationID] = append(byConversation[m.ConversationID], m)
	}
	return &MemoryRepository{conversations: c.Conversations, messages: byConversation}
}

func (r *MemoryRepository) Conversations(ctx context.Context) ([]*model.Conversation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]*model.Conversation, len(r.conversations))
	for i, c := range r.conversations {
		cp := *c
		out[i] = &cp
	}
	return out, nil
}

func (r *MemoryRepository) ConversationByID(ctx context.Context, id string) (*model.Conversation, error) {
	for _, c := range r.conversations {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, errors.Wrapf(chat.ErrNotFound, "conversation %q", id)
}

func (r *MemoryRepository) Messages(ctx context.Context, conversationID string) ([]*model.ChatMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stored := r.messages[conversationID]
	out := make([]*model.ChatMessage, len(stored))
	for i, m := range stored {
		cp := *m
		out[i] = &cp
	}
	return out, nil
}
