package chat

import (
	"context"

	"github.com/fekuna/omnipos-marketplace-service/internal/model"
)

type Repository interface {
	Conversations(ctx context.Context) ([]*model.Conversation, error)
	ConversationByID(ctx context.Context, id string) (*model.Conversation, error)
	// Messages returns the messages of one conversation in stored order.
	Messages(ctx context.Context, conversationID string) ([]*model.ChatMessage, error)
}
