package chat

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/fekuna/omnipos-marketplace-service/internal/chat/dto"
)

var ErrNotFound = errors.New("conversation not found")

type UseCase interface {
	ListConversations(ctx context.Context, search string, now time.Time) (*dto.ConversationList, error)
	ListMessages(ctx context.Context, conversationID string, now time.Time) (*dto.MessageList, error)
}
