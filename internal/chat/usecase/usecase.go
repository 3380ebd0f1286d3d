package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"github.com/fekuna/omnipos-marketplace-service/internal/chat"
	"github.com/fekuna/omnipos-marketplace-service/internal/chat/dto"
	"github.com/fekuna/omnipos-marketplace-service/internal/format"
	"github.com/fekuna/omnipos-marketplace-service/internal/logger"
	"github.com/fekuna/omnipos-marketplace-service/internal/model"
)

// SelfSenderID marks messages written by the viewing user.
const SelfSenderID = "me"

type chatUseCase struct {
	repo   chat.Repository
	fmt    *format.Formatter
	skew   time.Duration
	logger logger.ZapLogger
}

func NewChatUseCase(repo chat.Repository, f *format.Formatter, skew time.Duration, log logger.ZapLogger) chat.UseCase {
	return &chatUseCase{
		repo:   repo,
		fmt:    f,
		skew:   skew,
		logger: log,
	}
}

func (uc *chatUseCase) ListConversations(ctx context.Context, search string, now time.Time) (*dto.ConversationList, error) {
	convs, err := uc.repo.Conversations(ctx)
	if err != nil {
		return nil, err
	}

	needle := cases.Fold().String(strings.TrimSpace(search))
	unread := 0
	matched := make([]*model.Conversation, 0, len(convs))
	for _, c := range convs {
		unread += c.UnreadCount
		if needle == "" || strings.Contains(cases.Fold().String(c.Name), needle) {
			matched = append(matched, c)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].LastMessageAt.After(matched[j].LastMessageAt) })

	out := &dto.ConversationList{
		Conversations: make([]*dto.ConversationView, 0, len(matched)),
		UnreadTotal:   unread,
	}
	for _, c := range matched {
		ts := uc.clamp(c.LastMessageAt, now, zap.String("conversation_id", c.ID))
		out.Conversations = append(out.Conversations, &dto.ConversationView{
			ID:            c.ID,
			Name:          c.Name,
			LastMessage:   c.LastMessage,
			LastMessageAt: ts.Format(time.RFC3339),
			TimeLabel:     uc.fmt.RelativeTime(ts, now),
			UnreadCount:   c.UnreadCount,
			IsOnline:      c.IsOnline,
			IsGroup:       c.IsGroup,
			Type:          c.Type,
		})
	}
	return out, nil
}

func (uc *chatUseCase) ListMessages(ctx context.Context, conversationID string, now time.Time) (*dto.MessageList, error) {
	conv, err := uc.repo.ConversationByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	msgs, err := uc.repo.Messages(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(msgs, func(i, j int) bool { return msgs[i].SentAt.Before(msgs[j].SentAt) })

	out := &dto.MessageList{
		ConversationID: conv.ID,
		Name:           conv.Name,
		IsOnline:       conv.IsOnline,
		Messages:       make([]*dto.MessageView, 0, len(msgs)),
	}
	for _, m := range msgs {
		ts := uc.clamp(m.SentAt, now, zap.String("conversation_id", conv.ID), zap.String("message_id", m.ID))
		out.Messages = append(out.Messages, &dto.MessageView{
			ID:        m.ID,
			SenderID:  m.SenderID,
			FromMe:    m.SenderID == SelfSenderID,
			Text:      m.Text,
			SentAt:    ts.Format(time.RFC3339),
			TimeLabel: uc.fmt.MessageTime(ts),
			Type:      m.Type,
			FileURL:   m.FileURL,
			FileName:  m.FileName,
		})
	}
	return out, nil
}

// clamp pulls future timestamps back to now, warning when they are further
// ahead than the configured clock skew.
func (uc *chatUseCase) clamp(ts, now time.Time, fields ...zap.Field) time.Time {
	if err := format.CheckSkew(ts, now, uc.skew); err != nil {
		uc.logger.Warn("chat timestamp ahead of clock", append(fields, zap.Error(err))...)
	}
	if ts.After(now) {
		return now
	}
	return ts
}
