package model

import "time"

type Conversation struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	LastMessage   string    `json:"last_message"`
	LastMessageAt time.Time `json:"last_message_at"`
	UnreadCount   int       `json:"unread_count"`
	IsOnline      bool      `json:"is_online"`
	IsGroup       bool      `json:"is_group"`
	Type          string    `json:"type"` // business, customer
}

type ChatMessage struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	Text           string    `json:"text"`
	SentAt         time.Time `json:"sent_at"`
	Type           string    `json:"type"` // text, image, file
	FileURL        string    `json:"file_url,omitempty"`
	FileName       string    `json:"file_name,omitempty"`
}
