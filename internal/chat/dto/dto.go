package dto

type ListConversationsRequest struct {
	Search string `mapstructure:"search"`
	At     string `mapstructure:"at"` // RFC 3339 render time, defaults to the server clock
}

type ListMessagesRequest struct {
	ConversationID string `mapstructure:"conversation_id"`
	At             string `mapstructure:"at"`
}

type ConversationView struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	LastMessage   string `json:"last_message"`
	LastMessageAt string `json:"last_message_at"`
	TimeLabel     string `json:"time_label"`
	UnreadCount   int    `json:"unread_count"`
	IsOnline      bool   `json:"is_online"`
	IsGroup       bool   `json:"is_group"`
	Type          string `json:"type"`
}

// ConversationList is the left pane. UnreadTotal covers every conversation,
// not only the ones matching the search.
type ConversationList struct {
	Conversations []*ConversationView `json:"conversations"`
	UnreadTotal   int                 `json:"unread_total"`
}

type MessageView struct {
	ID        string `json:"id"`
	SenderID  string `json:"sender_id"`
	FromMe    bool   `json:"from_me"`
	Text      string `json:"text"`
	SentAt    string `json:"sent_at"`
	TimeLabel string `json:"time_label"`
	Type      string `json:"type"`
	FileURL   string `json:"file_url,omitempty"`
	FileName  string `json:"file_name,omitempty"`
}

type MessageList struct {
	ConversationID string         `json:"conversation_id"`
	Name           string         `json:"name"`
	IsOnline       bool           `json:"is_online"`
	Messages       []*MessageView `json:"messages"`
}
