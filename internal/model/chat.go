package model

import "time"

// ChatSender identifies which side of a conversation sent a message
type ChatSender string

const (
	SenderVisitor ChatSender = "visitor"
	SenderAdmin   ChatSender = "admin"
)

// ChatMessage is one message relayed through the chat widget
type ChatMessage struct {
	ConversationID string     `json:"conversationId"`
	Sender         ChatSender `json:"sender"`
	Text           string     `json:"text"`
	SentAt         time.Time  `json:"sentAt"`
}
