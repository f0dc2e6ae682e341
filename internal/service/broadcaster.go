package service

// Broadcaster pushes server events to connected WebSocket clients. The
// ws hub implements it; services only see this interface so they can be
// tested without a live hub.
type Broadcaster interface {
	// BroadcastToConversation delivers to both sides of a chat conversation
	BroadcastToConversation(conversationID string, msgType string, payload interface{})
	// BroadcastToWebinar delivers to every watcher of a webinar page
	BroadcastToWebinar(webinarID string, msgType string, payload interface{})
}
