package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

// Chat message types
const (
	MsgChatMessage   MessageType = "chat_message"
	MsgVisitorJoined MessageType = "visitor_joined"
	MsgVisitorLeft   MessageType = "visitor_left"
	MsgError         MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages WebSocket connections for chat conversations and webinar
// countdown watchers
type Hub struct {
	// Conversation -> connections (one visitor, one admin per conversation)
	adminConns   map[string]*Connection
	visitorConns map[string]*Connection

	// Webinar -> watcher connections
	webinarConns map[string]map[*Connection]bool

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents a WebSocket connection
type Connection struct {
	ConversationID string // Set for chat connections
	WebinarID      string // Set for countdown watchers
	IsAdmin        bool
	Send           chan []byte
	Hub            *Hub
}

// BroadcastMessage is a message to deliver
type BroadcastMessage struct {
	ConversationID string
	WebinarID      string
	Message        *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		adminConns:   make(map[string]*Connection),
		visitorConns: make(map[string]*Connection),
		webinarConns: make(map[string]map[*Connection]bool),
		register:     make(chan *Connection),
		unregister:   make(chan *Connection),
		broadcast:    make(chan *BroadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			switch {
			case conn.WebinarID != "":
				if h.webinarConns[conn.WebinarID] == nil {
					h.webinarConns[conn.WebinarID] = make(map[*Connection]bool)
				}
				h.webinarConns[conn.WebinarID][conn] = true
				log.Printf("Watcher connected to webinar %s", conn.WebinarID)
			case conn.IsAdmin:
				h.adminConns[conn.ConversationID] = conn
				log.Printf("Admin connected to conversation %s", conn.ConversationID)
			default:
				h.visitorConns[conn.ConversationID] = conn
				log.Printf("Visitor connected to conversation %s", conn.ConversationID)
				h.notifyAdmin(conn.ConversationID, MsgVisitorJoined)
			}
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			switch {
			case conn.WebinarID != "":
				if watchers, ok := h.webinarConns[conn.WebinarID]; ok && watchers[conn] {
					delete(watchers, conn)
					close(conn.Send)
					if len(watchers) == 0 {
						delete(h.webinarConns, conn.WebinarID)
					}
				}
			case conn.IsAdmin:
				if existing, ok := h.adminConns[conn.ConversationID]; ok && existing == conn {
					delete(h.adminConns, conn.ConversationID)
					close(conn.Send)
					log.Printf("Admin disconnected from conversation %s", conn.ConversationID)
				}
			default:
				if existing, ok := h.visitorConns[conn.ConversationID]; ok && existing == conn {
					delete(h.visitorConns, conn.ConversationID)
					close(conn.Send)
					log.Printf("Visitor disconnected from conversation %s", conn.ConversationID)
					h.notifyAdmin(conn.ConversationID, MsgVisitorLeft)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)

			if msg.WebinarID != "" {
				for conn := range h.webinarConns[msg.WebinarID] {
					select {
					case conn.Send <- data:
					default:
						// Drop message if buffer full
					}
				}
			} else {
				if conn, ok := h.adminConns[msg.ConversationID]; ok {
					select {
					case conn.Send <- data:
					default:
					}
				}
				if conn, ok := h.visitorConns[msg.ConversationID]; ok {
					select {
					case conn.Send <- data:
					default:
					}
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToConversation delivers to both sides of a conversation
// (implements service.Broadcaster)
func (h *Hub) BroadcastToConversation(conversationID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		ConversationID: conversationID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}

// BroadcastToWebinar delivers to every watcher of a webinar
// (implements service.Broadcaster)
func (h *Hub) BroadcastToWebinar(webinarID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		WebinarID: webinarID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}

func (h *Hub) notifyAdmin(conversationID string, msgType MessageType) {
	if conn, ok := h.adminConns[conversationID]; ok {
		data, _ := json.Marshal(&Message{
			Type:    msgType,
			Payload: json.RawMessage(`{"conversationId":"` + conversationID + `"}`),
		})
		select {
		case conn.Send <- data:
		default:
		}
	}
}
