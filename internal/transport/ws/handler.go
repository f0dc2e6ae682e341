package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"eduforms/internal/model"
	"eduforms/internal/service"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for dev
	},
}

// Handler handles WebSocket connections
type Handler struct {
	hub        *Hub
	authSvc    *service.AuthService
	webinarSvc *service.WebinarService
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, authSvc *service.AuthService, webinarSvc *service.WebinarService) *Handler {
	return &Handler{
		hub:        hub,
		authSvc:    authSvc,
		webinarSvc: webinarSvc,
	}
}

// VisitorWS handles GET /v1/ws/chat/{conversationId}/visitor
func (h *Handler) VisitorWS(w http.ResponseWriter, r *http.Request) {
	conversationID := mux.Vars(r)["conversationId"]
	token := r.URL.Query().Get("token")

	if token == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}

	claims, err := h.authSvc.ValidateAttendeeToken(token)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	if claims.ConversationID != conversationID {
		http.Error(w, "token not valid for this conversation", http.StatusForbidden)
		return
	}

	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	conn := &Connection{
		ConversationID: conversationID,
		IsAdmin:        false,
		Send:           make(chan []byte, 256),
		Hub:            h.hub,
	}

	h.hub.Register(conn)

	go h.writePump(wsConn, conn)
	go h.readChatPump(wsConn, conn, model.SenderVisitor)
}

// AdminWS handles GET /v1/ws/chat/{conversationId}/admin
func (h *Handler) AdminWS(w http.ResponseWriter, r *http.Request) {
	conversationID := mux.Vars(r)["conversationId"]
	token := r.URL.Query().Get("token")

	if token == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}

	if _, err := h.authSvc.ValidateAdminToken(token); err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	conn := &Connection{
		ConversationID: conversationID,
		IsAdmin:        true,
		Send:           make(chan []byte, 256),
		Hub:            h.hub,
	}

	h.hub.Register(conn)

	go h.writePump(wsConn, conn)
	go h.readChatPump(wsConn, conn, model.SenderAdmin)
}

// WebinarWS handles GET /v1/ws/webinars/{webinarId}. Countdown watching
// is public; the first watcher starts the per-second broadcast.
func (h *Handler) WebinarWS(w http.ResponseWriter, r *http.Request) {
	webinarID := mux.Vars(r)["webinarId"]

	if err := h.webinarSvc.WatchCountdown(r.Context(), webinarID); err != nil {
		http.Error(w, "webinar not found", http.StatusNotFound)
		return
	}

	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	conn := &Connection{
		WebinarID: webinarID,
		Send:      make(chan []byte, 256),
		Hub:       h.hub,
	}

	h.hub.Register(conn)

	go h.writePump(wsConn, conn)
	go h.readDiscardPump(wsConn, conn)
}

// readChatPump relays incoming chat messages to the other side of the
// conversation
func (h *Handler) readChatPump(wsConn *websocket.Conn, conn *Connection, sender model.ChatSender) {
	defer func() {
		h.hub.Unregister(conn)
		wsConn.Close()
	}()

	wsConn.SetReadLimit(maxMessageSize)
	wsConn.SetReadDeadline(time.Now().Add(pongWait))
	wsConn.SetPongHandler(func(string) error {
		wsConn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := wsConn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		var incoming struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(raw, &incoming); err != nil || incoming.Text == "" {
			continue
		}

		msg := model.ChatMessage{
			ConversationID: conn.ConversationID,
			Sender:         sender,
			Text:           incoming.Text,
			SentAt:         time.Now(),
		}
		h.hub.BroadcastToConversation(conn.ConversationID, string(MsgChatMessage), msg)
	}
}

// readDiscardPump drains the connection so pongs are processed; webinar
// watchers never send anything meaningful
func (h *Handler) readDiscardPump(wsConn *websocket.Conn, conn *Connection) {
	defer func() {
		h.hub.Unregister(conn)
		wsConn.Close()
	}()

	wsConn.SetReadLimit(maxMessageSize)
	wsConn.SetReadDeadline(time.Now().Add(pongWait))
	wsConn.SetPongHandler(func(string) error {
		wsConn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := wsConn.ReadMessage(); err != nil {
			break
		}
	}
}

func (h *Handler) writePump(wsConn *websocket.Conn, conn *Connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		wsConn.Close()
	}()

	for {
		select {
		case message, ok := <-conn.Send:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				wsConn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := wsConn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := wsConn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
