package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Dosada05/mahjong-club/live"
	"github.com/Dosada05/mahjong-club/services"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// В продакшене здесь должна быть проверка Origin,
		// чтобы разрешать подключения только с доверенных доменов.
		return true
	},
}

type WebSocketHandler struct {
	hub            *live.Hub
	sessionService services.SessionService
}

func NewWebSocketHandler(hub *live.Hub, sessionService services.SessionService) *WebSocketHandler {
	return &WebSocketHandler{
		hub:            hub,
		sessionService: sessionService,
	}
}

// ServeWs подключает клиента к комнате игровой сессии.
// Клиент подключается к /ws/sessions/{sessionID}.
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	sessionID, err := getIDFromURL(r, "sessionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if _, err := h.sessionService.GetByID(r.Context(), sessionID); err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			notFoundResponse(w, r)
			return
		}
		serverErrorResponse(w, r, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// upgrader.Upgrade сам отправляет HTTP ошибку клиенту.
		log.Printf("Failed to upgrade connection for session %d: %v", sessionID, err)
		return
	}

	client := &live.Client{
		Hub:  h.hub,
		Conn: conn,
		Send: make(chan []byte, 256),
		Room: live.SessionRoom(sessionID),
	}
	client.Hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}
