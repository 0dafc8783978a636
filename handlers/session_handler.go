package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Dosada05/mahjong-club/middleware"
	"github.com/Dosada05/mahjong-club/services"
)

const sessionDateLayout = "2006-01-02"

type SessionHandler struct {
	sessionService    services.SessionService
	membershipService services.MembershipService
}

func NewSessionHandler(sessionService services.SessionService, membershipService services.MembershipService) *SessionHandler {
	return &SessionHandler{
		sessionService:    sessionService,
		membershipService: membershipService,
	}
}

// Create создаёт игровую сессию на дату. Повтор даты — 409.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Date string `json:"date"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	date, err := time.Parse(sessionDateLayout, input.Date)
	if err != nil {
		badRequestResponse(w, r, fmt.Errorf("invalid date format, expected %s: %q", sessionDateLayout, input.Date))
		return
	}

	session, err := h.sessionService.CreateSession(r.Context(), date)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"session": session}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// List возвращает все сессии (для формы создания раунда).
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.sessionService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"sessions": sessions}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ToggleMembership переключает участие текущего игрока в сессии.
func (h *SessionHandler) ToggleMembership(w http.ResponseWriter, r *http.Request) {
	sessionID, err := getIDFromURL(r, "sessionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	playerID, err := middleware.GetPlayerIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	result, err := h.membershipService.ToggleSessionMembership(r.Context(), playerID, sessionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, result, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
