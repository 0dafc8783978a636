package handlers

import (
	"net/http"

	"github.com/Dosada05/mahjong-club/middleware"
	"github.com/Dosada05/mahjong-club/services"
)

type PlayerHandler struct {
	playerService services.PlayerService
	identity      *middleware.Identity
}

func NewPlayerHandler(playerService services.PlayerService, identity *middleware.Identity) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
		identity:      identity,
	}
}

// Join регистрирует игрока по имени (или возвращает существующего) и
// выдаёт куку идентичности. Первый записавший имя выигрывает.
func (h *PlayerHandler) Join(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name string `json:"name"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, created, err := h.playerService.GetOrCreateByName(r.Context(), input.Name)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	cookie, err := h.identity.IssueCookie(player.ID)
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}
	http.SetCookie(w, cookie)

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	if err := writeJSON(w, status, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// List возвращает всех игроков клуба (используется формой выбора победителя).
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.playerService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"players": players}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

const maxAvatarBytes = 5 << 20 // 5MB

// UploadAvatar принимает multipart-поле "avatar" и сохраняет его в R2.
func (h *PlayerHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	playerID, err := middleware.GetPlayerIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	if err := r.ParseMultipartForm(maxAvatarBytes); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	file, header, err := r.FormFile("avatar")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	defer file.Close()

	player, err := h.playerService.UploadAvatar(r.Context(), playerID, header.Header.Get("Content-Type"), file)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Logout стирает куку идентичности.
func (h *PlayerHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.identity.ClearCookie())
	w.WriteHeader(http.StatusNoContent)
}
