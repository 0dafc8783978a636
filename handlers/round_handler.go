package handlers

import (
	"net/http"

	"github.com/Dosada05/mahjong-club/middleware"
	"github.com/Dosada05/mahjong-club/services"
)

type RoundHandler struct {
	roundService      services.RoundService
	membershipService services.MembershipService
}

func NewRoundHandler(roundService services.RoundService, membershipService services.MembershipService) *RoundHandler {
	return &RoundHandler{
		roundService:      roundService,
		membershipService: membershipService,
	}
}

// Complete создаёт раунд или записывает победителя уже существующего.
func (h *RoundHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var input services.CompleteRoundInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	round, err := h.roundService.CompleteRound(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"round": round}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ToggleMembership переключает участие текущего игрока в раунде.
func (h *RoundHandler) ToggleMembership(w http.ResponseWriter, r *http.Request) {
	roundID, err := getIDFromURL(r, "roundID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	playerID, err := middleware.GetPlayerIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	result, err := h.membershipService.ToggleRoundMembership(r.Context(), playerID, roundID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, result, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
