package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sfomin/gw-currency-rates/internal/gateway"
)

// TurnHandler defines the interface that the orchestrator must implement.
type TurnHandler interface {
	HandleTurn(ctx context.Context, userID, text string) gateway.Reply
}

// TurnRequest represents one inbound user turn from the chat transport
// swagger:model TurnRequest
type TurnRequest struct {
	// Stable identifier of the user within the transport
	// required: true
	// default: 42
	UserID string `json:"user_id"`

	// Raw message text
	// required: true
	// default: add
	Text string `json:"text"`
}

// TurnErrorResponse represents an error response for a turn
// swagger:model TurnErrorResponse
type TurnErrorResponse struct {
	// Error message
	// default: Invalid request body
	Error string `json:"error"`
}

// NewTurnHandler returns an HTTP handler feeding one user turn into the
// conversation orchestrator.
// @Summary Handle a user turn
// @Description Feeds one message into the user's conversation and returns the reply plus keyboard option hints.
// @Tags conversation
// @Accept json
// @Produce json
// @Param turnRequest body handlers.TurnRequest true "User turn"
// @Success 200 {object} gateway.Reply "Reply to render"
// @Failure 400 {object} handlers.TurnErrorResponse "Invalid request body"
// @Router /api/v1/turn [post]
func NewTurnHandler(orc TurnHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req TurnRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TurnErrorResponse{Error: "Invalid request body"})
			return
		}

		if strings.TrimSpace(req.UserID) == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TurnErrorResponse{Error: "user_id is required"})
			return
		}

		reply := orc.HandleTurn(r.Context(), strings.TrimSpace(req.UserID), req.Text)

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(reply)
	}
}
