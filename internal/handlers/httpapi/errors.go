package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	duoRepo "github.com/lverdier/defiparty/internal/repositories/duo"
	sessionRepo "github.com/lverdier/defiparty/internal/repositories/session"
	"github.com/lverdier/defiparty/internal/services/archive"
	"github.com/lverdier/defiparty/internal/services/game"
	"github.com/lverdier/defiparty/internal/services/lobby"
)

// HandlerError is a custom error type for handler construction failures
type HandlerError string

// Error implements the error interface
func (e HandlerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig         HandlerError = "config cannot be nil"
	ErrNilLobbyService   HandlerError = "lobby service cannot be nil"
	ErrNilGameService    HandlerError = "game service cannot be nil"
	ErrNilArchiveService HandlerError = "archive service cannot be nil"
	ErrNilSessionRepo    HandlerError = "session repository cannot be nil"
	ErrNilDuoRepo        HandlerError = "duo repository cannot be nil"
	ErrNilClock          HandlerError = "clock cannot be nil"
	ErrNilUUIDGenerator  HandlerError = "UUID generator cannot be nil"
)

// errorResponse is the JSON error envelope. Retryable marks concurrency
// conflicts the client should simply resubmit.
type errorResponse struct {
	Error     string `json:"error"`
	Retryable bool   `json:"retryable,omitempty"`
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, game.ErrSessionNotFound),
		errors.Is(err, game.ErrPlayerNotFound),
		errors.Is(err, archive.ErrSessionNotFound),
		errors.Is(err, sessionRepo.ErrSessionNotFound),
		errors.Is(err, duoRepo.ErrLinkNotFound):
		return http.StatusNotFound

	case errors.Is(err, game.ErrInvalidState),
		errors.Is(err, game.ErrNotPlayersTurn),
		errors.Is(err, game.ErrActionExhausted),
		errors.Is(err, game.ErrSwapAlreadyUsed),
		errors.Is(err, game.ErrConcurrencyConflict),
		errors.Is(err, game.ErrNoActiveDuo),
		errors.Is(err, game.ErrLastActivePlayer),
		errors.Is(err, game.ErrNoCurrentDare),
		errors.Is(err, archive.ErrSessionNotFinished):
		return http.StatusConflict

	case errors.Is(err, lobby.ErrEmptyRoster),
		errors.Is(err, lobby.ErrInvalidRounds),
		errors.Is(err, lobby.ErrUnknownCategory),
		errors.Is(err, lobby.ErrSoloRosterTooBig):
		return http.StatusBadRequest

	case errors.Is(err, game.ErrStoreUnavailable),
		errors.Is(err, sessionRepo.ErrStoreUnavailable):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusForError(err), errorResponse{
		Error:     err.Error(),
		Retryable: errors.Is(err, game.ErrConcurrencyConflict),
	})
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
