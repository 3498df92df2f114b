package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	sessionRepo "github.com/lverdier/defiparty/internal/repositories/session"
	"github.com/lverdier/defiparty/internal/services/archive"
	"github.com/lverdier/defiparty/internal/services/game"
	"github.com/lverdier/defiparty/internal/services/lobby"
)

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	seeds := make([]lobby.PlayerSeed, 0, len(req.Players))
	for _, p := range req.Players {
		seeds = append(seeds, lobby.PlayerSeed{
			Name:      p.Name,
			Avatar:    p.Avatar,
			ProfileID: p.ProfileID,
		})
	}

	out, err := h.lobbyService.AssembleSession(r.Context(), &lobby.AssembleSessionInput{
		Host: lobby.PlayerSeed{
			Name:      req.Host.Name,
			Avatar:    req.Host.Avatar,
			ProfileID: req.Host.ProfileID,
		},
		Players:  seeds,
		Settings: req.Settings,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.sessionRepo.SaveSession(r.Context(), &sessionRepo.SaveSessionInput{
		Session: out.Session,
	}); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, sessionResponse{Session: out.Session})
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	out, err := h.gameService.GetSession(r.Context(), &game.GetSessionInput{
		SessionID: ps.ByName("id"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{Session: out.Session})
}

func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req startSessionRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}
	}

	out, err := h.gameService.StartSession(r.Context(), &game.StartSessionInput{
		SessionID: ps.ByName("id"),
		FirstDare: req.FirstDare,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{Session: out.Session})
}

func (h *Handler) advanceTurn(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req advanceTurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.PlayerID == "" {
		writeBadRequest(w, "playerId is required")
		return
	}

	outcome := game.TurnOutcome(req.Outcome)
	switch outcome {
	case game.TurnOutcomeCompleted, game.TurnOutcomeFailed, game.TurnOutcomeJoker:
	default:
		writeBadRequest(w, "unknown outcome")
		return
	}

	out, err := h.gameService.AdvanceTurn(r.Context(), &game.AdvanceTurnInput{
		SessionID:  ps.ByName("id"),
		PlayerID:   req.PlayerID,
		ScoreDelta: req.ScoreDelta,
		Outcome:    outcome,
		NextDare:   req.NextDare,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, advanceTurnResponse{
		Session:             out.Session,
		RoundCompleted:      out.RoundCompleted,
		Finished:            out.Finished,
		Penalty:             out.Penalty,
		NextDifficultyFloor: out.NextDifficultyFloor,
		ArchivePending:      out.ArchivePending,
	})
}

func (h *Handler) useJoker(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req playerActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.PlayerID == "" {
		writeBadRequest(w, "playerId is required")
		return
	}

	out, err := h.gameService.UseJoker(r.Context(), &game.UseJokerInput{
		SessionID: ps.ByName("id"),
		PlayerID:  req.PlayerID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, jokerResponse{JokersRemaining: out.JokersRemaining})
}

func (h *Handler) useReroll(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req playerActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.PlayerID == "" {
		writeBadRequest(w, "playerId is required")
		return
	}

	out, err := h.gameService.UseReroll(r.Context(), &game.UseRerollInput{
		SessionID: ps.ByName("id"),
		PlayerID:  req.PlayerID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rerollResponse{
		RerollsRemaining: out.RerollsRemaining,
		NeedsNewDare:     out.NeedsNewDare,
	})
}

func (h *Handler) useExchange(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req exchangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.PlayerID == "" {
		writeBadRequest(w, "playerId is required")
		return
	}
	if req.TargetCategory == "" {
		writeBadRequest(w, "targetCategory is required")
		return
	}

	out, err := h.gameService.UseExchange(r.Context(), &game.UseExchangeInput{
		SessionID:      ps.ByName("id"),
		PlayerID:       req.PlayerID,
		TargetCategory: req.TargetCategory,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, exchangeResponse{
		ExchangesRemaining: out.ExchangesRemaining,
		Session:            out.Session,
	})
}

func (h *Handler) setCurrentDare(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req setDareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.Dare == nil {
		writeBadRequest(w, "dare is required")
		return
	}

	out, err := h.gameService.SetCurrentDare(r.Context(), &game.SetCurrentDareInput{
		SessionID: ps.ByName("id"),
		Dare:      req.Dare,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{Session: out.Session})
}

func (h *Handler) swapPlayers(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req swapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.Player1ID == "" || req.Player2ID == "" {
		writeBadRequest(w, "player1Id and player2Id are required")
		return
	}

	out, err := h.gameService.SwapPlayers(r.Context(), &game.SwapPlayersInput{
		SessionID: ps.ByName("id"),
		Player1ID: req.Player1ID,
		Player2ID: req.Player2ID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{Session: out.Session})
}

func (h *Handler) pauseSession(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	out, err := h.gameService.PauseSession(r.Context(), &game.PauseSessionInput{
		SessionID: ps.ByName("id"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{Session: out.Session})
}

func (h *Handler) resumeSession(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	out, err := h.gameService.ResumeSession(r.Context(), &game.ResumeSessionInput{
		SessionID: ps.ByName("id"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{Session: out.Session})
}

func (h *Handler) pausePlayer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	out, err := h.gameService.PausePlayer(r.Context(), &game.PausePlayerInput{
		SessionID: ps.ByName("id"),
		PlayerID:  ps.ByName("playerId"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{Session: out.Session})
}

func (h *Handler) resumePlayer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	out, err := h.gameService.ResumePlayer(r.Context(), &game.ResumePlayerInput{
		SessionID: ps.ByName("id"),
		PlayerID:  ps.ByName("playerId"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{Session: out.Session})
}

func (h *Handler) useAccompaniment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req playerActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.PlayerID == "" {
		writeBadRequest(w, "playerId is required")
		return
	}

	out, err := h.gameService.UseAccompaniment(r.Context(), &game.UseAccompanimentInput{
		SessionID: ps.ByName("id"),
		PlayerID:  req.PlayerID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, accompanimentResponse{
		Session:        out.Session,
		LinkID:         out.LinkID,
		MentorPlayerID: out.MentorPlayerID,
		ElevePlayerID:  out.ElevePlayerID,
	})
}

// finalizeSession is the archival retry endpoint for games that finished
// with archivePending set.
func (h *Handler) finalizeSession(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	out, err := h.archiveService.FinalizeSession(r.Context(), &archive.FinalizeSessionInput{
		SessionID: ps.ByName("id"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, archiveResponse{
		Record:   out.Record,
		Appended: out.Appended,
	})
}

func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	out, err := h.archiveService.GetHistory(r.Context(), &archive.GetHistoryInput{})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, historyResponse{Records: out.Records})
}
