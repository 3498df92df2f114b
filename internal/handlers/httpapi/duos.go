package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/lverdier/defiparty/internal/models"
	duoRepo "github.com/lverdier/defiparty/internal/repositories/duo"
)

func (h *Handler) createDuoLink(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req createDuoLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.MentorProfileID == "" || req.EleveProfileID == "" {
		writeBadRequest(w, "mentorProfileId and eleveProfileId are required")
		return
	}
	if req.MentorProfileID == req.EleveProfileID {
		writeBadRequest(w, "a profile cannot mentor itself")
		return
	}

	link := &models.MentorEleveLink{
		ID:              h.uuidGenerator.NewUUID(),
		MentorProfileID: req.MentorProfileID,
		EleveProfileID:  req.EleveProfileID,
		CreatedAt:       models.NewTimestamp(h.clock.Now()),
	}

	if err := h.duoRepo.SaveLink(r.Context(), &duoRepo.SaveLinkInput{Link: link}); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, duoLinkResponse{Link: link})
}

func (h *Handler) listDuoLinks(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	out, err := h.duoRepo.ListLinks(r.Context(), &duoRepo.ListLinksInput{})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, duoLinksResponse{Links: out.Links})
}

func (h *Handler) consumeDuoLink(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.duoRepo.ConsumeLink(r.Context(), &duoRepo.ConsumeLinkInput{
		LinkID: ps.ByName("id"),
	}); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
