package http

import (
	"encoding/json"
	"net/http"

	"github.com/gchalakovmmi/nap/internal/logger"
	"github.com/gchalakovmmi/nap/internal/utils"
	"github.com/gchalakovmmi/nap/models"
)

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	dbPath, err := h.services.SettingsService.DBPath(ctx)
	if err != nil {
		log.Err(err).Msg("reading settings failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, models.SettingsResponse{DBPath: dbPath}, http.StatusOK)
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	// an explicitly empty path is stored; only a missing field is an error
	if req.DBPath == nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: "Missing db_path parameter"}, http.StatusBadRequest)
		return
	}

	if err := h.services.SettingsService.SetDBPath(ctx, *req.DBPath); err != nil {
		log.Err(err).Msg("updating settings failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Settings updated"}, http.StatusOK)
}
