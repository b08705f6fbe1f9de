package http

import (
	"net/http"
	"strconv"

	"github.com/gchalakovmmi/nap/internal/logger"
	"github.com/gchalakovmmi/nap/internal/utils"
)

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := r.URL.Query().Get("q")
	page := 1
	if p := r.URL.Query().Get("page"); p != "" {
		parsed, err := strconv.Atoi(p)
		if err == nil {
			page = parsed
		}
	}

	response, err := h.services.CatalogService.Search(ctx, query, page)
	if err != nil {
		log.Err(err).Str("query", query).Int("page", page).Msg("catalog search failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
