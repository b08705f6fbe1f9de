package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gchalakovmmi/nap/internal/logger"
	"github.com/gchalakovmmi/nap/internal/service"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

func (h *Handler) exportWord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filename, content, err := h.services.ExportService.BuildDocument(ctx)
	if err != nil {
		if errors.Is(err, service.ErrNoGroupsFound) {
			http.Error(w, "No groups found", http.StatusNotFound)
			return
		}
		log.Err(err).Msg("export failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", docxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(content); err != nil {
		log.Err(err).Msg("writing export response failed")
	}
}
