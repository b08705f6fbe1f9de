package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gchalakovmmi/nap/internal/logger"
)

// Page handlers render the embedded HTML templates. The pages talk to the
// JSON endpoints from the browser; the only data injected server-side is the
// group ID on the edit page and the current table path on the settings page.

func (h *Handler) homePage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "home.html", nil)
}

func (h *Handler) manageGroupsPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "manage_groups.html", nil)
}

func (h *Handler) editGroupPage(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.ParseInt(chi.URLParam(r, "groupID"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	h.renderPage(w, r, "edit_group.html", map[string]any{"GroupID": groupID})
}

func (h *Handler) settingsPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	dbPath, err := h.services.SettingsService.DBPath(r.Context())
	if err != nil {
		log.Err(err).Msg("reading settings for page failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.renderPage(w, r, "settings.html", map[string]any{"DBPath": dbPath})
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, name string, data any) {
	log := logger.FromRequest(r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Err(err).Str("template", name).Msg("rendering page failed")
	}
}
