package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// pages
	router.Get("/", h.homePage)
	router.Get("/manage_groups", h.manageGroupsPage)
	router.Get("/edit_group/{groupID:[0-9]+}", h.editGroupPage)
	router.Get("/settings", h.settingsPage)

	// catalog
	router.Get("/search", h.search)

	// groups
	router.Get("/groups", h.getGroups)
	router.Post("/groups", h.createGroup)
	router.Get("/groups/{groupID:[0-9]+}", h.getGroup)
	router.Put("/groups/{groupID:[0-9]+}", h.updateGroup)
	router.Delete("/groups/{groupID:[0-9]+}", h.deleteGroup)
	router.Get("/groups/{groupID:[0-9]+}/items", h.getGroupItems)
	router.Post("/groups/items", h.addItemToGroup)
	router.Delete("/groups/{groupID:[0-9]+}/items/{itemID:[0-9]+}", h.removeItemFromGroup)

	// settings
	router.Get("/api/settings", h.getSettings)
	router.Post("/settings", h.updateSettings)

	// export
	router.Get("/export_word", h.exportWord)

	return router
}
