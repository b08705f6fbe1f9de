package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gchalakovmmi/nap/internal/logger"
	"github.com/gchalakovmmi/nap/internal/store"
	"github.com/gchalakovmmi/nap/internal/utils"
	"github.com/gchalakovmmi/nap/internal/validators"
	"github.com/gchalakovmmi/nap/models"
)

// groupIDParam extracts the {groupID} route parameter. The route pattern
// restricts it to digits, so a parse failure means an out-of-range value.
func groupIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "groupID"), 10, 64)
}

func (h *Handler) getGroups(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	groups, err := h.services.GroupService.GetGroups(ctx)
	if err != nil {
		log.Err(err).Msg("listing groups failed")
		respondError(w, err)
		return
	}
	if groups == nil {
		groups = []models.Group{}
	}

	utils.WriteJSON(w, groups, http.StatusOK)
}

func (h *Handler) createGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.NameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	group, err := h.services.GroupService.CreateGroup(ctx, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, validators.ErrGroupNameRequired):
			utils.WriteJSON(w, models.ErrorResponse{Error: "Group name is required"}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrGroupAlreadyExists):
			log.Err(err).Str("name", req.Name).Msg("group already exists")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Group already exists"}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during group creation")
			respondError(w, err)
			return
		}
	}

	utils.WriteJSON(w, group, http.StatusCreated)
}

func (h *Handler) getGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	groupID, err := groupIDParam(r)
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: "Group not found"}, http.StatusNotFound)
		return
	}

	group, err := h.services.GroupService.GetGroupByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, store.ErrGroupNotFound) {
			utils.WriteJSON(w, models.ErrorResponse{Error: "Group not found"}, http.StatusNotFound)
			return
		}
		log.Err(err).Int64("groupID", groupID).Msg("group lookup failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, group, http.StatusOK)
}

func (h *Handler) updateGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	groupID, err := groupIDParam(r)
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: "Group not found"}, http.StatusNotFound)
		return
	}

	var req models.NameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if err := h.services.GroupService.RenameGroup(ctx, groupID, req.Name); err != nil {
		switch {
		case errors.Is(err, validators.ErrGroupNameRequired):
			utils.WriteJSON(w, models.ErrorResponse{Error: "Group name is required"}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrGroupAlreadyExists):
			utils.WriteJSON(w, models.ErrorResponse{Error: "Group name already exists"}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrGroupNotFound):
			utils.WriteJSON(w, models.ErrorResponse{Error: "Group not found"}, http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("groupID", groupID).Msg("unexpected error occurred during group rename")
			respondError(w, err)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Group updated"}, http.StatusOK)
}

func (h *Handler) deleteGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	groupID, err := groupIDParam(r)
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: "Group not found"}, http.StatusNotFound)
		return
	}

	if err := h.services.GroupService.DeleteGroup(ctx, groupID); err != nil {
		log.Err(err).Int64("groupID", groupID).Msg("group deletion failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Group deleted"}, http.StatusOK)
}

func (h *Handler) getGroupItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	groupID, err := groupIDParam(r)
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: "Group not found"}, http.StatusNotFound)
		return
	}

	itemIDs, err := h.services.GroupService.GetItems(ctx, groupID)
	if err != nil {
		log.Err(err).Int64("groupID", groupID).Msg("listing group items failed")
		respondError(w, err)
		return
	}
	if itemIDs == nil {
		itemIDs = []int64{}
	}

	utils.WriteJSON(w, itemIDs, http.StatusOK)
}

func (h *Handler) addItemToGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if err := h.services.GroupService.AddItem(ctx, req.GroupID, req.ItemID); err != nil {
		switch {
		case errors.Is(err, validators.ErrMissingGroupOrItem):
			utils.WriteJSON(w, models.ErrorResponse{Error: "Missing group_id or item_id"}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrItemAlreadyInGroup):
			utils.WriteJSON(w, models.ErrorResponse{Error: "Item already in group"}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Int64("groupID", req.GroupID).Int64("itemID", req.ItemID).
				Msg("unexpected error occurred while adding item to group")
			respondError(w, err)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Item added to group"}, http.StatusCreated)
}

func (h *Handler) removeItemFromGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	groupID, err := groupIDParam(r)
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: "Group not found"}, http.StatusNotFound)
		return
	}
	itemID, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: "Item not found"}, http.StatusNotFound)
		return
	}

	if err := h.services.GroupService.RemoveItem(ctx, groupID, itemID); err != nil {
		log.Err(err).Int64("groupID", groupID).Int64("itemID", itemID).Msg("removing item from group failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Item removed from group"}, http.StatusOK)
}
