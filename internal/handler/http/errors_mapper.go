package http

import (
	"errors"
	"net/http"

	"github.com/gchalakovmmi/nap/internal/service"
	"github.com/gchalakovmmi/nap/internal/store"
	"github.com/gchalakovmmi/nap/internal/utils"
	"github.com/gchalakovmmi/nap/internal/validators"
	"github.com/gchalakovmmi/nap/models"
)

// Duplicate groups and memberships answer 400, not 409: the web pages treat
// every 400 as a user-facing validation message.
var errorStatusMap = map[error]int{
	validators.ErrGroupNameRequired:  http.StatusBadRequest,
	validators.ErrGroupNameTooLong:   http.StatusBadRequest,
	validators.ErrMissingGroupOrItem: http.StatusBadRequest,

	service.ErrMissingDBPath: http.StatusBadRequest,
	service.ErrNoGroupsFound: http.StatusNotFound,

	store.ErrGroupAlreadyExists: http.StatusBadRequest,
	store.ErrGroupNotFound:      http.StatusNotFound,
	store.ErrItemAlreadyInGroup: http.StatusBadRequest,
	store.ErrSettingNotFound:    http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError writes the generic JSON error body for err. Endpoints with
// bespoke messages handle their known errors first and fall back here.
func respondError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(status)}, status)
}
