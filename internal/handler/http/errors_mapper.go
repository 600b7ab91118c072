package http

import (
	"errors"
	"net/http"

	"github.com/securedesk/secure-desk/internal/crypto"
	"github.com/securedesk/secure-desk/internal/service"
	"github.com/securedesk/secure-desk/internal/store"
	"github.com/securedesk/secure-desk/internal/utils"
	"github.com/securedesk/secure-desk/internal/validators"
	"github.com/securedesk/secure-desk/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:  http.StatusBadRequest,
	service.ErrNoFieldsToUpdate:     http.StatusBadRequest,
	validators.ErrValidation:        http.StatusBadRequest,
	service.ErrAuthenticationFailed: http.StatusUnauthorized,

	store.ErrNotAuthorized:      http.StatusForbidden,
	store.ErrRecordNotFound:     http.StatusNotFound,
	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrBackendUnavailable: http.StatusBadGateway,
	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,

	crypto.ErrDecryptionFailed: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError translates a service or store error into the JSON error
// envelope. Validation failures additionally carry the offending field
// names so form UIs can highlight them.
func writeError(w http.ResponseWriter, err error) {
	resp := models.ErrorResponse{Error: err.Error()}
	if missing := validators.MissingFields(err); len(missing) > 0 {
		resp.MissingFields = missing
	}
	utils.WriteJSON(w, resp, statusFromError(err))
}
