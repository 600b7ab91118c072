package http

import (
	"net/http"

	"github.com/securedesk/secure-desk/internal/app"
	"github.com/securedesk/secure-desk/internal/logger"
	"github.com/securedesk/secure-desk/internal/utils"
)

// stats responds with the authenticated user's per-collection item counts.
func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg(app.MsgNoUserIDProvided)
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	counts, err := h.services.Aggregator.SnapshotCounts(r.Context(), userID)
	if err != nil {
		log.Err(err).Msg("error counting records")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, counts, http.StatusOK)
}
