package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/securedesk/secure-desk/internal/app"
	"github.com/securedesk/secure-desk/internal/logger"
	"github.com/securedesk/secure-desk/internal/utils"
)

// recordService is the CRUD surface shared by all four item services.
// [service.CredentialService], [service.CardService],
// [service.BankDetailService], and [service.DocumentService] all satisfy it
// for their respective item types, which lets the transport layer reuse one
// set of handlers per HTTP verb instead of four.
type recordService[T any] interface {
	Create(ctx context.Context, userID string, item T) (T, error)
	GetAll(ctx context.Context, userID string) ([]T, error)
	Update(ctx context.Context, userID, recordID string, fields map[string]string) (T, error)
	Delete(ctx context.Context, userID, recordID string) error
}

// createRecord decodes the item from the request body and stores it for the
// authenticated user, responding with the stored item (server-assigned ID
// and timestamps included) and HTTP 201.
func createRecord[T any](svc recordService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		userID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			log.Error().Msg(app.MsgNoUserIDProvided)
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		var item T
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			log.Err(err).Msg(app.MsgInvalidJSON)
			http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
			return
		}

		created, err := svc.Create(r.Context(), userID, item)
		if err != nil {
			log.Err(err).Msg("error creating record")
			writeError(w, err)
			return
		}

		utils.WriteJSON(w, created, http.StatusCreated)
	}
}

// listRecords responds with every item the authenticated user owns in the
// service's collection, as a JSON array. A record whose ciphertext cannot
// be read is excluded by the service; as long as any readable records
// remain the response is still 200 with those records, so one corrupt row
// never hides the rest of the collection.
func listRecords[T any](svc recordService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		userID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			log.Error().Msg(app.MsgNoUserIDProvided)
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		items, err := svc.GetAll(r.Context(), userID)
		if err != nil {
			if len(items) == 0 {
				log.Err(err).Msg("error listing records")
				writeError(w, err)
				return
			}
			log.Err(err).Msg("some records were unreadable and excluded from the listing")
		}

		if items == nil {
			items = []T{}
		}

		utils.WriteJSON(w, items, http.StatusOK)
	}
}

// updateRecord applies a partial field update to the record named by the
// {recordID} URL parameter and responds with the updated item.
func updateRecord[T any](svc recordService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		userID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			log.Error().Msg(app.MsgNoUserIDProvided)
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		recordID := chi.URLParam(r, "recordID")

		var fields map[string]string
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			log.Err(err).Msg(app.MsgInvalidJSON)
			http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
			return
		}

		updated, err := svc.Update(r.Context(), userID, recordID, fields)
		if err != nil {
			log.Err(err).Str("record_id", recordID).Msg("error updating record")
			writeError(w, err)
			return
		}

		utils.WriteJSON(w, updated, http.StatusOK)
	}
}

// deleteRecord removes the record named by the {recordID} URL parameter and
// responds with HTTP 204 on success.
func deleteRecord[T any](svc recordService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		userID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			log.Error().Msg(app.MsgNoUserIDProvided)
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		recordID := chi.URLParam(r, "recordID")

		if err := svc.Delete(r.Context(), userID, recordID); err != nil {
			log.Err(err).Str("record_id", recordID).Msg("error deleting record")
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
