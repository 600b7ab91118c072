package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/securedesk/secure-desk/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) VaultClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewHTTPVaultClient(HTTPClientConfig{BaseURL: srv.URL})
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestRegister_StoresToken(t *testing.T) {
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/user/register", r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "alice@example.com", req.Email)

		writeJSON(t, w, http.StatusCreated, models.AuthResponse{
			User:  models.UserIdentity{ID: "user-1", Name: req.Name, Email: req.Email},
			Token: "issued-token",
		})
	})

	auth, err := cli.Register(context.Background(), models.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	assert.Equal(t, "user-1", auth.User.ID)
	assert.Equal(t, "issued-token", cli.Token())
}

func TestRegister_ConflictMapsToSentinel(t *testing.T) {
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, models.ErrorResponse{Error: "email already exists"})
	})

	_, err := cli.Register(context.Background(), models.RegisterRequest{Email: "taken@example.com"})
	require.ErrorIs(t, err, ErrConflict)
	assert.Empty(t, cli.Token())
}

func TestLogin_WrongPasswordMapsToUnauthorized(t *testing.T) {
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "invalid email or password"})
	})

	_, err := cli.Login(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "wrong"})
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestCreateCredential_SendsBearerToken(t *testing.T) {
	var gotAuthHeader string

	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/credentials/", r.URL.Path)
		gotAuthHeader = r.Header.Get("Authorization")

		var item models.Credential
		require.NoError(t, json.NewDecoder(r.Body).Decode(&item))
		item.ID = "rec-1"
		writeJSON(t, w, http.StatusCreated, item)
	})
	cli.SetToken("session-token")

	created, err := cli.Credentials().Create(context.Background(), models.Credential{
		Title:    "gmail",
		Username: "alice",
		Password: "s3cretpass",
	})
	require.NoError(t, err)

	assert.Equal(t, "rec-1", created.ID)
	assert.Equal(t, "Bearer session-token", gotAuthHeader)
}

func TestListCards_DecodesItems(t *testing.T) {
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/cards/", r.URL.Path)
		writeJSON(t, w, http.StatusOK, []models.BankCard{
			{ID: "rec-1", CardName: "travel"},
			{ID: "rec-2", CardName: "groceries"},
		})
	})
	cli.SetToken("session-token")

	cards, err := cli.Cards().List(context.Background())
	require.NoError(t, err)

	require.Len(t, cards, 2)
	assert.Equal(t, "travel", cards[0].CardName)
}

func TestUpdateDocument_NotFound(t *testing.T) {
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/api/documents/missing-id", r.URL.Path)
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Error: "record was not found"})
	})
	cli.SetToken("session-token")

	_, err := cli.Documents().Update(context.Background(), "missing-id", map[string]string{"name": "passport"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateBankDetail_ForeignRecordForbidden(t *testing.T) {
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusForbidden, models.ErrorResponse{Error: "record belongs to another user"})
	})
	cli.SetToken("session-token")

	_, err := cli.BankDetails().Update(context.Background(), "rec-9", map[string]string{"bankName": "other"})
	require.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteCredential_Success(t *testing.T) {
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/credentials/rec-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})
	cli.SetToken("session-token")

	err := cli.Credentials().Delete(context.Background(), "rec-1")
	assert.NoError(t, err)
}

func TestStats_DecodesCounts(t *testing.T) {
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/stats", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.ItemCounts{Credentials: 3, Cards: 1})
	})
	cli.SetToken("session-token")

	counts, err := cli.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), counts.Credentials)
	assert.Equal(t, int64(1), counts.Cards)
}

func TestRequestWithoutToken_OmitsAuthorizationHeader(t *testing.T) {
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "empty `Authorization` header"})
	})

	_, err := cli.Stats(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
}
