package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/securedesk/secure-desk/internal/utils"
	"github.com/securedesk/secure-desk/models"
)

// nextSpy records whether the downstream handler ran and what user ID it saw.
type nextSpy struct {
	called bool
	userID string
	ok     bool
}

func (s *nextSpy) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.called = true
		s.userID, s.ok = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	h, _ := newTestHandler(t)
	spy := &nextSpy{}

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()

	h.auth(spy.handler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, spy.called)
	assert.Contains(t, rec.Body.String(), ErrEmptyAuthorizationHeader.Error())
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	h, _ := newTestHandler(t)
	spy := &nextSpy{}

	for _, header := range []string{"Bearer", "Bearer ", "token-without-scheme"} {
		req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()

		h.auth(spy.handler()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		assert.False(t, spy.called, "header %q", header)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	h, m := newTestHandler(t)
	m.users.EXPECT().
		ParseToken(gomock.Any(), "bad-token").
		Return(models.Token{}, assert.AnError)

	spy := &nextSpy{}
	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()

	h.auth(spy.handler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, spy.called)
}

func TestAuthMiddleware_ValidTokenPropagatesUserID(t *testing.T) {
	h, m := newTestHandler(t)
	m.users.EXPECT().
		ParseToken(gomock.Any(), "good-token").
		Return(models.Token{UserID: "user-alice"}, nil)

	spy := &nextSpy{}
	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	h.auth(spy.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, spy.called)
	assert.True(t, spy.ok)
	assert.Equal(t, "user-alice", spy.userID)
}
