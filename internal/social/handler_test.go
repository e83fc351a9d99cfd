package social

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/estivensal7/Moment-API/internal/auth"
	"github.com/estivensal7/Moment-API/internal/models"
)

func newTestRouter(store *fakeUserStore) http.Handler {
	h := NewHandler(NewService(store, &fakeLocker{}))
	r := chi.NewRouter()
	r.Get("/users/{username}", h.Profile)
	r.Post("/users/{id}/follow", h.Follow)
	r.Post("/users/me/privacy", h.Privacy)
	return r
}

func asUser(req *http.Request, username string) *http.Request {
	return req.WithContext(auth.ContextWithClaims(req.Context(), &auth.Claims{
		UserID:   "test-id",
		Email:    username + "@example.com",
		Username: username,
	}))
}

func TestProfileEndpoint_PrivacyGate(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore(
		user("alice", models.PrivacyPublic),
		user("bob", models.PrivacyPrivate, "carol"),
	)
	router := newTestRouter(store)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, asUser(httptest.NewRequest(http.MethodGet, "/users/bob", nil), "alice"))
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, asUser(httptest.NewRequest(http.MethodGet, "/users/bob", nil), "carol"))
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "bob", got.Username)
}

func TestProfileEndpoint_NoClaims(t *testing.T) {
	t.Parallel()

	router := newTestRouter(newFakeUserStore(user("bob", models.PrivacyPublic)))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/bob", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFollowEndpoint_Toggle(t *testing.T) {
	t.Parallel()

	bob := user("bob", models.PrivacyPublic)
	store := newFakeUserStore(user("alice", models.PrivacyPublic), bob)
	router := newTestRouter(store)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, asUser(httptest.NewRequest(http.MethodPost, "/users/"+bob.ID.Hex()+"/follow", nil), "alice"))
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Followings, 1)
	require.Equal(t, "bob", got.Followings[0].Username)

	bobNow, err := store.GetByUsername(context.Background(), "bob")
	require.NoError(t, err)
	require.Len(t, bobNow.Followers, 1)
}

func TestFollowEndpoint_UnknownTarget(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore(user("alice", models.PrivacyPublic))
	router := newTestRouter(store)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, asUser(httptest.NewRequest(http.MethodPost, "/users/ffffffffffffffffffffffff/follow", nil), "alice"))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
