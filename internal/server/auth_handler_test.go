package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthHandler() (*AuthHandler, *fakeUserStore) {
	store := newFakeUserStore()
	userService := testUserService(store)
	jwtService := testJWTService(1)
	return NewAuthHandler(userService, jwtService), store
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("success returns user and token", func(t *testing.T) {
		h, _ := testAuthHandler()
		rec := postJSON(t, h.Register, "/auth/register", RegisterRequest{
			Email:     "dana@example.com",
			Password:  "longenough",
			FirstName: "Dana",
			LastName:  "Kim",
		})

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp AuthResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "dana@example.com", resp.User.Email)
		assert.NotEmpty(t, resp.Token)
		// The password hash is never serialized
		assert.NotContains(t, rec.Body.String(), "passwordHash")
	})

	t.Run("invalid body", func(t *testing.T) {
		h, _ := testAuthHandler()
		req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()
		h.Register(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("short password", func(t *testing.T) {
		h, _ := testAuthHandler()
		rec := postJSON(t, h.Register, "/auth/register", RegisterRequest{
			Email:     "dana@example.com",
			Password:  "short",
			FirstName: "Dana",
			LastName:  "Kim",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		h, _ := testAuthHandler()
		body := RegisterRequest{
			Email:     "dup@example.com",
			Password:  "longenough",
			FirstName: "First",
			LastName:  "User",
		}
		require.Equal(t, http.StatusCreated, postJSON(t, h.Register, "/auth/register", body).Code)
		assert.Equal(t, http.StatusConflict, postJSON(t, h.Register, "/auth/register", body).Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	h, _ := testAuthHandler()
	register := RegisterRequest{
		Email:     "eve@example.com",
		Password:  "valid password",
		FirstName: "Eve",
		LastName:  "Stone",
	}
	require.Equal(t, http.StatusCreated, postJSON(t, h.Register, "/auth/register", register).Code)

	t.Run("success", func(t *testing.T) {
		rec := postJSON(t, h.Login, "/auth/login", LoginRequest{
			Email:    "eve@example.com",
			Password: "valid password",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp AuthResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := postJSON(t, h.Login, "/auth/login", LoginRequest{
			Email:    "eve@example.com",
			Password: "wrong password",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid email or password")
	})

	t.Run("unknown email reports the same message", func(t *testing.T) {
		rec := postJSON(t, h.Login, "/auth/login", LoginRequest{
			Email:    "ghost@example.com",
			Password: "valid password",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid email or password")
	})
}
