package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/profilkantor/profile-api/internal/auth"
	"github.com/profilkantor/profile-api/internal/config"
	"github.com/profilkantor/profile-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestTokenManager(expiresIn string) *auth.TokenManager {
	return auth.NewTokenManager(&config.JWTConfig{
		Secret:    "test-secret",
		ExpiresIn: expiresIn,
		Issuer:    "profile-api",
	})
}

// =============================================================================
// Tokens
// =============================================================================

func TestTokenManager_IssueAndValidate(t *testing.T) {
	tm := newTestTokenManager("168h")
	userID := uuid.New()

	token, err := tm.Issue(userID, "ani@example.com", "Ani")
	require.NoError(t, err)

	userCtx, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, userCtx.UserID)
	assert.Equal(t, "ani@example.com", userCtx.Email)
	assert.Equal(t, "Ani", userCtx.Name)
	assert.Equal(t, 7*24*time.Hour, tm.ExpiresIn())
}

func TestTokenManager_PayloadCarriesIdentity(t *testing.T) {
	tm := newTestTokenManager("1h")
	userID := uuid.New()

	token, err := tm.Issue(userID, "ani@example.com", "Ani")
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims["id"])
	assert.Equal(t, "ani@example.com", claims["email"])
	assert.Equal(t, "Ani", claims["name"])
	assert.Contains(t, claims, "exp")
}

func TestTokenManager_RejectsBadTokens(t *testing.T) {
	tm := newTestTokenManager("1h")
	userID := uuid.New()

	other := auth.NewTokenManager(&config.JWTConfig{Secret: "other-secret", ExpiresIn: "1h", Issuer: "profile-api"})
	wrongSecret, err := other.Issue(userID, "a@example.com", "A")
	require.NoError(t, err)

	wrongIssuer, err := auth.NewTokenManager(&config.JWTConfig{Secret: "test-secret", ExpiresIn: "1h", Issuer: "someone-else"}).
		Issue(userID, "a@example.com", "A")
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id":  userID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	badID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "not-a-uuid",
		"iss": "profile-api",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.token"},
		{"wrong secret", wrongSecret},
		{"wrong issuer", wrongIssuer},
		{"alg none", noneAlg},
		{"bad id claim", badID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tm.ValidateToken(tt.token)
			assert.ErrorIs(t, err, auth.ErrInvalidToken)
		})
	}
}

func TestTokenManager_RejectsExpiredToken(t *testing.T) {
	tm := newTestTokenManager("1h")

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		ID: uuid.New().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "profile-api",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = tm.ValidateToken(token)
	assert.ErrorIs(t, err, auth.ErrExpiredToken)
}

// =============================================================================
// Passwords
// =============================================================================

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("rahasia123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2a$10$"), "bcrypt cost 10")

	ok, err := auth.CheckPassword(hash, "rahasia123")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = auth.CheckPassword(hash, "salah")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = auth.CheckPassword("not-a-hash", "x")
	assert.Error(t, err)
}

// =============================================================================
// Context
// =============================================================================

func TestUserContextRoundTrip(t *testing.T) {
	ctx := context.Background()
	_, ok := auth.FromContext(ctx)
	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, auth.UserIDFromContext(ctx))

	_, ok = auth.FromContext(auth.WithUserContext(ctx, nil))
	assert.False(t, ok, "nil user counts as unauthenticated")

	user := &auth.UserContext{UserID: uuid.New(), Email: "a@example.com", Name: "A"}
	ctx = auth.WithUserContext(ctx, user)

	got, ok := auth.FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, user, got)
	assert.Equal(t, user.UserID, auth.UserIDFromContext(ctx))
}

// =============================================================================
// Middleware
// =============================================================================

func TestMiddleware_Authenticate(t *testing.T) {
	tm := newTestTokenManager("1h")
	mw := auth.NewMiddleware(tm, zap.NewNop())
	userID := uuid.New()
	valid, err := tm.Issue(userID, "ani@example.com", "Ani")
	require.NoError(t, err)

	tests := []struct {
		name        string
		header      string
		wantStatus  int
		wantMessage string
	}{
		{"missing header", "", http.StatusUnauthorized, "Authentication required. Please login first."},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "Authentication required. Please login first."},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, "Authentication required. Please login first."},
		{"invalid token", "Bearer nope", http.StatusUnauthorized, "Invalid or expired token"},
		{"valid token", "Bearer " + valid, http.StatusOK, ""},
		{"lowercase scheme", "bearer " + valid, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured *auth.UserContext
			handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				captured, _ = auth.FromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/kegiatan", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				require.NotNil(t, captured)
				assert.Equal(t, userID, captured.UserID)
				return
			}

			assert.Nil(t, captured)
			var resp domain.Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "error", resp.Status)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}
