package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "dealspace-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *AuthConfig {
	return &AuthConfig{
		JWTSecret: "test-signing-key",
		TokenTTL:  time.Hour,
		Issuer:    "dealspace-test",
		Providers: map[string]ProviderConfig{
			ProviderGoogle:   {UserInfoURL: "http://google.invalid/userinfo"},
			ProviderFacebook: {UserInfoURL: "http://facebook.invalid/me"},
		},
	}
}

func testSubject() TokenSubject {
	return TokenSubject{
		UserID:   uuid.New(),
		TenantID: uuid.New(),
		Email:    "agent@example.com",
		Role:     "agent",
	}
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config structure", func(t *testing.T) {
		config := testConfig()

		err := config.ValidateConfig()
		assert.NoError(t, err)
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		config := testConfig()
		config.JWTSecret = ""

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("non-positive ttl", func(t *testing.T) {
		config := testConfig()
		config.TokenTTL = 0

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "token TTL must be positive")
	})

	t.Run("provider without userinfo url", func(t *testing.T) {
		config := testConfig()
		config.Providers[ProviderFacebook] = ProviderConfig{}

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "provider 'facebook': userinfo_url is required")
	})
}

func TestGetProvider(t *testing.T) {
	config := testConfig()

	t.Run("existing provider", func(t *testing.T) {
		provider, err := config.GetProvider(ProviderGoogle)
		require.NoError(t, err)
		assert.Equal(t, "http://google.invalid/userinfo", provider.UserInfoURL)
	})

	t.Run("non-existing provider", func(t *testing.T) {
		provider, err := config.GetProvider("github")
		assert.Error(t, err)
		assert.Nil(t, provider)
	})
}

func TestJWTOperations(t *testing.T) {
	tokens, err := NewTokenService(testConfig(), nil)
	require.NoError(t, err)

	subject := testSubject()
	tokenString, err := tokens.GenerateJWT(subject)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := tokens.ValidateJWT(tokenString)
	require.NoError(t, err)
	assert.Equal(t, subject.UserID, claims.UserID)
	assert.Equal(t, subject.TenantID, claims.TenantID)
	assert.Equal(t, subject.Email, claims.Email)
	assert.Equal(t, subject.Role, claims.Role)
	assert.Equal(t, "dealspace-test", claims.Issuer)
	assert.Equal(t, subject.UserID.String(), claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)

	t.Run("invalid token", func(t *testing.T) {
		_, err := tokens.ValidateJWT("invalid.token.here")
		assert.Error(t, err)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		other := testConfig()
		other.JWTSecret = "another-key"
		otherTokens, err := NewTokenService(other, nil)
		require.NoError(t, err)

		_, err = otherTokens.ValidateJWT(tokenString)
		assert.Error(t, err)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &AuthClaims{UserID: subject.UserID})
		raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = tokens.ValidateJWT(raw)
		assert.Error(t, err)
	})
}

func TestJWTExpiration(t *testing.T) {
	tokens, err := NewTokenService(testConfig(), nil)
	require.NoError(t, err)

	issuedAt := time.Now()
	tokens.now = func() time.Time { return issuedAt }
	tokenString, err := tokens.GenerateJWT(testSubject())
	require.NoError(t, err)

	tokens.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	_, err = tokens.Authenticate(context.Background(), tokenString)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestNewTokenService_InvalidConfig(t *testing.T) {
	config := testConfig()
	config.JWTSecret = ""

	tokens, err := NewTokenService(config, nil)
	assert.Error(t, err)
	assert.Nil(t, tokens)
}

func TestRevoke(t *testing.T) {
	ctx := context.Background()
	tokens, err := NewTokenService(testConfig(), nil)
	require.NoError(t, err)

	tokenString, err := tokens.GenerateJWT(testSubject())
	require.NoError(t, err)

	claims, err := tokens.Authenticate(ctx, tokenString)
	require.NoError(t, err)

	require.NoError(t, tokens.Revoke(ctx, claims))

	_, err = tokens.Authenticate(ctx, tokenString)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)

	t.Run("other tokens stay valid", func(t *testing.T) {
		fresh, err := tokens.GenerateJWT(testSubject())
		require.NoError(t, err)

		_, err = tokens.Authenticate(ctx, fresh)
		assert.NoError(t, err)
	})

	t.Run("claims without id", func(t *testing.T) {
		err := tokens.Revoke(ctx, &AuthClaims{})
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

func TestMemoryBlacklist(t *testing.T) {
	ctx := context.Background()
	blacklist := NewMemoryBlacklist()
	current := time.Now()
	blacklist.now = func() time.Time { return current }

	require.NoError(t, blacklist.Revoke(ctx, "jti-1", time.Minute))

	revoked, err := blacklist.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = blacklist.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)

	current = current.Add(2 * time.Minute)
	revoked, err = blacklist.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
	assert.Empty(t, blacklist.entries)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, CheckPassword(hash, "correct horse battery"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("", "correct horse battery"))
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tokens, err := NewTokenService(testConfig(), nil)
	require.NoError(t, err)
	middleware := NewAuthMiddleware(tokens, nil)

	subject := testSubject()
	tokenString, err := tokens.GenerateJWT(subject)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/me", middleware.RequireAuth(), func(c *gin.Context) {
		userID, _ := GetUserID(c)
		tenantID, _ := GetTenantID(c)
		email, _ := GetUserEmail(c)
		role, _ := GetRole(c)
		claims, ok := GetAuthClaims(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{
			"user_id":   userID,
			"tenant_id": tenantID,
			"email":     email,
			"role":      role,
			"jti":       claims.ID,
		})
	})
	router.GET("/managers", middleware.RequireAuth(), middleware.RequireRole("owner", "admin"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	call := func(path, header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("valid token sets context", func(t *testing.T) {
		w := call("/me", "Bearer "+tokenString)
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, subject.UserID.String(), body["user_id"])
		assert.Equal(t, subject.TenantID.String(), body["tenant_id"])
		assert.Equal(t, subject.Email, body["email"])
		assert.Equal(t, "agent", body["role"])
		assert.NotEmpty(t, body["jti"])
	})

	t.Run("missing header", func(t *testing.T) {
		w := call("/me", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, false, body["status"])
		assert.Equal(t, apperrors.ErrMissingToken.Error(), body["message"])
		assert.Nil(t, body["data"])
	})

	t.Run("malformed header", func(t *testing.T) {
		w := call("/me", "Token "+tokenString)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := call("/me", "Bearer garbage")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("role not allowed", func(t *testing.T) {
		w := call("/managers", "Bearer "+tokenString)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("role allowed", func(t *testing.T) {
		owner := testSubject()
		owner.Role = "owner"
		ownerToken, err := tokens.GenerateJWT(owner)
		require.NoError(t, err)

		w := call("/managers", "Bearer "+ownerToken)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("revoked token", func(t *testing.T) {
		claims, err := tokens.ValidateJWT(tokenString)
		require.NoError(t, err)
		require.NoError(t, tokens.Revoke(context.Background(), claims))

		w := call("/me", "Bearer "+tokenString)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

type stubSubjects map[uuid.UUID]*TokenSubject

func (s stubSubjects) LoadSubject(_ context.Context, _, userID uuid.UUID) (*TokenSubject, error) {
	if subject, ok := s[userID]; ok {
		return subject, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func TestMiddleware_LiveUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tokens, err := NewTokenService(testConfig(), nil)
	require.NoError(t, err)

	admin := testSubject()
	admin.Role = "admin"
	users := stubSubjects{}
	middleware := NewAuthMiddleware(tokens, users)

	router := gin.New()
	router.GET("/managers", middleware.RequireAuth(), middleware.RequireRole("owner", "admin"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	tokenString, err := tokens.GenerateJWT(admin)
	require.NoError(t, err)
	call := func() int {
		req := httptest.NewRequest(http.MethodGet, "/managers", nil)
		req.Header.Set("Authorization", "Bearer "+tokenString)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	live := admin
	users[admin.UserID] = &live
	assert.Equal(t, http.StatusNoContent, call())

	t.Run("demoted user loses manager access", func(t *testing.T) {
		demoted := admin
		demoted.Role = "agent"
		users[admin.UserID] = &demoted
		assert.Equal(t, http.StatusForbidden, call())
	})

	t.Run("deleted user is rejected", func(t *testing.T) {
		delete(users, admin.UserID)
		assert.Equal(t, http.StatusUnauthorized, call())
	})
}

func TestSocialClient(t *testing.T) {
	var gotAuthorization string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthorization = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/google":
			_, _ = w.Write([]byte(`{"sub":"g-123","email":"jane@example.com","name":"Jane Doe","picture":"https://img/jane.png"}`))
		case "/facebook":
			_, _ = w.Write([]byte(`{"id":"fb-9","email":"jane@example.com","name":"Jane Doe","picture":{"data":{"url":"https://img/fb.png"}}}`))
		case "/anonymous":
			_, _ = w.Write([]byte(`{"email":"jane@example.com"}`))
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer server.Close()

	config := testConfig()
	config.Providers[ProviderGoogle] = ProviderConfig{UserInfoURL: server.URL + "/google"}
	config.Providers[ProviderFacebook] = ProviderConfig{UserInfoURL: server.URL + "/facebook"}
	client := NewSocialClient(config).WithHTTPClient(server.Client())
	ctx := context.Background()

	t.Run("google profile", func(t *testing.T) {
		profile, err := client.FetchProfile(ctx, ProviderGoogle, "google-token")
		require.NoError(t, err)
		assert.Equal(t, "Bearer google-token", gotAuthorization)
		assert.Equal(t, &SocialProfile{
			Provider:  ProviderGoogle,
			ID:        "g-123",
			Email:     "jane@example.com",
			Name:      "Jane Doe",
			AvatarURL: "https://img/jane.png",
		}, profile)
	})

	t.Run("facebook profile", func(t *testing.T) {
		profile, err := client.FetchProfile(ctx, ProviderFacebook, "fb-token")
		require.NoError(t, err)
		assert.Equal(t, "fb-9", profile.ID)
		assert.Equal(t, "https://img/fb.png", profile.AvatarURL)
	})

	t.Run("unsupported provider", func(t *testing.T) {
		_, err := client.FetchProfile(ctx, "github", "token")
		assert.ErrorIs(t, err, apperrors.ErrUnsupportedProvider)
	})

	t.Run("provider rejects token", func(t *testing.T) {
		rejecting := testConfig()
		rejecting.Providers[ProviderGoogle] = ProviderConfig{UserInfoURL: server.URL + "/expired"}
		_, err := NewSocialClient(rejecting).WithHTTPClient(server.Client()).FetchProfile(ctx, ProviderGoogle, "stale")
		assert.ErrorIs(t, err, apperrors.ErrSocialProfileFetch)
	})

	t.Run("profile without id", func(t *testing.T) {
		anonymous := testConfig()
		anonymous.Providers[ProviderGoogle] = ProviderConfig{UserInfoURL: server.URL + "/anonymous"}
		_, err := NewSocialClient(anonymous).WithHTTPClient(server.Client()).FetchProfile(ctx, ProviderGoogle, "token")
		assert.ErrorIs(t, err, apperrors.ErrSocialProfileFetch)
	})
}
