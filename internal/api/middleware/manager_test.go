package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tubhub/tubhub-api/internal/domain"
	"github.com/tubhub/tubhub-api/internal/pkg/jwthelper"
)

const testSigningKey = "test-signing-key"

type stubUserGetter struct {
	users map[uint]domain.User
}

func (s *stubUserGetter) GetUser(_ context.Context, id uint) (domain.User, error) {
	user, ok := s.users[id]
	if !ok {
		return domain.User{}, errAuthRequired
	}

	return user, nil
}

func newGatedRouter(users UserGetter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	authenticator := NewAuthenticator(testSigningKey)
	router.GET("/managed", authenticator.VerifyJWT(), RequireManager(users), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	return router
}

func getManaged(t *testing.T, router *gin.Engine, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/managed", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func mintToken(t *testing.T, userID uint) string {
	t.Helper()

	token, err := jwthelper.GenerateToken([]byte(testSigningKey), userID, "test-agent")
	require.NoError(t, err)

	return token
}

func TestRequireManager(t *testing.T) {
	users := &stubUserGetter{users: map[uint]domain.User{
		1: {ID: 1, Name: "Manager", IsManager: true},
		2: {ID: 2, Name: "Guest"},
	}}
	router := newGatedRouter(users)

	t.Run("missing token", func(t *testing.T) {
		recorder := getManaged(t, router, "")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		recorder := getManaged(t, router, "not-a-jwt")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		forged, err := jwthelper.GenerateToken([]byte("other-key"), 1, "test-agent")
		require.NoError(t, err)

		recorder := getManaged(t, router, forged)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("token for a deleted user", func(t *testing.T) {
		recorder := getManaged(t, router, mintToken(t, 99))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("authenticated non-manager", func(t *testing.T) {
		recorder := getManaged(t, router, mintToken(t, 2))

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.JSONEq(t, `{"message":"manager role required"}`, recorder.Body.String())
	})

	t.Run("manager passes through", func(t *testing.T) {
		recorder := getManaged(t, router, mintToken(t, 1))

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
