package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastebite/tastebite-api/config"
	"github.com/tastebite/tastebite-api/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupAuthTest(t *testing.T) *gin.Engine {
	t.Helper()

	config.SetConfig(&config.Config{GoEnv: "test", JWTSecret: "test-secret"})

	router := gin.New()
	router.GET("/protected", AuthRequired(), func(c *gin.Context) {
		userID, err := GetUserID(c)
		require.NoError(t, err)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"user_id": userID,
				"email":   c.GetString("email"),
				"role":    c.GetString("role"),
			},
		})
	})
	return router
}

func TestTokenRoundTrip(t *testing.T) {
	router := setupAuthTest(t)

	user := models.User{ID: 42, Email: "jane@example.com", Role: models.RoleAdmin}
	token, err := GenerateToken(&user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			UserID uint   `json:"user_id"`
			Email  string `json:"email"`
			Role   string `json:"role"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, uint(42), resp.Data.UserID)
	assert.Equal(t, "jane@example.com", resp.Data.Email)
	assert.Equal(t, "ADMIN", resp.Data.Role)
}

func TestAuthRequiredRejections(t *testing.T) {
	router := setupAuthTest(t)

	tests := []struct {
		name         string
		header       string
		expectedCode string
	}{
		{
			name:         "Missing header",
			header:       "",
			expectedCode: "MISSING_TOKEN",
		},
		{
			name:         "Wrong scheme",
			header:       "Basic abc123",
			expectedCode: "MISSING_TOKEN",
		},
		{
			name:         "Garbage token",
			header:       "Bearer not.a.jwt",
			expectedCode: "INVALID_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)

			var resp struct {
				Success bool `json:"success"`
				Error   struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.expectedCode, resp.Error.Code)
		})
	}
}

func TestTokenSignedWithDifferentSecretIsRejected(t *testing.T) {
	config.SetConfig(&config.Config{GoEnv: "test", JWTSecret: "other-secret"})
	user := models.User{ID: 7, Email: "eve@example.com", Role: models.RoleUser}
	token, err := GenerateToken(&user)
	require.NoError(t, err)

	router := setupAuthTest(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetUserIDOutsideAuthContext(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := GetUserID(c)
	require.Error(t, err)
	authErr, ok := err.(*AuthError)
	require.True(t, ok)
	assert.Equal(t, "MISSING_USER_ID", authErr.Code)
}
