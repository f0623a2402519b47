package testutil

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tastebite/tastebite-api/middleware"
	"github.com/tastebite/tastebite-api/models"
)

// TokenFor mints a signed session token for a user. The configured JWT secret
// must already be set via config.SetConfig.
func TokenFor(t *testing.T, user *models.User) string {
	t.Helper()

	token, err := middleware.GenerateToken(user)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	return token
}

// Authorize attaches a Bearer token for the given user to a request
func Authorize(t *testing.T, req *http.Request, user *models.User) {
	t.Helper()
	req.Header.Set("Authorization", "Bearer "+TokenFor(t, user))
}

// SetMockAuthContext injects the claims AuthRequired would set, for testing
// handlers directly without running the middleware
func SetMockAuthContext(c *gin.Context, user *models.User) {
	c.Set("user_id", user.ID)
	c.Set("email", user.Email)
	c.Set("role", string(user.Role))
}
