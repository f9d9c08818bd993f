//go:build unit

package api_test

import (
	"net/http"

	"gas-booking/internal/domain/user"
	"gas-booking/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// fakeAuth stands in for RequireAuth: any bearer header authenticates as the
// given identity.
func fakeAuth(userID uuid.UUID, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetIdentityForTest(c, userID, role)
		c.Next()
	}
}

const bearer = "test-token"

type errorCase struct {
	name         string
	err          error
	expectStatus int
	expectMsg    string
}
