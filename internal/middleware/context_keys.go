package middleware

import (
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// userIDKey stores the authenticated user's ID; userKey stores the re-fetched
// user record the access guard resolved for this request.
const (
	userIDKey = contextKey("userID")
	userKey   = contextKey("user")
)

// GetUserIDFromContext retrieves the authenticated user ID from the request
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok
}

// GetUserFromContext retrieves the resolved user record the guard attached.
func GetUserFromContext(c *gin.Context) (*domain.User, bool) {
	user, ok := c.Request.Context().Value(userKey).(*domain.User)
	return user, ok
}
