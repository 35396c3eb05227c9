package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key used to store the authenticated principal in the
// request context.
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated principal from the Gin
// context. It returns the identifier and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal := c.Request.Context().Value(userIDKey)
	if userIDVal == nil {
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}

	return userID, true
}
