package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// AnonymousGuest owns requests that carry no X-Guest-Id header.
const AnonymousGuest = "anonymous"

const maxGuestIDLength = 128

// Identity stores the caller's guest id. There are no accounts: the id only
// scopes saved resume drafts and upload storage.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := strings.TrimSpace(c.GetHeader("X-Guest-Id"))
		if guestID == "" || len(guestID) > maxGuestIDLength {
			guestID = AnonymousGuest
		}
		c.Set(GuestIDKey, guestID)
		c.Next()
	}
}
