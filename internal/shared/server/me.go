package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-scorer/internal/shared/server/middleware"
	"resume-scorer/internal/shared/server/respond"
)

// registerMeRoutes attaches the /me endpoint.
func registerMeRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", meHandler)
}

func meHandler(c *gin.Context) {
	guestID := middleware.GuestIDFromContext(c)
	respond.JSON(c, http.StatusOK, gin.H{
		"guestId":   guestID,
		"anonymous": guestID == "" || guestID == middleware.AnonymousGuest,
		"requestId": middleware.RequestIDFromContext(c),
	})
}
