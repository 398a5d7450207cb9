// internal/web/server.go
package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the liveness endpoint used by hosting platforms
// (Render, Railway, etc.) that expect an HTTP port to stay open.
func NewRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "PTO Bot is running.")
	})

	return router
}
