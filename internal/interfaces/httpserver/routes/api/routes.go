package api

import (
	"github.com/gin-gonic/gin"

	"samadhan-setu/services/reel-api/internal/interfaces/httpserver/handlers"
)

// Routes encapsulates route registration under the /api prefix.
type Routes struct {
	handlers *handlers.Provider
}

func NewRoutes(provider *handlers.Provider) *Routes {
	return &Routes{handlers: provider}
}

// Register attaches all routes under the /api prefix.
func (r *Routes) Register(router gin.IRouter) {
	group := router.Group("/api")
	group.POST("/reel", r.handlers.Reel.Upload)
	group.GET("/reel", r.handlers.Reel.List)
	group.GET("/reel/:id", r.handlers.Reel.Get)
}
