package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/TomSchuu/source-surf/internal/api/handler"
	"github.com/TomSchuu/source-surf/internal/api/ws"
	"github.com/TomSchuu/source-surf/pkg/middleware"
)

func SetUpRoutes(r *gin.Engine, h handler.StatusHandler, hub ws.Hub, m middleware.RequestID) {
	r.Use(m.Tag())
	r.GET("/", h.GetStatusPage())
	r.GET("/connect", h.Connect())
	api := r.Group("/api")
	api.GET("/status", h.GetStatus())
	api.GET("/status/ws", hub.Handle())
	api.POST("/server/start", h.StartServer())
}
