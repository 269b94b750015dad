package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/TomSchuu/source-surf/internal/api/dto/response"
	"github.com/TomSchuu/source-surf/internal/apperrors"
	"github.com/TomSchuu/source-surf/internal/poller"
	"github.com/TomSchuu/source-surf/internal/view"
)

type StatusHandler interface {
	GetStatusPage() gin.HandlerFunc
	GetStatus() gin.HandlerFunc
	StartServer() gin.HandlerFunc
	Connect() gin.HandlerFunc
}

type statusHandler struct {
	logger   Logger
	poller   poller.Poller
	renderer *view.Renderer
}

func (s *statusHandler) GetStatusPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html.tmpl", s.renderer.Render(s.poller.Snapshot()))
	}
}

func (s *statusHandler) GetStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.renderer.Render(s.poller.Snapshot()))
	}
}

func (s *statusHandler) StartServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		err := s.poller.TriggerStart(c)
		switch {
		case err == nil:
			c.JSON(http.StatusAccepted, response.Response{
				Message: "Start sequence initiated",
			})
		case errors.Is(err, apperrors.ErrStartInProgress):
			c.JSON(http.StatusConflict, response.Response{
				Message: "Start sequence already in progress",
			})
		case errors.Is(err, apperrors.ErrServerAlreadyOnline):
			c.JSON(http.StatusConflict, response.Response{
				Message: "Server is already online",
			})
		default:
			err = fmt.Errorf("StatusHandler.StartServer: %w", err)
			s.logger.LoggingError(c, err, "failed to start server", zap.ErrorLevel)
			c.JSON(http.StatusBadGateway, response.Response{
				Message: "Failed to start server",
			})
		}
	}
}

func (s *statusHandler) Connect() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Redirect(http.StatusFound, s.renderer.ConnectURI(s.poller.Snapshot()))
	}
}

func NewStatusHandler(logger Logger, p poller.Poller, renderer *view.Renderer) StatusHandler {
	return &statusHandler{
		logger:   logger,
		poller:   p,
		renderer: renderer,
	}
}
