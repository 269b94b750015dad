package main

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/TomSchuu/source-surf/internal/api/handler"
	"github.com/TomSchuu/source-surf/internal/api/routes"
	"github.com/TomSchuu/source-surf/internal/api/ws"
	"github.com/TomSchuu/source-surf/internal/config"
	"github.com/TomSchuu/source-surf/internal/model"
	"github.com/TomSchuu/source-surf/internal/poller"
	"github.com/TomSchuu/source-surf/internal/upstream"
	"github.com/TomSchuu/source-surf/internal/view"
	"github.com/TomSchuu/source-surf/pkg/logger"
	"github.com/TomSchuu/source-surf/pkg/middleware"
	"github.com/TomSchuu/source-surf/web"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer(appConfig.Server.LogFile)
	if err != nil {
		log.Fatal(fmt.Sprintf("open log file error: %v", err))
	}
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, fileSyncer).With(zap.String("service.name", "source-surf"))
	defer zapLogger.Sync()
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	go func() {
		for {
			<-hup
			zapLogger.Info("receive logrotate SIGHUP, reloading log file")
			if e := fileSyncer.Reload(); e != nil {
				zapLogger.Error("failed to reload log file", zap.Error(e))
			} else {
				zapLogger.Info("successfully reloaded log file")
			}
		}
	}()

	// set up dependencies
	statusClient := upstream.NewStatusClient(appConfig.Upstream.StatusURL, appConfig.Upstream.MaxRetries,
		appConfig.Upstream.RequestTimeout, appConfig.Upstream.InitialBackoff)
	startClient := upstream.NewStartClient(appConfig.Upstream.StartURL, appConfig.Upstream.RequestTimeout)
	var prober upstream.Prober
	if appConfig.Game.A2SEnabled {
		prober = upstream.NewA2SProber(appConfig.Game.Host, appConfig.Game.Port, appConfig.Game.A2STimeout)
	}

	gallery, err := view.LoadMapGallery(appConfig.Game.MapGalleryPath)
	if err != nil {
		zapLogger.Fatal("failed to load map gallery", zap.Error(err))
	}
	renderer := view.NewRenderer(gallery, appConfig.Game.Host, appConfig.Game.Port, appConfig.Game.Name)

	statusPoller := poller.NewPoller(statusClient, startClient, prober, zapLogger, poller.Config{
		Interval:     appConfig.Poll.Interval,
		FastInterval: appConfig.Poll.FastInterval,
		StartTimeout: appConfig.Poll.StartTimeout,
		PollTimeout:  appConfig.Poll.PollTimeout,
	})

	hub := ws.NewHub(zapLogger)
	statusPoller.Subscribe(func(snap model.Snapshot) {
		hub.Publish(renderer.Render(snap))
	})
	statusPoller.Start()
	defer statusPoller.Stop()

	statusHandler := handler.NewStatusHandler(handler.NewLogger(zapLogger), statusPoller, renderer)

	// daily uptime digest
	cronJob := cron.New()
	_, err = cronJob.AddFunc("0 0 * * *", func() {
		total, online := statusPoller.Stats()
		if total == 0 {
			return
		}
		zapLogger.Info("daily uptime digest",
			zap.Int64("polls", total),
			zap.Int64("polls_online", online),
			zap.Float64("uptime_percentage", float64(online)/float64(total)*100))
	})
	if err != nil {
		zapLogger.Fatal("failed to create cron job for daily digest", zap.Error(err))
	}
	cronJob.Start()
	defer cronJob.Stop()

	// set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	r.SetHTMLTemplate(template.Must(template.ParseFS(web.Templates, "index.html.tmpl")))
	r.Static("/static", "./static")

	routes.SetUpRoutes(r, statusHandler, hub, middleware.NewRequestID())

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	hub.Close()
	zapLogger.Info("server exiting")
}
