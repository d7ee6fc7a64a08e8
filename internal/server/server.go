// Package server is the HTTP host for the editor. It is presentation
// plumbing only: edits arrive as text values and are handed straight
// to the editor, which never imports this package.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/invoicedesk/internal/config"
	"github.com/smallbiznis/invoicedesk/internal/editor"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) { s.RegisterRoutes() }),
	fx.Invoke(run),
)

type Server struct {
	engine *gin.Engine
	editor *editor.Editor
	log    *zap.Logger
}

func NewServer(engine *gin.Engine, ed *editor.Editor, log *zap.Logger) *Server {
	return &Server{
		engine: engine,
		editor: ed,
		log:    log,
	}
}

func NewEngine(log *zap.Logger, registry *prometheus.Registry) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(log))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	return r
}

func (s *Server) RegisterRoutes() {
	api := s.engine.Group("/api/v1")

	api.GET("/currencies", s.ListCurrencies)

	api.GET("/document", s.GetDocument)
	api.PUT("/document/fields/:field", s.SetRootField)
	api.PUT("/document/sections/:section/:field", s.SetSectionField)

	api.POST("/document/items", s.AddItem)
	api.PUT("/document/items/:id/:field", s.SetItemField)
	api.DELETE("/document/items/:id", s.DeleteItem)

	api.POST("/document/export", s.TriggerExport)
	api.GET("/document/file", s.DownloadDocument)
	api.PUT("/document/file", s.UploadDocument)
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}

func run(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", cfg.ListenAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
