package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/stablemgr/stableapi/config"
	"github.com/stablemgr/stableapi/db"
	"github.com/stablemgr/stableapi/handlers"
	applog "github.com/stablemgr/stableapi/logger"
	"github.com/stablemgr/stableapi/stable"
	"github.com/stablemgr/stableapi/store"
)

func main() {
	cfg := config.Load()
	logger, err := applog.New(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	st := buildStore(cfg, logger)

	h := handlers.New(st)

	e := echo.New()
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.Int("status", v.Status),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			switch {
			case v.Status >= 500:
				logger.Error("http request", fields...)
			case v.Status >= 400:
				logger.Warn("http request", fields...)
			default:
				logger.Info("http request", fields...)
			}
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"*", "Authorization"},
		AllowCredentials: true,
	}))

	e.GET("/", h.Root)
	e.GET("/api/horses", h.ListHorses)
	e.GET("/api/horses/:id", h.GetHorse)
	e.POST("/api/horses", h.CreateHorse)
	e.PUT("/api/horses/:id", h.UpdateHorse)
	e.DELETE("/api/horses/:id", h.ForgeHorse)

	if cfg.Debug {
		logger.Info("starting server", zap.String("mode", "debug"), zap.String("addr", cfg.Port))
		if err := e.Start(cfg.Port); err != nil {
			logger.Fatal("server exited", zap.Error(err))
		}
		return
	}

	autoTLS := &autocert.Manager{
		Prompt:     autocert.AcceptTOS,
		Cache:      autocert.DirCache(".cache"),
		HostPolicy: autocert.HostWhitelist(cfg.TLSDomains...),
	}

	s := &http.Server{
		Addr:         ":443",
		Handler:      e,
		TLSConfig:    autoTLS.TLSConfig(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	if err := s.ListenAndServeTLS("", ""); err != http.ErrServerClosed {
		logger.Error("tls server exited", zap.Error(err))
		os.Exit(1)
	}
}

// buildStore picks the Postgres backend when DATABASE_URL is set, otherwise
// the in-memory one, demo-seeded when requested.
func buildStore(cfg *config.Config, logger *zap.Logger) store.Store {
	if cfg.DatabaseURL != "" {
		bdb := db.Setup(cfg)
		if err := db.CreateTables(context.Background(), bdb); err != nil {
			logger.Fatal("create tables failed", zap.Error(err))
		}
		logger.Info("using postgres store")
		return store.NewBun(bdb)
	}

	mem := store.NewMemory()
	if cfg.SeedDemo {
		for _, horse := range stable.DemoHorses(time.Now().UTC()) {
			if err := mem.Insert(context.Background(), horse); err != nil {
				logger.Fatal("seed demo horses failed", zap.Error(err))
			}
		}
		logger.Info("seeded demo horses")
	}
	logger.Info("using in-memory store")
	return mem
}
