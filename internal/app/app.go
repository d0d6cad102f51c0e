package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/stpnv0/ResortDesk/internal/config"
	"github.com/stpnv0/ResortDesk/internal/handler"
	"github.com/stpnv0/ResortDesk/internal/metrics"
	"github.com/stpnv0/ResortDesk/internal/middleware"
	"github.com/stpnv0/ResortDesk/internal/notification"
	"github.com/stpnv0/ResortDesk/internal/repository"
	"github.com/stpnv0/ResortDesk/internal/router"
	"github.com/stpnv0/ResortDesk/internal/scheduler"
	"github.com/stpnv0/ResortDesk/internal/service"
	"github.com/stpnv0/ResortDesk/internal/settings"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := initLogger(cfg)
	if err != nil {
		return nil, err
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if app.db, err = connectDB(cfg, log); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func initLogger(cfg *config.Config) (logger.Logger, error) {
	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"ResortDesk",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return log, nil
}

func connectDB(cfg *config.Config, log logger.Logger) (*dbpg.DB, error) {
	db, err := dbpg.New(
		cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: cfg.Postgres.MaxOpenConns,
			MaxIdleConns: cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	db.Master.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", cfg.Postgres.Host),
		logger.Int("port", cfg.Postgres.Port),
		logger.String("database", cfg.Postgres.Database),
	)

	return db, nil
}

func (a *App) initServices() error {
	reservationRepo := repository.NewReservationRepo(a.db)
	adminRepo := repository.NewAdminRepo(a.db)
	settingsRepo := repository.NewSettingsRepo(a.db)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	observer, err := metrics.NewInviteObserver(reg)
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}

	inviteService := newInviteService(a.cfg, reservationRepo, observer, a.log)
	reservationService := service.NewReservationService(reservationRepo, adminRepo, inviteService, n, a.log)
	adminService := service.NewAdminService(adminRepo)
	dashboardService := service.NewDashboardService(reservationRepo)
	settingsService := service.NewSettingsService(
		settingsRepo,
		a.cfg.Settings.CacheSize,
		a.cfg.Settings.CacheTTL,
		a.log,
	)

	if err = a.seedSettings(settingsService); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}
	if err = a.bootstrapAdmin(adminService); err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}

	a.scheduler = scheduler.New(
		reservationService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(reservationService, inviteService, settingsService, adminService, dashboardService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.AdminAuth(adminService),
		metrics.Handler(reg),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) seedSettings(svc *service.SettingsService) error {
	seed, err := settings.LoadSeed(a.cfg.Settings.SeedPath)
	if err != nil {
		return err
	}
	if seed == nil {
		a.log.Warn("no site settings seed file",
			logger.String("path", a.cfg.Settings.SeedPath),
		)
		return nil
	}

	return svc.Seed(context.Background(), seed)
}

func (a *App) bootstrapAdmin(svc *service.AdminService) error {
	admin, err := svc.Bootstrap(context.Background(), a.cfg.Admin.BootstrapInput())
	if err != nil {
		return err
	}
	if admin == nil {
		return nil
	}

	a.log.Info("bootstrap admin created",
		logger.String("admin_id", admin.ID),
		logger.String("username", admin.Username),
	)
	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
