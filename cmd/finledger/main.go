package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"finledger/internal/config"
	"finledger/internal/handlers"
	"finledger/internal/middleware"
	"finledger/internal/models"
	"finledger/internal/repositories"
	"finledger/internal/services"
	"finledger/internal/session"
)

func main() {
	demo := flag.Bool("demo", false, "serve against a generated in-process ledger stub")
	flag.Parse()

	if err := godotenv.Load(); err == nil {
		slog.Info("loaded environment from .env")
	}

	cfg := config.Load()
	setupLogger(cfg)

	baseURL := cfg.LedgerAPI.BaseURL
	token := cfg.LedgerAPI.AccessToken
	if *demo {
		var err error
		baseURL, token, err = startDemoLedger()
		if err != nil {
			slog.Error("failed to start demo ledger", "error", err)
			os.Exit(1)
		}
		slog.Info("demo mode: serving generated ledger data", "base_url", baseURL)
	}

	sess := session.New(token)
	if sess.Expired(time.Now()) {
		expiresAt, _ := sess.ExpiresAt()
		slog.Warn("access token already expired", "expires_at", expiresAt)
	}

	limiter := rate.NewLimiter(rate.Limit(cfg.LedgerAPI.RateLimitPerSecond), cfg.LedgerAPI.RateLimitBurst)
	repo := repositories.NewLedgerRepository(baseURL, sess, cfg.LedgerAPI.RequestTimeout, limiter)
	breaker := services.NewCircuitBreaker(services.CircuitBreakerConfig{
		MaxFailures:  cfg.LedgerAPI.BreakerMaxFailures,
		ResetTimeout: cfg.LedgerAPI.BreakerResetTimeout,
	})
	guarded := services.NewGuardedLedgerRepository(repo, breaker)

	controller := services.NewViewController(
		guarded,
		services.NewAggregatorService(),
		services.NewCalendarService(),
		services.NewFilterSortPaginator(cfg.View.PageSize),
		services.NewExportService(),
		services.NewPrometheusMetrics(),
	)

	e := buildServer(cfg, controller, guarded)

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

func setupLogger(cfg *config.Config) {
	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

func buildServer(cfg *config.Config, controller services.ViewControllerInterface, repo repositories.LedgerRepositoryInterface) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Use(middleware.RequestID())
	e.Use(middleware.NewRateLimiter(cfg.Server.RateLimitPerSecond, cfg.Server.RateLimitBurst).Middleware())

	viewHandler := handlers.NewViewHandler(controller)
	transactionHandler := handlers.NewTransactionHandler(controller)
	categoryHandler := handlers.NewCategoryHandler(controller, repo)
	calendarHandler := handlers.NewCalendarHandler(repo, services.NewCalendarService())
	budgetHandler := handlers.NewBudgetHandler(controller)
	healthHandler := handlers.NewHealthCheckHandler(repo)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.GET("/view", viewHandler.GetView)
	api.PUT("/view/filter", viewHandler.SetFilter)
	api.PUT("/view/sort", viewHandler.SetSort)
	api.PUT("/view/page", viewHandler.SetPage)
	api.POST("/view/refresh", viewHandler.Refresh)
	api.GET("/export/csv", viewHandler.ExportCSV)

	api.POST("/transactions", transactionHandler.Create)
	api.PUT("/transactions/:id", transactionHandler.Update)
	api.DELETE("/transactions/:id", transactionHandler.Delete)

	api.POST("/categories", categoryHandler.Create)
	api.GET("/categories/stats", categoryHandler.Stats)
	api.GET("/calendar/:date", calendarHandler.Day)

	api.POST("/budgets", budgetHandler.Create)
	api.DELETE("/budgets/:id", budgetHandler.Delete)

	return e
}

// startDemoLedger boots an in-process stub of the remote service seeded with
// half a year of generated data and returns its address and token.
func startDemoLedger() (string, string, error) {
	const token = "demo"

	generator := services.NewTransactionGenerator()
	categories := generator.GenerateCategories()
	today := models.DateOf(time.Now())
	transactions := generator.GenerateTransactions(240, today.AddDays(-180), today, categories)
	budgets := generator.GenerateBudgets(categories, today.MonthAnchor())
	stub := repositories.NewStubLedgerServer(token, transactions, categories, budgets)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", "", err
	}
	go func() {
		if err := http.Serve(listener, stub.Handler()); err != nil {
			slog.Error("demo ledger stopped", "error", err)
		}
	}()
	return "http://" + listener.Addr().String(), token, nil
}
