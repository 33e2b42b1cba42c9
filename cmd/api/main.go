package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	dashboardHttp "sales-dashboard-service/internal/dashboard/adapters/http/fiber"
	dashboardRepoPg "sales-dashboard-service/internal/dashboard/adapters/postgres"
	dashboardUsecase "sales-dashboard-service/internal/dashboard/core/usecase"

	webhookClient "sales-dashboard-service/internal/webhook/adapters/httpclient"
	webhookUsecase "sales-dashboard-service/internal/webhook/core/usecase"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "sales-dashboard-service/docs"
)

func main() {
	// Config
	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		log.Fatal("POSTGRES_DSN is not set")
	}

	webhookURL := os.Getenv("WEBHOOK_URL")
	if webhookURL == "" {
		log.Fatal("WEBHOOK_URL is not set")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	// DB connection
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to open postgres: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping postgres: %v", err)
	}

	loc, err := time.LoadLocation(dashboardUsecase.DefaultTimezone)
	if err != nil {
		log.Fatalf("failed to load timezone: %v", err)
	}
	clock := dashboardUsecase.NewClock(loc)

	// Adapter-level DB wrapper + repositories
	dashboardDB := dashboardRepoPg.NewSQLDB(db)
	snapshotRepository := dashboardRepoPg.NewSnapshotRepository(dashboardDB)
	goalRepository := dashboardRepoPg.NewGoalRepository(dashboardDB)

	// Webhook fetcher
	source := webhookClient.NewClient(webhookURL, webhookClient.DefaultTimeout)
	fetchUC := webhookUsecase.NewFetchWebhookUseCase(source, webhookUsecase.DefaultConfig())

	// Aggregation usecases
	dailyUC := dashboardUsecase.NewDailyEnrollmentsUseCase(clock)
	leadSourceUC := dashboardUsecase.NewLeadSourceUseCase(clock)
	paymentsUC := dashboardUsecase.NewInitialPaymentsUseCase(clock)
	revenueUC := dashboardUsecase.NewMonthlyRevenueUseCase(clock, paymentsUC)
	openerUC := dashboardUsecase.NewOpenerUseCase(clock)
	dashboardUC := dashboardUsecase.NewGetDashboardUseCase(revenueUC, snapshotRepository, goalRepository)
	setGoalUC := dashboardUsecase.NewSetGoalUseCase(goalRepository)

	// HTTP (Fiber) app + handlers
	app := fiber.New()

	reportsHandler := dashboardHttp.NewReportsHandler(fetchUC, dailyUC, leadSourceUC, revenueUC, paymentsUC, openerUC)
	app.Get("/api/daily-enrollments", reportsHandler.DailyEnrollments)
	app.Get("/api/leadsource-data", reportsHandler.LeadSources)
	app.Get("/api/admin-monthly-revenue", reportsHandler.AdminMonthlyRevenue)
	app.Get("/api/monthly-revenue-data", reportsHandler.MonthlyRevenueData)
	app.Get("/api/enrollments-per-opener", reportsHandler.EnrollmentsPerOpener)
	app.Get("/api/initial-payments", reportsHandler.InitialPayments)

	dashboardHandler := dashboardHttp.NewDashboardHandler(fetchUC, dashboardUC, setGoalUC)
	app.Get("/api/dashboard-data", dashboardHandler.GetDashboardData)
	app.Post("/api/set-monthly-goal", dashboardHandler.SetMonthlyGoal)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Prometheus + Swagger
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("fiber stopped: %v", err)
		}
	}()

	log.Printf("server started on :%s", port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("fiber shutdown error: %v", err)
	}

	log.Println("server exiting")
}
