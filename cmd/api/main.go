package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rayo-courier/internal/api"
	"rayo-courier/internal/config"
	"rayo-courier/internal/modules/contacts"
	"rayo-courier/internal/modules/couriers"
	"rayo-courier/internal/modules/expenses"
	"rayo-courier/internal/modules/finance"
	"rayo-courier/internal/modules/orders"
	"rayo-courier/internal/modules/settlement"
	"rayo-courier/internal/modules/users"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	// 1. --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	e := echo.New()

	// 2. --- Middleware ---
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", cfg.ClientOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// 3. --- Database Connection ---
	dbConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Unable to parse database configuration: %v", err)
	}

	dbPool, err := pgxpool.NewWithConfig(context.Background(), dbConfig)
	if err != nil {
		log.Fatalf("Unable to create connection pool: %v\n", err)
	}
	defer dbPool.Close()

	if err := dbPool.Ping(context.Background()); err != nil {
		log.Fatalf("Unable to ping database: %v\n", err)
	}
	e.Logger.Info("Successfully connected to the database!")

	// 4. --- Dependency Injection (Wiring everything up) ---
	// --- Users Module ---
	userRepo := users.NewRepository(dbPool)
	userService := users.NewService(userRepo, cfg.JWTSecret)
	userHandler := users.NewHandler(userService)

	// --- Couriers Module ---
	courierRepo := couriers.NewRepository(dbPool)

	// --- Contacts Module ---
	contactRepo := contacts.NewRepository(dbPool)
	contactService := contacts.NewService(contactRepo, nil)
	contactHandler := contacts.NewHandler(contactService)

	// --- Orders Module ---
	orderRepo := orders.NewRepository(dbPool)

	// --- Settlement Module ---
	settlementRepo := settlement.NewRepository(dbPool)
	settlementService := settlement.NewService(settlementRepo, nil)
	settlementHandler := settlement.NewHandler(settlementService)

	courierService := couriers.NewService(courierRepo, orderRepo, settlementService, nil)
	courierHandler := couriers.NewHandler(courierService)

	orderService := orders.NewService(orderRepo, courierService, contactService, cfg.Pricing, cfg.Validation, nil)
	orderHandler := orders.NewHandler(orderService)

	// --- Expenses Module ---
	expenseRepo := expenses.NewRepository(dbPool)
	expenseService := expenses.NewService(expenseRepo, nil)
	expenseHandler := expenses.NewHandler(expenseService)

	// --- Finance Module (folds over the other modules' ledgers) ---
	financeService := finance.NewService(orderRepo, settlementRepo, expenseRepo, courierRepo)
	financeHandler := finance.NewHandler(financeService)

	// 5. --- Initialize Router ---
	api.SetupRoutes(e, cfg.JWTSecret,
		userHandler,
		orderHandler,
		courierHandler,
		settlementHandler,
		financeHandler,
		expenseHandler,
		contactHandler,
	)

	// 6. --- Start Server with graceful shutdown logic ---
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server an error occurred:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exiting")
}
