package api

import (
	"net/http"

	"rayo-courier/internal/api/middleware"
	"rayo-courier/internal/modules/contacts"
	"rayo-courier/internal/modules/couriers"
	"rayo-courier/internal/modules/expenses"
	"rayo-courier/internal/modules/finance"
	"rayo-courier/internal/modules/orders"
	"rayo-courier/internal/modules/settlement"
	"rayo-courier/internal/modules/users"

	"github.com/labstack/echo/v4"
)

// SetupRoutes sets up all the API endpoints for the application.
func SetupRoutes(
	e *echo.Echo,
	jwtSecret string,
	userHandler *users.Handler,
	orderHandler *orders.Handler,
	courierHandler *couriers.Handler,
	settlementHandler *settlement.Handler,
	financeHandler *finance.Handler,
	expenseHandler *expenses.Handler,
	contactHandler *contacts.Handler,
) {
	authMiddleware := middleware.JWTAuth(jwtSecret)
	adminRequired := middleware.AdminRequired()

	// --- Public Routes ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Rayo Courier Dashboard API"})
	})

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", userHandler.Login)
	}

	// --- Order Routes ---
	orderGroup := e.Group("/orders", authMiddleware)
	{
		orderGroup.GET("", orderHandler.List)
		orderGroup.GET("/fee-quote", orderHandler.FeeQuote)
		orderGroup.GET("/:orderId", orderHandler.Get)
		orderGroup.PUT("/:orderId/status", orderHandler.UpdateStatus)
		orderGroup.GET("/:orderId/events", orderHandler.StatusEvents)

		// Dispatch desk actions
		orderGroup.POST("", orderHandler.Create, adminRequired)
		orderGroup.PUT("/:orderId", orderHandler.Update, adminRequired)
		orderGroup.DELETE("/:orderId", orderHandler.Delete, adminRequired)
		orderGroup.PUT("/:orderId/assign", orderHandler.AssignCourier, adminRequired)
		orderGroup.PUT("/:orderId/ongkir-paid", orderHandler.ToggleNonCodPaid, adminRequired)
		orderGroup.PUT("/:orderId/talangan-reimbursed", orderHandler.MarkTalanganReimbursed, adminRequired)
		orderGroup.GET("/export", orderHandler.Export, adminRequired)
	}

	// --- Courier Registry Routes ---
	courierGroup := e.Group("/couriers", authMiddleware)
	{
		courierGroup.GET("", courierHandler.List)
		courierGroup.GET("/aktif", courierHandler.ListAktif)
		courierGroup.GET("/:kurirId", courierHandler.Get)
		courierGroup.GET("/:kurirId/performance", courierHandler.Performance)
		courierGroup.PUT("/:kurirId/online", courierHandler.ToggleOnline)

		courierGroup.POST("", courierHandler.Create, adminRequired)
		courierGroup.PUT("/:kurirId", courierHandler.Update, adminRequired)
		courierGroup.PUT("/:kurirId/aktif", courierHandler.ToggleAktif, adminRequired)
	}

	// --- COD Settlement Routes ---
	settlementGroup := e.Group("/settlements", authMiddleware)
	{
		settlementGroup.GET("", settlementHandler.History)
		settlementGroup.GET("/outstanding/:kurirId", settlementHandler.Outstanding)
		settlementGroup.POST("/orders/:orderId", settlementHandler.SettleOne)

		settlementGroup.POST("", settlementHandler.Settle, adminRequired)
	}

	// --- Finance Routes ---
	financeGroup := e.Group("/finance", authMiddleware, adminRequired)
	{
		financeGroup.GET("/summary", financeHandler.Summary)
		financeGroup.GET("/couriers", financeHandler.CourierLedgers)
	}

	// --- Expense Routes ---
	expenseGroup := e.Group("/expenses", authMiddleware, adminRequired)
	{
		expenseGroup.GET("", expenseHandler.List)
		expenseGroup.POST("", expenseHandler.Create)
		expenseGroup.PUT("/:expenseId", expenseHandler.Update)
		expenseGroup.DELETE("/:expenseId", expenseHandler.Delete)
	}

	// --- Contact Routes ---
	contactGroup := e.Group("/contacts", authMiddleware, adminRequired)
	{
		contactGroup.GET("", contactHandler.List)
		contactGroup.GET("/tags", contactHandler.Tags)
		contactGroup.GET("/export", contactHandler.Export)
	}
}
