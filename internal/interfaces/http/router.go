package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pinturas-api/internal/application/auth"
	"github.com/jhoicas/pinturas-api/internal/application/ledger"
	"github.com/jhoicas/pinturas-api/internal/application/report"
	"github.com/jhoicas/pinturas-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	LedgerUC  *ledger.LedgerUseCase
	ReportUC  *report.ReportUseCase
	PDF       TableGenerator
	JWTSecret string
	Log       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Usuarios (solo admin)
	users := protected.Group("/users")
	users.Post("/", RequirePermission(PermManageUsers), authHandler.CreateUser)

	// Libro de compras
	ledgerHandler := NewLedgerHandler(deps.LedgerUC, deps.Log)
	purchases := protected.Group("/purchases")
	purchases.Post("/", RequirePermission(PermRecordPurchase), ledgerHandler.RecordPurchase)
	purchases.Get("/", RequirePermission(PermManageRecords), ledgerHandler.ListPurchases)
	purchases.Delete("/:id", RequirePermission(PermManageRecords), ledgerHandler.DeletePurchase)

	// Libro de ventas
	sales := protected.Group("/sales")
	sales.Post("/", RequirePermission(PermRecordSale), ledgerHandler.RecordSale)
	sales.Get("/", RequirePermission(PermManageRecords), ledgerHandler.ListSales)
	sales.Delete("/:id", RequirePermission(PermManageRecords), ledgerHandler.DeleteSale)

	// Inventario derivado y exportaciones
	reportHandler := NewReportHandler(deps.ReportUC, deps.PDF, deps.Log)
	inventory := protected.Group("/inventory", RequirePermission(PermViewInventory))
	inventory.Get("/", reportHandler.Inventory)
	inventory.Get("/by-type", reportHandler.InventoryByType)
	inventory.Get("/export/csv", reportHandler.InventoryCSV)
	inventory.Get("/export/pdf", reportHandler.InventoryPDF)

	// Contabilidad
	accounting := protected.Group("/accounting", RequirePermission(PermViewAccounting))
	accounting.Get("/summary", reportHandler.AccountingSummary)
	accounting.Get("/weekly", reportHandler.WeeklySeries)
}
