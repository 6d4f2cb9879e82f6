package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-pos/internal/application/auth"
	"github.com/jhoicas/ventas-pos/internal/application/checkout"
	"github.com/jhoicas/ventas-pos/internal/application/report"
	"github.com/jhoicas/ventas-pos/internal/application/usecase"
	"github.com/jhoicas/ventas-pos/internal/domain/repository"
	"github.com/jhoicas/ventas-pos/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CheckoutUC  *checkout.CheckoutUseCase
	ProductUC   *usecase.ProductUseCase
	CustomerUC  *usecase.CustomerUseCase
	PaymentUC   *usecase.PaymentUseCase
	SaleUC      *usecase.SaleUseCase
	PurchaseUC  *usecase.PurchaseUseCase
	ReportUC    *report.ReportUseCase
	Sessions    repository.SessionRepository
	JWTSecret   string
	DefaultLang string
	Log         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("http")

	api := app.Group("/api", Localize(deps.DefaultLang))

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, log)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token y sesión abierta)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Sessions))
	protected.Post("/auth/logout", authHandler.Logout)

	// Carritos
	carts := protected.Group("/carts")
	cartHandler := NewCartHandler(deps.CheckoutUC, log)
	carts.Post("/", cartHandler.Start)
	carts.Post("/purchase-edit/:purchaseId", cartHandler.StartPurchaseEdit)
	carts.Get("/:id", cartHandler.Get)
	carts.Delete("/:id", cartHandler.Discard)
	carts.Post("/:id/lines", cartHandler.AddLine)
	carts.Delete("/:id/lines/:index", cartHandler.RemoveLine)
	carts.Put("/:id/counterparty", cartHandler.SetCounterparty)
	carts.Get("/:id/settlement", cartHandler.Preview)
	carts.Post("/:id/submit", cartHandler.Submit)

	reportHandler := NewReportHandler(deps.ReportUC, log)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, log)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id/statement", reportHandler.CustomerStatement)
	customers.Get("/:id/statement.pdf", reportHandler.CustomerStatementPDF)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, log)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Payments
	payments := protected.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.PaymentUC, log)
	payments.Get("/", paymentHandler.List)
	payments.Post("/", paymentHandler.Create)
	payments.Get("/:id", paymentHandler.GetByID)
	payments.Put("/:id", paymentHandler.Update)
	payments.Delete("/:id", paymentHandler.Delete)

	// Sales
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, log)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id/receipt.pdf", reportHandler.SaleReceiptPDF)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Put("/:id", saleHandler.Update)
	sales.Delete("/:id", saleHandler.Delete)

	// Purchases
	purchases := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC, log)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id/items", purchaseHandler.Items)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Delete("/:id", purchaseHandler.Delete)

	// Reports
	reports := protected.Group("/reports")
	reports.Get("/sales-by-day", reportHandler.SalesByDay)
	reports.Get("/payments", reportHandler.Payments)
	reports.Get("/sales.xlsx", reportHandler.SalesWorkbook)
}
