package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/ventas-pos/docs"
	"github.com/jhoicas/ventas-pos/internal/application/auth"
	"github.com/jhoicas/ventas-pos/internal/application/checkout"
	"github.com/jhoicas/ventas-pos/internal/application/report"
	"github.com/jhoicas/ventas-pos/internal/application/usecase"
	"github.com/jhoicas/ventas-pos/internal/domain/cart"
	"github.com/jhoicas/ventas-pos/internal/domain/repository"
	infraexcel "github.com/jhoicas/ventas-pos/internal/infrastructure/excel"
	"github.com/jhoicas/ventas-pos/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/ventas-pos/internal/infrastructure/pdf"
	"github.com/jhoicas/ventas-pos/internal/infrastructure/postgres"
	"github.com/jhoicas/ventas-pos/internal/infrastructure/restapi"
	httpRouter "github.com/jhoicas/ventas-pos/internal/interfaces/http"
	"github.com/jhoicas/ventas-pos/pkg/config"
	"github.com/jhoicas/ventas-pos/pkg/logger"
)

const sweepInterval = time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	loc := cfg.App.Location()
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("tz", loc.String()).
		Str("upstream", cfg.Upstream.BaseURL).
		Msg("iniciando aplicación")

	policy, err := cart.ParseMergePolicy(cfg.Cart.MergePolicy)
	if err != nil {
		log.Fatal().Err(err).Msg("CART_MERGE_POLICY")
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Registro de envíos: PostgreSQL si hay base configurada, si no en memoria.
	var ledger repository.SubmissionRepository = memory.NewSubmissionLedger()
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("esquema de envíos")
		}
		ledger = postgres.NewSubmissionRepository(pool)
		log.Info().Msg("registro de envíos en PostgreSQL")
	}

	client := restapi.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout(), loc, log)
	productRepo := restapi.NewProductRepository(client)
	customerRepo := restapi.NewCustomerRepository(client)
	saleRepo := restapi.NewSaleRepository(client)
	purchaseRepo := restapi.NewPurchaseRepository(client)
	paymentRepo := restapi.NewPaymentRepository(client)

	sessions := memory.NewSessionStore(time.Now)
	checkoutUC := checkout.NewCheckoutUseCase(checkout.Deps{
		Products:  productRepo,
		Customers: customerRepo,
		Sales:     saleRepo,
		Purchases: purchaseRepo,
		Ledger:    ledger,
		Carts:     memory.NewCartStore(),
		Policy:    policy,
		IdleTTL:   cfg.Cart.IdleTTL(),
		Location:  loc,
		Log:       log,
	})

	authUC := auth.NewAuthUseCase(sessions, checkoutUC, auth.Operator{
		Username:     cfg.Auth.Username,
		PasswordHash: cfg.Auth.PasswordHash,
		Role:         cfg.Auth.Role,
	}, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	go checkoutUC.RunSweeper(ctx, sweepInterval, authUC)

	reportUC := report.NewReportUseCase(report.Deps{
		Sales:     saleRepo,
		Payments:  paymentRepo,
		Customers: customerRepo,
		PDF:       infrapdf.NewMarotoPDFGenerator(cfg.App.Name, loc),
		Workbook:  infraexcel.NewSalesWorkbook(),
		Location:  loc,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.Upstream.Timeout() + 10*time.Second,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	docs.SwaggerInfo.Host = cfg.HTTP.Addr()
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Ventas POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CheckoutUC:  checkoutUC,
		ProductUC:   usecase.NewProductUseCase(productRepo),
		CustomerUC:  usecase.NewCustomerUseCase(customerRepo),
		PaymentUC:   usecase.NewPaymentUseCase(paymentRepo, loc),
		SaleUC:      usecase.NewSaleUseCase(saleRepo),
		PurchaseUC:  usecase.NewPurchaseUseCase(purchaseRepo, loc),
		ReportUC:    reportUC,
		Sessions:    sessions,
		JWTSecret:   cfg.JWT.Secret,
		DefaultLang: cfg.App.Locale,
		Log:         log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
