package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appledger "github.com/Peluchito08/Sistema-guitarshop-sub000/internal/application/ledger"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/application/purchases"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/application/sales"
	infraexcel "github.com/Peluchito08/Sistema-guitarshop-sub000/internal/infrastructure/excel"
	infrapdf "github.com/Peluchito08/Sistema-guitarshop-sub000/internal/infrastructure/pdf"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/infrastructure/postgres"
	httpRouter "github.com/Peluchito08/Sistema-guitarshop-sub000/internal/interfaces/http"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/pkg/config"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repos sobre el pool para lecturas; el TxRunner arma los suyos por tx.
	productRepo := postgres.NewProductRepository(pool)
	salesOrderRepo := postgres.NewSalesOrderRepository(pool)
	purchaseOrderRepo := postgres.NewPurchaseOrderRepository(pool)
	creditRepo := postgres.NewCreditRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	createSaleUC := sales.NewCreateOrderUseCase(txRunner, cfg.Sales.TaxRate, cfg.Sales.DefaultDayInterval)
	cancelSaleUC := sales.NewCancelOrderUseCase(txRunner)
	getSaleUC := sales.NewGetOrderUseCase(salesOrderRepo, creditRepo)

	receiptGenerator := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	receiptUC := sales.NewReceiptUseCase(salesOrderRepo, productRepo, creditRepo, receiptGenerator)

	createPurchaseUC := purchases.NewCreateOrderUseCase(txRunner, cfg.Sales.TaxRate)
	getPurchaseUC := purchases.NewGetOrderUseCase(purchaseOrderRepo)

	kardexExporter := infraexcel.NewKardexExporter()
	kardexUC := appledger.NewKardexUseCase(ledgerRepo, kardexExporter)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "GuitarShop API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CreateSale:     createSaleUC,
		CancelSale:     cancelSaleUC,
		GetSale:        getSaleUC,
		SaleReceipt:    receiptUC,
		CreatePurchase: createPurchaseUC,
		GetPurchase:    getPurchaseUC,
		Kardex:         kardexUC,
		JWTSecret:      cfg.JWT.Secret,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
