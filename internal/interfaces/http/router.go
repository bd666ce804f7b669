package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/application/ledger"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/application/purchases"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/application/sales"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CreateSale     *sales.CreateOrderUseCase
	CancelSale     *sales.CancelOrderUseCase
	GetSale        *sales.GetOrderUseCase
	SaleReceipt    *sales.ReceiptUseCase
	CreatePurchase *purchases.CreateOrderUseCase
	GetPurchase    *purchases.GetOrderUseCase
	Kardex         *ledger.KardexUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Sales (protegido)
	salesGroup := protected.Group("/sales")
	salesHandler := NewSalesHandler(deps.CreateSale, deps.CancelSale, deps.GetSale, deps.SaleReceipt)
	salesGroup.Post("/", salesHandler.Create)
	salesGroup.Get("/:id", salesHandler.GetByID)
	salesGroup.Post("/:id/cancel", salesHandler.Cancel)
	salesGroup.Get("/:id/receipt", salesHandler.Receipt)

	// Purchases (protegido; PUT y DELETE rechazan: las compras son inmutables)
	purchasesGroup := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.CreatePurchase, deps.GetPurchase)
	purchasesGroup.Post("/", purchaseHandler.Create)
	purchasesGroup.Get("/:id", purchaseHandler.GetByID)
	purchasesGroup.Put("/:id", purchaseHandler.Modify)
	purchasesGroup.Delete("/:id", purchaseHandler.Cancel)

	// Kardex (protegido)
	kardexGroup := protected.Group("/kardex")
	kardexHandler := NewKardexHandler(deps.Kardex)
	kardexGroup.Get("/", kardexHandler.List)
	kardexGroup.Get("/export", kardexHandler.Export)
}
