package httpserver

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	middleware "github.com/Skotchmaster/salon_pos/pkg/middleware/auth"
	loggingmw "github.com/Skotchmaster/salon_pos/pkg/middleware/logging"
	"github.com/Skotchmaster/salon_pos/pkg/tokens"
)

type Deps struct {
	Auth    *AuthHTTP
	Catalog *CatalogHTTP
	Sale    *SaleHTTP
	Ledger  *LedgerHTTP
	Health  *HealthHTTP
	Tokens  *tokens.Manager
}

// NewEcho builds the echo instance with the shared middleware chain.
func NewEcho(logger *slog.Logger, corsOrigins []string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler

	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     corsOrigins,
		AllowCredentials: true,
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	return e
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", d.Health.Live)
	e.GET("/health/ready", d.Health.Ready)

	api := e.Group("/api")
	api.POST("/auth/login", d.Auth.Login)

	bearer := middleware.NewBearerAuth(d.Tokens)
	secured := api.Group("", bearer.RequireAuth)

	secured.GET("/products", d.Catalog.ListProducts)
	secured.POST("/products", d.Catalog.CreateProduct)
	secured.GET("/products/search", d.Catalog.SearchProducts)
	secured.POST("/products/add-stock", d.Sale.AddStock)
	secured.PUT("/products/:id", d.Catalog.UpdateProduct)
	secured.DELETE("/products/:id", d.Catalog.DeleteProduct)

	secured.GET("/services", d.Catalog.ListServices)
	secured.POST("/services", d.Catalog.CreateService)
	secured.PUT("/services/:id", d.Catalog.UpdateService)
	secured.POST("/services/serve", d.Sale.Serve)

	secured.POST("/sales/sell", d.Sale.Sell)

	secured.GET("/reports/pl", d.Ledger.ProfitAndLoss)
	secured.GET("/reports/balance", d.Ledger.BalanceSheet)

	secured.GET("/transactions", d.Ledger.ListTransactions)
	secured.POST("/transactions", d.Ledger.CreateTransaction)
	secured.GET("/transactions/export", d.Ledger.Export)
	secured.GET("/date/transactions", d.Ledger.TransactionsByDate)
}
