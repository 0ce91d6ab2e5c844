package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/salon_pos/internal/mykafka"
	"github.com/Skotchmaster/salon_pos/internal/service"
	"github.com/Skotchmaster/salon_pos/internal/transport"
	"github.com/Skotchmaster/salon_pos/pkg/logging"
)

type SaleHTTP struct {
	Svc      *service.SaleService
	Producer EventPublisher
}

func (h *SaleHTTP) Sell(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "sale.sell")

	var req transport.SellRequest
	if err := c.Bind(&req); err != nil {
		return bindError(l, "sell_error", err)
	}

	entry, err := h.Svc.SellProduct(ctx, req)
	if err != nil {
		return serviceError(l, "sell_error", err, "Missing fields")
	}

	publish(c, h.Producer, mykafka.TopicLedger, entry.ID, map[string]any{
		"type":          "product_sold",
		"transactionID": entry.ID,
		"productID":     req.ProductID.Value,
		"quantity":      req.Quantity.Int(),
		"amount":        entry.Amount,
		"cost":          entry.Cost,
	})

	return c.JSON(http.StatusOK, transport.SuccessResponse{Success: true, Message: "Sale completed!"})
}

func (h *SaleHTTP) Serve(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "sale.serve")

	var req transport.ServeRequest
	if err := c.Bind(&req); err != nil {
		return bindError(l, "serve_error", err)
	}

	entry, err := h.Svc.ServeService(ctx, req)
	if err != nil {
		return serviceError(l, "serve_error", err, "Missing fields")
	}

	publish(c, h.Producer, mykafka.TopicLedger, entry.ID, map[string]any{
		"type":          "service_served",
		"transactionID": entry.ID,
		"serviceID":     req.ServiceID.Value,
		"amount":        entry.Amount,
		"cost":          entry.Cost,
	})

	return c.JSON(http.StatusOK, transport.SuccessResponse{Success: true, Message: "Service served and transaction recorded."})
}

func (h *SaleHTTP) AddStock(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "sale.add_stock")

	var req transport.AddStockRequest
	if err := c.Bind(&req); err != nil {
		return bindError(l, "add_stock_error", err)
	}

	entry, err := h.Svc.AddStock(ctx, req)
	if err != nil {
		return serviceError(l, "add_stock_error", err, "Missing product_id or quantity")
	}

	publish(c, h.Producer, mykafka.TopicLedger, entry.ID, map[string]any{
		"type":          "stock_added",
		"transactionID": entry.ID,
		"productID":     req.ProductID.Value,
		"quantity":      req.Quantity.Int(),
		"cost":          entry.Cost,
	})

	return c.JSON(http.StatusOK, transport.SuccessResponse{Success: true, Msg: "Stock added successfully"})
}
