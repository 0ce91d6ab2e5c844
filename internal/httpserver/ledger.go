package httpserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/salon_pos/internal/mykafka"
	"github.com/Skotchmaster/salon_pos/internal/service"
	"github.com/Skotchmaster/salon_pos/internal/transport"
	"github.com/Skotchmaster/salon_pos/pkg/logging"
)

type LedgerHTTP struct {
	Svc      *service.LedgerService
	Producer EventPublisher
}

func (h *LedgerHTTP) ListTransactions(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "ledger.list_transactions")

	rows, err := h.Svc.ListAll(ctx)
	if err != nil {
		l.Error("list_transactions_error", "status", 500, "reason", "cannot fetch transactions", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch transactions")
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *LedgerHTTP) TransactionsByDate(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "ledger.transactions_by_date")

	rows, err := h.Svc.QueryByDateRange(ctx, c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return serviceError(l, "transactions_by_date_error", err, "invalid date range")
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *LedgerHTTP) CreateTransaction(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "ledger.create_transaction")

	var req transport.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return bindError(l, "create_transaction_error", err)
	}

	entry, err := h.Svc.Append(ctx, req)
	if err != nil {
		return serviceError(l, "create_transaction_error", err, "invalid body")
	}

	publish(c, h.Producer, mykafka.TopicLedger, entry.ID, map[string]any{
		"type":          "transaction_recorded",
		"transactionID": entry.ID,
		"category":      entry.Type,
		"t_type":        entry.TType,
		"amount":        entry.Amount,
		"cost":          entry.Cost,
	})

	l.Info("create_transaction_success", "transaction_id", entry.ID)
	return c.JSON(http.StatusOK, transport.IDResponse{ID: entry.ID})
}

func (h *LedgerHTTP) ProfitAndLoss(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "ledger.profit_and_loss")

	report, err := h.Svc.ProfitAndLoss(ctx, c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return serviceError(l, "profit_and_loss_error", err, "invalid date range")
	}
	return c.JSON(http.StatusOK, report)
}

func (h *LedgerHTTP) BalanceSheet(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "ledger.balance_sheet")

	report, err := h.Svc.BalanceSheet(ctx, c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return serviceError(l, "balance_sheet_error", err, "invalid date range")
	}
	return c.JSON(http.StatusOK, report)
}

func (h *LedgerHTTP) Export(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "ledger.export")

	rows, err := h.Svc.Export(ctx, c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return serviceError(l, "export_error", err, "invalid date range")
	}

	out, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		l.Error("export_error", "status", 500, "reason", "cannot encode csv", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, serverErrorMsg)
	}

	name := fmt.Sprintf("transactions-%s.csv", time.Now().UTC().Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", out)
}
