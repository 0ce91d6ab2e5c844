package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/Skotchmaster/salon_pos/internal/models"
	"github.com/Skotchmaster/salon_pos/internal/transport"
)

func seedEntry(t *testing.T, env *testEnv, tx models.Transaction) models.Transaction {
	t.Helper()
	if tx.Details == nil {
		tx.Details = datatypes.JSON("{}")
	}
	require.NoError(t, env.Repo.AppendTransaction(context.Background(), &tx))
	return tx
}

func at(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestLedgerService_BalanceSheet(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	dr := seedEntry(t, env, models.Transaction{Type: models.TypeExpense, TType: models.TTypeDebit, Amount: 50, Date: at(2024, 5, 1, 10),
		Details: datatypes.JSON(`{"product_id":1,"quantity":10}`)})
	cr := seedEntry(t, env, models.Transaction{Type: models.TypeProductSale, TType: models.TTypeCredit, Amount: 60, Cost: 15, Date: at(2024, 5, 2, 18),
		Details: datatypes.JSON(`not json`)})

	sheet, err := env.Ledger.BalanceSheet(ctx, "2024-05-01", "2024-05-02")
	require.NoError(t, err)
	assert.Equal(t, 50.0, sheet.TotalDr)
	assert.Equal(t, 60.0, sheet.TotalCr)
	assert.Equal(t, 10.0, sheet.NetBalance)

	require.Len(t, sheet.Transactions, 2)
	assert.Equal(t, dr.ID, sheet.Transactions[0].ID)
	assert.Equal(t, cr.ID, sheet.Transactions[1].ID)
	assert.Equal(t, models.StockDetails{ProductID: 1, Quantity: 10}, sheet.Transactions[0].Details)
	assert.Equal(t, models.RawDetails{}, sheet.Transactions[1].Details)
	assert.Equal(t, models.TTypeCredit, sheet.Transactions[1].TType)

	out, err := json.Marshal(sheet)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"details":{}`)
}

func TestLedgerService_ProfitAndLoss_SumsEverything(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seedEntry(t, env, models.Transaction{Type: models.TypeExpense, TType: models.TTypeDebit, Amount: 0, Cost: 50, Date: at(2024, 5, 1, 9)})
	seedEntry(t, env, models.Transaction{Type: models.TypeProductSale, TType: models.TTypeCredit, Amount: 60, Cost: 15, Date: at(2024, 5, 1, 12)})
	seedEntry(t, env, models.Transaction{Type: "refund", TType: models.TTypeDebit, Amount: 5, Cost: 0, Date: at(2024, 5, 1, 13)})
	seedEntry(t, env, models.Transaction{Type: models.TypeProductSale, TType: models.TTypeCredit, Amount: 100, Cost: 40, Date: at(2024, 6, 1, 12)})

	pl, err := env.Ledger.ProfitAndLoss(ctx, "2024-05-01", "2024-05-31")
	require.NoError(t, err)
	assert.Equal(t, 65.0, pl.Revenue)
	assert.Equal(t, 65.0, pl.Cost)
	assert.Equal(t, 0.0, pl.Profit)
	assert.EqualValues(t, 3, pl.TransactionsCount)

	pl, err = env.Ledger.ProfitAndLoss(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, 165.0, pl.Revenue)
	assert.EqualValues(t, 4, pl.TransactionsCount)
}

func TestLedgerService_QueryByDateRange_WholeDays(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	early := seedEntry(t, env, models.Transaction{Type: "x", TType: models.TTypeDebit, Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)})
	late := seedEntry(t, env, models.Transaction{Type: "x", TType: models.TTypeDebit, Date: time.Date(2024, 5, 3, 23, 59, 59, 0, time.UTC)})
	seedEntry(t, env, models.Transaction{Type: "x", TType: models.TTypeDebit, Date: time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC)})

	rows, err := env.Ledger.QueryByDateRange(ctx, "2024-05-01", "2024-05-03")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, late.ID, rows[0].ID)
	assert.Equal(t, early.ID, rows[1].ID)

	all, err := env.Ledger.QueryByDateRange(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = env.Ledger.QueryByDateRange(ctx, "yesterday-ish", "")
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLedgerService_Append(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	entry, err := env.Ledger.Append(ctx, transport.CreateTransactionRequest{
		Type:    "rent",
		Details: json.RawMessage(`{"month":"May"}`),
		Amount:  transport.N(0),
		Cost:    transport.N(500),
		Notes:   "May rent",
	})
	require.NoError(t, err)
	assert.Equal(t, models.TTypeDebit, entry.TType)
	assert.False(t, entry.Date.IsZero())

	entry, err = env.Ledger.Append(ctx, transport.CreateTransactionRequest{Type: "tip", TType: "cr", Amount: transport.N(5)})
	require.NoError(t, err)
	assert.Equal(t, models.TTypeCredit, entry.TType)
	assert.JSONEq(t, `{}`, string(entry.Details))

	_, err = env.Ledger.Append(ctx, transport.CreateTransactionRequest{Type: "x", TType: "XX"})
	assert.ErrorIs(t, err, ErrInvalidTType)

	rows, err := env.Ledger.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "tip", rows[0].Type)

	again, err := env.Ledger.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, rows, again)
}

func TestLedgerService_Export(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seedEntry(t, env, models.Transaction{Type: "rent", TType: models.TTypeDebit, Cost: 500, Notes: "May", Date: at(2024, 5, 1, 9),
		Details: datatypes.JSON(`{"month":"May"}`)})

	rows, err := env.Ledger.Export(ctx, "2024-05-01", "2024-05-01")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2024-05-01T09:00:00Z", rows[0].Date)
	assert.Equal(t, `{"month":"May"}`, rows[0].Details)
}

func TestParseDateRange(t *testing.T) {
	t.Parallel()

	r, err := ParseDateRange("2024-02-10", "2024-02-11", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), r.From)
	assert.Equal(t, time.Date(2024, 2, 11, 23, 59, 59, 999999999, time.UTC), r.To)

	r, err = ParseDateRange("", "", nil)
	require.NoError(t, err)
	assert.Equal(t, 1970, r.From.Year())
	assert.Equal(t, 2099, r.To.Year())

	loc := time.FixedZone("IST", 5*3600+1800)
	r, err = ParseDateRange("2024-02-10", "2024-02-10", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 9, 18, 30, 0, 0, time.UTC), r.From.UTC())

	_, err = ParseDateRange("not a date", "", time.UTC)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNormalizeTType(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{"": "DR", "dr": "DR", " CR ": "CR"} {
		got, err := NormalizeTType(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := NormalizeTType("debit")
	assert.ErrorIs(t, err, ErrInvalidTType)
}
