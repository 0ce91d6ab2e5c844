package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/Skotchmaster/salon_pos/internal/models"
	"github.com/Skotchmaster/salon_pos/internal/repo"
	"github.com/Skotchmaster/salon_pos/internal/transport"
)

type LedgerService struct {
	Repo *repo.GormRepo
	Loc  *time.Location
}

func NormalizeTType(v string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "", models.TTypeDebit:
		return models.TTypeDebit, nil
	case models.TTypeCredit:
		return models.TTypeCredit, nil
	default:
		return "", fmt.Errorf("%q: %w", v, ErrInvalidTType)
	}
}

// Append records a caller-supplied ledger entry.
func (s *LedgerService) Append(ctx context.Context, req transport.CreateTransactionRequest) (*models.Transaction, error) {
	tType, err := NormalizeTType(req.TType)
	if err != nil {
		return nil, err
	}

	txType := strings.TrimSpace(req.Type)
	if txType == "" {
		txType = models.TypeExpense
	}

	details := datatypes.JSON("{}")
	if raw := bytes.TrimSpace(req.Details); len(raw) > 0 && string(raw) != "null" {
		if !json.Valid(raw) {
			return nil, fmt.Errorf("details is not valid JSON: %w", ErrValidation)
		}
		details = datatypes.JSON(raw)
	}

	entry := &models.Transaction{
		Type:    txType,
		TType:   tType,
		Details: details,
		Amount:  req.Amount.Or(0),
		Cost:    req.Cost.Or(0),
		Notes:   req.Notes,
	}
	if err := s.Repo.AppendTransaction(ctx, entry); err != nil {
		return nil, fmt.Errorf("append transaction: %w", err)
	}
	return entry, nil
}

func (s *LedgerService) ListAll(ctx context.Context) ([]models.Transaction, error) {
	return s.Repo.ListTransactions(ctx)
}

func (s *LedgerService) QueryByDateRange(ctx context.Context, from, to string) ([]models.Transaction, error) {
	r, err := ParseDateRange(from, to, s.Loc)
	if err != nil {
		return nil, err
	}
	return s.Repo.TransactionsBetween(ctx, r.From, r.To, true)
}

// ProfitAndLoss sums amount and cost over every row in range, debit and
// credit alike.
func (s *LedgerService) ProfitAndLoss(ctx context.Context, from, to string) (*transport.ProfitAndLoss, error) {
	r, err := ParseDateRange(from, to, s.Loc)
	if err != nil {
		return nil, err
	}

	t, err := s.Repo.SumTransactions(ctx, r.From, r.To)
	if err != nil {
		return nil, fmt.Errorf("sum transactions: %w", err)
	}

	return &transport.ProfitAndLoss{
		Revenue:           t.Amount,
		Cost:              t.Cost,
		Profit:            t.Amount - t.Cost,
		TransactionsCount: t.Count,
	}, nil
}

func (s *LedgerService) BalanceSheet(ctx context.Context, from, to string) (*transport.BalanceSheet, error) {
	r, err := ParseDateRange(from, to, s.Loc)
	if err != nil {
		return nil, err
	}

	rows, err := s.Repo.TransactionsBetween(ctx, r.From, r.To, false)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	out := &transport.BalanceSheet{Transactions: make([]transport.BalanceEntry, 0, len(rows))}
	for _, tx := range rows {
		switch tx.TType {
		case models.TTypeDebit:
			out.TotalDr += tx.Amount
		case models.TTypeCredit:
			out.TotalCr += tx.Amount
		}

		out.Transactions = append(out.Transactions, transport.BalanceEntry{
			ID:      tx.ID,
			Date:    tx.Date,
			Type:    tx.Type,
			TType:   tx.TType,
			Details: models.DecodeDetails(tx.Type, tx.Details),
			Amount:  tx.Amount,
			Cost:    tx.Cost,
			Notes:   tx.Notes,
		})
	}
	out.NetBalance = out.TotalCr - out.TotalDr

	return out, nil
}

// Export returns the range oldest first, flattened for CSV.
func (s *LedgerService) Export(ctx context.Context, from, to string) ([]transport.TransactionCSV, error) {
	r, err := ParseDateRange(from, to, s.Loc)
	if err != nil {
		return nil, err
	}

	rows, err := s.Repo.TransactionsBetween(ctx, r.From, r.To, false)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	out := make([]transport.TransactionCSV, 0, len(rows))
	for _, tx := range rows {
		out = append(out, transport.TransactionCSV{
			ID:      tx.ID,
			Date:    tx.Date.UTC().Format(time.RFC3339),
			Type:    tx.Type,
			TType:   tx.TType,
			Amount:  tx.Amount,
			Cost:    tx.Cost,
			Notes:   tx.Notes,
			Details: string(tx.Details),
		})
	}
	return out, nil
}
