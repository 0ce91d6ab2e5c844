package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Skotchmaster/salon_pos/internal/models"
)

type Totals struct {
	Amount float64
	Cost   float64
	Count  int64
}

var dateColumn = clause.Column{Name: "date"}

func (r *GormRepo) AppendTransaction(ctx context.Context, tx *models.Transaction) error {
	return r.DB.WithContext(ctx).Create(tx).Error
}

func (r *GormRepo) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	items := make([]models.Transaction, 0)
	if err := r.DB.WithContext(ctx).
		Order(newestFirst()).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// TransactionsBetween returns rows with from <= date <= to.
func (r *GormRepo) TransactionsBetween(ctx context.Context, from, to time.Time, desc bool) ([]models.Transaction, error) {
	order := clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: dateColumn},
		{Column: clause.Column{Name: "id"}},
	}}
	if desc {
		order = newestFirst()
	}

	items := make([]models.Transaction, 0)
	if err := r.between(ctx, from, to).
		Order(order).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) SumTransactions(ctx context.Context, from, to time.Time) (Totals, error) {
	var t Totals
	err := r.between(ctx, from, to).
		Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0) AS amount, COALESCE(SUM(cost), 0) AS cost, COUNT(*) AS count").
		Scan(&t).Error
	return t, err
}

func (r *GormRepo) between(ctx context.Context, from, to time.Time) *gorm.DB {
	return r.DB.WithContext(ctx).
		Where(clause.Gte{Column: dateColumn, Value: from.UTC()}).
		Where(clause.Lte{Column: dateColumn, Value: to.UTC()})
}

func newestFirst() clause.OrderBy {
	return clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: dateColumn, Desc: true},
		{Column: clause.Column{Name: "id"}, Desc: true},
	}}
}
