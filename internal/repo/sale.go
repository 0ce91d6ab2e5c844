package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/salon_pos/internal/models"
)

// DecrementStock removes qty units only if enough are left.
func (r *GormRepo) DecrementStock(ctx context.Context, productID uint, qty int) error {
	res := r.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ? AND stock >= ?", productID, qty).
		Update("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}

func (r *GormRepo) IncrementStock(ctx context.Context, productID uint, qty int) error {
	res := r.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", productID).
		Update("stock", gorm.Expr("stock + ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
