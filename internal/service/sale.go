package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Skotchmaster/salon_pos/internal/models"
	"github.com/Skotchmaster/salon_pos/internal/repo"
	"github.com/Skotchmaster/salon_pos/internal/transport"
	"github.com/Skotchmaster/salon_pos/pkg/logging"
)

const defaultCustomer = "Customer"

type SaleService struct {
	Repo  *repo.GormRepo
	Index ProductIndex
}

// SellProduct checks stock, takes the units and records the sale in one
// transaction. The decrement is conditional on stock so that concurrent
// sales cannot oversell.
func (s *SaleService) SellProduct(ctx context.Context, req transport.SellRequest) (*models.Transaction, error) {
	l := logging.FromContext(ctx).With("svc", "sale.sell_product")

	productID, ok := req.ProductID.ID()
	qty, okQty := req.Quantity.Count()
	if !ok || !okQty || !req.SellingPrice.Positive() {
		return nil, ErrMissingFields
	}

	var entry *models.Transaction
	err := s.Repo.WithTx(ctx, func(tx *repo.GormRepo) error {
		product, err := tx.GetProduct(ctx, productID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}
		if product.Stock < qty {
			return ErrInsufficientStock
		}

		totalAmount := req.SellingPrice.Value * float64(qty)
		totalCost := product.CostPrice * float64(qty)

		if err := tx.DecrementStock(ctx, product.ID, qty); err != nil {
			if errors.Is(err, repo.ErrInsufficientStock) {
				return ErrInsufficientStock
			}
			return err
		}

		details, err := models.EncodeDetails(models.ProductSaleDetails{
			ProductID:    product.ID,
			Name:         product.Name,
			Quantity:     qty,
			SellingPrice: req.SellingPrice.Value,
			CustomerName: req.CustomerName,
		})
		if err != nil {
			return err
		}

		entry = &models.Transaction{
			Type:    models.TypeProductSale,
			TType:   models.TTypeCredit,
			Details: details,
			Amount:  totalAmount,
			Cost:    totalCost,
			Notes:   req.CustomerName,
		}
		return tx.AppendTransaction(ctx, entry)
	})
	if err != nil {
		if errors.Is(err, ErrValidation) || errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("sell product: %w", err)
	}

	l.Info("product_sold", "product_id", productID, "quantity", qty, "amount", entry.Amount)
	s.refreshIndex(ctx, productID)
	return entry, nil
}

// ServeService records a rendered service. Services carry no stock.
func (s *SaleService) ServeService(ctx context.Context, req transport.ServeRequest) (*models.Transaction, error) {
	serviceID, ok := req.ServiceID.ID()
	if !ok {
		return nil, ErrMissingFields
	}

	svc, err := s.Repo.GetService(ctx, serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("get service: %w", err)
	}

	details, err := models.EncodeDetails(models.ServiceSaleDetails{
		ServiceID:    svc.ID,
		ServiceName:  svc.Name,
		CustomerName: req.CustomerName,
	})
	if err != nil {
		return nil, err
	}

	customer := req.CustomerName
	if customer == "" {
		customer = defaultCustomer
	}

	entry := &models.Transaction{
		Type:    models.TypeServiceSale,
		TType:   models.TTypeCredit,
		Details: details,
		Amount:  req.SellingPrice.Or(0),
		Cost:    svc.Cost,
		Notes:   fmt.Sprintf("Served service: %s for %s", svc.Name, customer),
	}
	if err := s.Repo.AppendTransaction(ctx, entry); err != nil {
		return nil, fmt.Errorf("record service sale: %w", err)
	}
	return entry, nil
}

// AddStock receives units into stock and books their cost as an expense.
func (s *SaleService) AddStock(ctx context.Context, req transport.AddStockRequest) (*models.Transaction, error) {
	productID, ok := req.ProductID.ID()
	qty, okQty := req.Quantity.Count()
	if !ok || !okQty {
		return nil, ErrMissingFields
	}

	var entry *models.Transaction
	err := s.Repo.WithTx(ctx, func(tx *repo.GormRepo) error {
		product, err := tx.GetProduct(ctx, productID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		if err := tx.IncrementStock(ctx, product.ID, qty); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		details, err := models.EncodeDetails(models.StockDetails{
			ProductID:     product.ID,
			ProductName:   product.Name,
			QuantityAdded: qty,
		})
		if err != nil {
			return err
		}

		entry = &models.Transaction{
			Type:    models.TypeExpense,
			TType:   models.TTypeDebit,
			Details: details,
			Amount:  0,
			Cost:    product.CostPrice * float64(qty),
			Notes:   req.Notes,
		}
		return tx.AppendTransaction(ctx, entry)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("add stock: %w", err)
	}

	s.refreshIndex(ctx, productID)
	return entry, nil
}

// refreshIndex re-reads the committed row so the index sees the stock left
// after concurrent sales, not the value seen inside this transaction.
func (s *SaleService) refreshIndex(ctx context.Context, productID uint) {
	if s.Index == nil {
		return
	}
	product, err := s.Repo.GetProduct(ctx, productID)
	if err != nil {
		logging.FromContext(ctx).Warn("search_index_update_failed", "product_id", productID, "error", err)
		return
	}
	reindexProduct(ctx, s.Index, *product)
}
