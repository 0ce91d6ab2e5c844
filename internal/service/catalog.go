package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Skotchmaster/salon_pos/internal/models"
	"github.com/Skotchmaster/salon_pos/internal/repo"
	"github.com/Skotchmaster/salon_pos/internal/transport"
	"github.com/Skotchmaster/salon_pos/pkg/logging"
)

// ProductIndex is a full-text index kept next to the products table.
type ProductIndex interface {
	IndexProduct(ctx context.Context, p models.Product) error
	DeleteProduct(ctx context.Context, id uint) error
	Search(ctx context.Context, q string, from, size int) (int64, []models.Product, error)
}

type CatalogService struct {
	Repo  *repo.GormRepo
	Index ProductIndex
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx)
}

// CreateProduct inserts the product and, when it arrives with stock, the
// matching expense entry in the same transaction.
func (s *CatalogService) CreateProduct(ctx context.Context, req transport.ProductRequest) (*models.Product, *models.Transaction, error) {
	product, err := productFromRequest(req)
	if err != nil {
		return nil, nil, err
	}

	var entry *models.Transaction
	err = s.Repo.WithTx(ctx, func(tx *repo.GormRepo) error {
		if err := tx.CreateProduct(ctx, product); err != nil {
			return err
		}
		if product.Stock <= 0 {
			return nil
		}

		details, err := models.EncodeDetails(models.StockDetails{
			ProductID: product.ID,
			Quantity:  product.Stock,
		})
		if err != nil {
			return err
		}
		entry = &models.Transaction{
			Type:    models.TypeExpense,
			TType:   models.TTypeDebit,
			Details: details,
			Amount:  0,
			Cost:    product.CostPrice * float64(product.Stock),
			Notes:   fmt.Sprintf("Added %d units of %s", product.Stock, product.Name),
		}
		return tx.AppendTransaction(ctx, entry)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create product: %w", err)
	}

	s.reindex(ctx, *product)
	return product, entry, nil
}

// UpdateProduct overwrites all fields. An unknown id is not an error; the
// returned flag reports whether a row matched.
func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, req transport.ProductRequest) (bool, error) {
	l := logging.FromContext(ctx).With("svc", "catalog.update_product", "product_id", id)

	product, err := productFromRequest(req)
	if err != nil {
		return false, err
	}

	n, err := s.Repo.UpdateProduct(ctx, id, product)
	if err != nil {
		return false, fmt.Errorf("update product: %w", err)
	}
	if n == 0 {
		l.Warn("update_product_no_rows", "reason", "no product with this id")
		return false, nil
	}

	product.ID = id
	s.reindex(ctx, *product)
	return true, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	if s.Index != nil {
		if err := s.Index.DeleteProduct(ctx, id); err != nil {
			logging.FromContext(ctx).Warn("search_index_delete_failed", "product_id", id, "error", err)
		}
	}
	return nil
}

// SearchProducts uses the search index when one is configured and the
// database otherwise, or when the index is unavailable.
func (s *CatalogService) SearchProducts(ctx context.Context, q string, offset, limit int) (int64, []models.Product, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return 0, nil, fmt.Errorf("q is required: %w", ErrValidation)
	}

	if s.Index != nil {
		total, items, err := s.Index.Search(ctx, q, offset, limit)
		if err == nil {
			return total, items, nil
		}
		logging.FromContext(ctx).Warn("search_index_query_failed", "reason", "falling back to database", "error", err)
	}

	return s.Repo.SearchProducts(ctx, q, offset, limit)
}

func (s *CatalogService) ListServices(ctx context.Context) ([]models.Service, error) {
	return s.Repo.ListServices(ctx)
}

func (s *CatalogService) CreateService(ctx context.Context, req transport.CreateServiceRequest) (*models.Service, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required: %w", ErrValidation)
	}

	svc := &models.Service{
		Name:        name,
		Description: req.Description,
		Price:       req.Price.Or(0),
		Cost:        req.Cost.Or(0),
	}
	if err := s.Repo.CreateService(ctx, svc); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return svc, nil
}

// UpdateService merges the request into the stored row.
func (s *CatalogService) UpdateService(ctx context.Context, id uint, req transport.UpdateServiceRequest) (*models.Service, error) {
	svc, err := s.Repo.GetService(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("get service: %w", err)
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		svc.Name = name
	}
	if req.Description != "" {
		svc.Description = req.Description
	}
	svc.Price = req.Price.Or(svc.Price)
	svc.Cost = req.Cost.Or(svc.Cost)

	if err := s.Repo.SaveService(ctx, svc); err != nil {
		return nil, fmt.Errorf("save service: %w", err)
	}
	return svc, nil
}

func (s *CatalogService) reindex(ctx context.Context, p models.Product) {
	reindexProduct(ctx, s.Index, p)
}

func reindexProduct(ctx context.Context, idx ProductIndex, p models.Product) {
	if idx == nil {
		return
	}
	if err := idx.IndexProduct(ctx, p); err != nil {
		logging.FromContext(ctx).Warn("search_index_update_failed", "product_id", p.ID, "error", err)
	}
}

func productFromRequest(req transport.ProductRequest) (*models.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required: %w", ErrValidation)
	}

	stock := 0
	if req.Stock.Set && req.Stock.Value != 0 {
		n, ok := req.Stock.Count()
		if !ok {
			return nil, fmt.Errorf("stock %v: %w", req.Stock.Value, ErrInvalidStock)
		}
		stock = n
	}

	return &models.Product{
		Name:      name,
		SKU:       req.SKU,
		Stock:     stock,
		CostPrice: req.CostPrice.Or(0),
		SellPrice: req.SellPrice.Or(0),
	}, nil
}
