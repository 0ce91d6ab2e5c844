package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/salon_pos/internal/mykafka"
	"github.com/Skotchmaster/salon_pos/internal/service"
	"github.com/Skotchmaster/salon_pos/internal/transport"
	"github.com/Skotchmaster/salon_pos/internal/util"
	"github.com/Skotchmaster/salon_pos/pkg/logging"
)

type CatalogHTTP struct {
	Svc      *service.CatalogService
	Producer EventPublisher
}

func (h *CatalogHTTP) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.list_products")

	items, err := h.Svc.ListProducts(ctx)
	if err != nil {
		return serviceError(l, "list_products_error", err, "")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CatalogHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.create_product")

	var req transport.ProductRequest
	if err := c.Bind(&req); err != nil {
		return bindError(l, "create_product_error", err)
	}

	product, entry, err := h.Svc.CreateProduct(ctx, req)
	if err != nil {
		return serviceError(l, "create_product_error", err, "name is required")
	}

	publish(c, h.Producer, mykafka.TopicCatalog, product.ID, map[string]any{
		"type":      "product_created",
		"productID": product.ID,
		"name":      product.Name,
		"stock":     product.Stock,
	})
	if entry != nil {
		publish(c, h.Producer, mykafka.TopicLedger, entry.ID, map[string]any{
			"type":          "stock_added",
			"transactionID": entry.ID,
			"productID":     product.ID,
			"quantity":      product.Stock,
			"cost":          entry.Cost,
		})
	}

	l.Info("create_product_success", "product_id", product.ID)
	return c.JSON(http.StatusOK, transport.IDResponse{ID: product.ID})
}

func (h *CatalogHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.update_product")

	id, err := parseID(c)
	if err != nil {
		l.Warn("update_product_error", "status", 400, "reason", "bad id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
	}

	var req transport.ProductRequest
	if err := c.Bind(&req); err != nil {
		return bindError(l, "update_product_error", err)
	}

	updated, err := h.Svc.UpdateProduct(ctx, id, req)
	if err != nil {
		return serviceError(l, "update_product_error", err, "name is required")
	}

	if updated {
		publish(c, h.Producer, mykafka.TopicCatalog, id, map[string]any{
			"type":      "product_updated",
			"productID": id,
			"name":      req.Name,
		})
	}

	l.Info("update_product_success", "product_id", id)
	return c.JSON(http.StatusOK, transport.SuccessResponse{Success: true})
}

func (h *CatalogHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.delete_product")

	id, err := parseID(c)
	if err != nil {
		l.Warn("delete_product_error", "status", 400, "reason", "bad id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
	}

	if err := h.Svc.DeleteProduct(ctx, id); err != nil {
		return serviceError(l, "delete_product_error", err, "")
	}

	publish(c, h.Producer, mykafka.TopicCatalog, id, map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})

	l.Info("delete_product_success", "product_id", id)
	return c.JSON(http.StatusOK, transport.SuccessResponse{Success: true})
}

func (h *CatalogHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.search_products")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)
	if page < 1 {
		page = 1
	}

	total, items, err := h.Svc.SearchProducts(ctx, c.QueryParam("q"), offset, limit)
	if err != nil {
		return serviceError(l, "search_products_error", err, "q is required")
	}

	return c.JSON(http.StatusOK, transport.ProductSearchResponse{
		Total:    total,
		Page:     page,
		Size:     limit,
		Products: items,
	})
}

func (h *CatalogHTTP) ListServices(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.list_services")

	items, err := h.Svc.ListServices(ctx)
	if err != nil {
		return serviceError(l, "list_services_error", err, "")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CatalogHTTP) CreateService(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.create_service")

	var req transport.CreateServiceRequest
	if err := c.Bind(&req); err != nil {
		return bindError(l, "create_service_error", err)
	}

	svc, err := h.Svc.CreateService(ctx, req)
	if err != nil {
		return serviceError(l, "create_service_error", err, "name is required")
	}

	publish(c, h.Producer, mykafka.TopicCatalog, svc.ID, map[string]any{
		"type":      "service_created",
		"serviceID": svc.ID,
		"name":      svc.Name,
		"price":     svc.Price,
	})

	l.Info("create_service_success", "service_id", svc.ID)
	return c.JSON(http.StatusOK, transport.IDResponse{ID: svc.ID})
}

func (h *CatalogHTTP) UpdateService(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.update_service")

	id, err := parseID(c)
	if err != nil {
		l.Warn("update_service_error", "status", 400, "reason", "bad id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
	}

	var req transport.UpdateServiceRequest
	if err := c.Bind(&req); err != nil {
		return bindError(l, "update_service_error", err)
	}

	svc, err := h.Svc.UpdateService(ctx, id, req)
	if err != nil {
		return serviceError(l, "update_service_error", err, "invalid body")
	}

	publish(c, h.Producer, mykafka.TopicCatalog, svc.ID, map[string]any{
		"type":      "service_updated",
		"serviceID": svc.ID,
		"name":      svc.Name,
		"price":     svc.Price,
	})

	l.Info("update_service_success", "service_id", svc.ID)
	return c.JSON(http.StatusOK, transport.SuccessResponse{Success: true, Message: "Service updated successfully"})
}
