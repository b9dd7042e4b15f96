package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dkotelnikov/shop-backend/internal/logging"
	"github.com/dkotelnikov/shop-backend/internal/models"
	"github.com/dkotelnikov/shop-backend/internal/mykafka"
	"github.com/dkotelnikov/shop-backend/internal/service"
	"github.com/dkotelnikov/shop-backend/internal/transport"
)

// popularCategory is the category the legacy /popularinwomen route is
// hardwired to.
const popularCategory = "women"

type ProductHTTP struct {
	Svc      *service.CatalogService
	Producer *mykafka.Producer
}

func (h *ProductHTTP) AddProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "add.product")

	var req transport.AddProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_product_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "errors": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("add_product_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "errors": "all product fields are required"})
	}

	product := models.Product{
		Brand:       req.Brand,
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Category:    req.Category,
		NewPrice:    req.NewPrice,
		OldPrice:    req.OldPrice,
	}
	if err := h.Svc.AddProduct(ctx, &product); err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("add_product_error", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "errors": err.Error()})
		}
		l.Error("add_product_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "errors": "internal server error"})
	}

	publish(c, h.Producer, "product_events", fmt.Sprint(product.ID), map[string]any{
		"type":      "product_added",
		"productID": product.ID,
		"name":      product.Name,
	})

	l.Info("product added", "product_id", product.ID)
	return c.JSON(http.StatusOK, transport.ProductResponse{Success: true, Name: req.Name})
}

func (h *ProductHTTP) RemoveProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "remove.product")

	var req transport.RemoveProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("remove_product_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "errors": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("remove_product_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "errors": "id is required"})
	}

	if err := h.Svc.RemoveProduct(ctx, req.ID); err != nil {
		l.Error("remove_product_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "errors": "internal server error"})
	}

	publish(c, h.Producer, "product_events", fmt.Sprint(req.ID), map[string]any{
		"type":      "product_removed",
		"productID": req.ID,
	})

	l.Info("product removed", "product_id", req.ID)
	return c.JSON(http.StatusOK, transport.ProductResponse{Success: true, Name: req.Name})
}

func (h *ProductHTTP) AllProducts(c echo.Context) error {
	items, err := h.Svc.AllProducts(c.Request().Context())
	if err != nil {
		return h.listError(c, "all.products", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHTTP) NewCollections(c echo.Context) error {
	items, err := h.Svc.NewCollections(c.Request().Context())
	if err != nil {
		return h.listError(c, "new.collections", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHTTP) PopularInWomen(c echo.Context) error {
	items, err := h.Svc.PopularIn(c.Request().Context(), popularCategory)
	if err != nil {
		return h.listError(c, "popular.in.women", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHTTP) listError(c echo.Context, handler string, err error) error {
	logging.FromContext(c.Request().Context()).
		With("handler", handler).
		Error("catalog list error", "status", 500, "error", err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "errors": "internal server error"})
}
