package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dkotelnikov/shop-backend/internal/logging"
	"github.com/dkotelnikov/shop-backend/internal/middleware/authmw"
	"github.com/dkotelnikov/shop-backend/internal/mykafka"
	"github.com/dkotelnikov/shop-backend/internal/service"
	"github.com/dkotelnikov/shop-backend/internal/transport"
)

type CartHTTP struct {
	Svc      *service.CartService
	Producer *mykafka.Producer
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "get.cart")

	userID, ok := authmw.UserID(c)
	if !ok {
		l.Error("get_cart_error", "status", 401)
		return c.JSON(http.StatusUnauthorized, echo.Map{"errors": "Please authenticate using a valid token"})
	}

	cart, err := h.Svc.Get(ctx, userID)
	if errors.Is(err, service.ErrNotFound) {
		l.Warn("get_cart_error", "status", 404, "error", err)
		return c.JSON(http.StatusNotFound, echo.Map{"errors": "user not found"})
	}
	if err != nil {
		l.Error("get_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"errors": "internal server error"})
	}

	return c.JSON(http.StatusOK, h.Svc.DenseVector(cart))
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "add.cart")

	userID, ok := authmw.UserID(c)
	if !ok {
		l.Error("add_to_cart_error", "status", 401)
		return c.JSON(http.StatusUnauthorized, echo.Map{"errors": "Please authenticate using a valid token"})
	}

	var req transport.CartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": "invalid request body"})
	}

	if err := h.Svc.Add(ctx, userID, req.ItemID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("add_to_cart_error", "status", 404, "error", err)
			return c.JSON(http.StatusNotFound, echo.Map{"errors": "Product not found"})
		}
		l.Error("add_to_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"errors": "internal server error"})
	}

	publish(c, h.Producer, "cart_events", fmt.Sprint(userID), map[string]any{
		"type":   "cart_item_added",
		"userID": userID,
		"itemID": req.ItemID,
	})

	l.Info("item added to cart", "user_id", userID, "item_id", req.ItemID)
	return c.String(http.StatusOK, "Added")
}

func (h *CartHTTP) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "remove.cart")

	userID, ok := authmw.UserID(c)
	if !ok {
		l.Error("remove_from_cart_error", "status", 401)
		return c.JSON(http.StatusUnauthorized, echo.Map{"errors": "Please authenticate using a valid token"})
	}

	var req transport.CartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("remove_from_cart_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": "invalid request body"})
	}

	if err := h.Svc.Remove(ctx, userID, req.ItemID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("remove_from_cart_error", "status", 404, "error", err)
			return c.JSON(http.StatusNotFound, echo.Map{"errors": "user not found"})
		}
		l.Error("remove_from_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"errors": "internal server error"})
	}

	publish(c, h.Producer, "cart_events", fmt.Sprint(userID), map[string]any{
		"type":   "cart_item_removed",
		"userID": userID,
		"itemID": req.ItemID,
	})

	l.Info("item removed from cart", "user_id", userID, "item_id", req.ItemID)
	return c.String(http.StatusOK, "Removed")
}
