package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/golden_sneaker/internal/logging"
	"github.com/Skotchmaster/golden_sneaker/internal/service"
	"github.com/Skotchmaster/golden_sneaker/internal/transport"
)

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) CreateCartItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.create_item")

	var req transport.CartItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_cart_item_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.CreateCartItem(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create_cart_item_error", "status", 400, "reason", "missing fields", "error", err)
			return validationError(err)
		}
		l.Error("create_cart_item_error", "status", 500, "reason", "cannot add cart item to db", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot add cart item to db")
	}

	l.Info("cart item created", "cart_item_id", item.ID, "product_id", item.ProductID)
	return c.JSON(http.StatusCreated, transport.CreatedResponse{
		Message: "Cart item created successfully",
		ID:      item.ID,
	})
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get_cart")

	items, err := h.Svc.GetCartItems(ctx)
	if err != nil {
		l.Error("get_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get cart")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CartHTTP) GetCartItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get_item")

	id, err := parseID(c, "id")
	if err != nil {
		l.Warn("get_cart_item_error", "status", 400, "reason", "id is not integer", "error", err)
		return errInvalidID
	}

	item, err := h.Svc.GetCartItem(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_cart_item_error", "status", 404, "reason", "cart item not found", "cart_item_id", id)
			return echo.NewHTTPError(http.StatusNotFound, "Cart item not found")
		}
		l.Error("get_cart_item_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get cart item")
	}

	return c.JSON(http.StatusOK, item)
}

func (h *CartHTTP) UpdateCartItems(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update_items")

	var req transport.CartItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_cart_items_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	rows, err := h.Svc.UpdateCartItems(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("update_cart_items_error", "status", 400, "reason", "missing fields", "error", err)
			return validationError(err)
		}
		l.Error("update_cart_items_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update cart items")
	}

	l.Info("cart items updated", "product_id", *req.ProductID, "rows", rows)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Cart item updated successfully"})
}

func (h *CartHTTP) DeleteCartItems(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.delete_items")

	productID, err := parseID(c, "product_id")
	if err != nil {
		l.Warn("delete_cart_items_error", "status", 400, "reason", "id is not integer", "error", err)
		return errInvalidID
	}

	rows, err := h.Svc.DeleteCartItems(ctx, productID)
	if err != nil {
		l.Error("delete_cart_items_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete cart items")
	}

	l.Info("cart items deleted", "product_id", productID, "rows", rows)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Cart item deleted successfully"})
}
