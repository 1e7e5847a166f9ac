package httpserver

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"github.com/Skotchmaster/golden_sneaker/internal/db"
	loggingmw "github.com/Skotchmaster/golden_sneaker/internal/middleware/logging"
)

type Deps struct {
	DB             *gorm.DB
	Logger         *slog.Logger
	ProductHandler *ProductHTTP
	CartHandler    *CartHTTP
}

// NewRouter builds a fully wired echo instance; nothing is kept in package state.
func NewRouter(d *Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
	}))

	Register(e, d)
	return e
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if d.DB == nil || db.Ping(ctx, d.DB) != nil {
			return c.NoContent(http.StatusServiceUnavailable)
		}
		return c.NoContent(http.StatusOK)
	})

	products := e.Group("/products")
	products.POST("", d.ProductHandler.CreateProduct)
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.PUT("/:id", d.ProductHandler.UpdateProduct)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct)

	e.GET("/cart", d.CartHandler.GetCart)

	cartItems := e.Group("/cart-items")
	cartItems.POST("", d.CartHandler.CreateCartItem)
	cartItems.PUT("", d.CartHandler.UpdateCartItems)
	cartItems.GET("/:id", d.CartHandler.GetCartItem)
	cartItems.DELETE("/:product_id", d.CartHandler.DeleteCartItems)
}
