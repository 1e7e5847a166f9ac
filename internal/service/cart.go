package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Skotchmaster/golden_sneaker/internal/events"
	"github.com/Skotchmaster/golden_sneaker/internal/models"
	"github.com/Skotchmaster/golden_sneaker/internal/repo"
	"github.com/Skotchmaster/golden_sneaker/internal/transport"
)

type CartService struct {
	Repo   *repo.GormRepo
	Events events.Publisher
}

func (s *CartService) CreateCartItem(ctx context.Context, req transport.CartItemRequest) (*models.CartItem, error) {
	if err := requireFields(req.Missing()); err != nil {
		return nil, err
	}

	item := models.CartItem{
		ProductID: *req.ProductID,
		Count:     *req.Count,
	}
	if err := s.Repo.CreateCartItem(ctx, &item); err != nil {
		return nil, err
	}

	publish(ctx, s.Events, events.CartTopic, item.ProductID, map[string]any{
		"type":       "cart_item_created",
		"cartItemID": item.ID,
		"productID":  item.ProductID,
		"count":      item.Count,
	})
	return &item, nil
}

func (s *CartService) GetCartItems(ctx context.Context) ([]models.CartItem, error) {
	return s.Repo.GetCartItems(ctx)
}

func (s *CartService) GetCartItem(ctx context.Context, id int) (*models.CartItem, error) {
	item, err := s.Repo.GetCartItem(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("cart item %d: %w", id, ErrNotFound)
	}
	return item, err
}

// UpdateCartItems is keyed by product, so every row for that product gets the new count.
func (s *CartService) UpdateCartItems(ctx context.Context, req transport.CartItemRequest) (int64, error) {
	if err := requireFields(req.Missing()); err != nil {
		return 0, err
	}

	rows, err := s.Repo.UpdateCartItems(ctx, *req.ProductID, *req.Count)
	if err != nil {
		return 0, err
	}

	publish(ctx, s.Events, events.CartTopic, *req.ProductID, map[string]any{
		"type":      "cart_items_updated",
		"productID": *req.ProductID,
		"count":     *req.Count,
		"rows":      rows,
	})
	return rows, nil
}

func (s *CartService) DeleteCartItems(ctx context.Context, productID int) (int64, error) {
	rows, err := s.Repo.DeleteCartItems(ctx, productID)
	if err != nil {
		return 0, err
	}

	publish(ctx, s.Events, events.CartTopic, productID, map[string]any{
		"type":      "cart_items_deleted",
		"productID": productID,
		"rows":      rows,
	})
	return rows, nil
}
