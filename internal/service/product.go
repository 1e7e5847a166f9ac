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

type ProductService struct {
	Repo   *repo.GormRepo
	Events events.Publisher
}

func productFromRequest(req transport.ProductRequest) (models.Product, error) {
	if err := requireFields(req.Missing()); err != nil {
		return models.Product{}, err
	}
	return models.Product{
		Name:        *req.Name,
		Description: *req.Description,
		Color:       *req.Color,
		Price:       *req.Price,
		Image:       *req.Image,
	}, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, req transport.ProductRequest) (*models.Product, error) {
	prod, err := productFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.CreateProduct(ctx, &prod); err != nil {
		return nil, err
	}

	publish(ctx, s.Events, events.ProductTopic, prod.ID, map[string]any{
		"type":      "product_created",
		"productID": prod.ID,
		"name":      prod.Name,
	})
	return &prod, nil
}

func (s *ProductService) GetProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.GetProducts(ctx)
}

func (s *ProductService) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	prod, err := s.Repo.GetProduct(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return prod, err
}

func (s *ProductService) UpdateProduct(ctx context.Context, id int, req transport.ProductRequest) (int64, error) {
	prod, err := productFromRequest(req)
	if err != nil {
		return 0, err
	}
	rows, err := s.Repo.UpdateProduct(ctx, id, prod)
	if err != nil {
		return 0, err
	}

	publish(ctx, s.Events, events.ProductTopic, id, map[string]any{
		"type":      "product_updated",
		"productID": id,
		"name":      prod.Name,
		"rows":      rows,
	})
	return rows, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int) (int64, error) {
	rows, err := s.Repo.DeleteProduct(ctx, id)
	if err != nil {
		return 0, err
	}

	publish(ctx, s.Events, events.ProductTopic, id, map[string]any{
		"type":      "product_deleted",
		"productID": id,
		"rows":      rows,
	})
	return rows, nil
}
