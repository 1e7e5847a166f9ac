package repo

import (
	"context"

	"github.com/Skotchmaster/golden_sneaker/internal/models"
)

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) error {
	return r.DB.WithContext(ctx).Create(prod).Error
}

func (r *GormRepo) GetProducts(ctx context.Context) ([]models.Product, error) {
	items := make([]models.Product, 0)
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct overwrites every column; a missing id updates nothing and inserts nothing.
func (r *GormRepo) UpdateProduct(ctx context.Context, id int, prod models.Product) (int64, error) {
	res := r.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":        prod.Name,
			"description": prod.Description,
			"color":       prod.Color,
			"price":       prod.Price,
			"image":       prod.Image,
		})
	return res.RowsAffected, res.Error
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id int) (int64, error) {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{})
	return res.RowsAffected, res.Error
}
