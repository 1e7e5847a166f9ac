package repo

import (
	"context"

	"github.com/Skotchmaster/golden_sneaker/internal/models"
)

func (r *GormRepo) CreateCartItem(ctx context.Context, item *models.CartItem) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

func (r *GormRepo) GetCartItems(ctx context.Context) ([]models.CartItem, error) {
	items := make([]models.CartItem, 0)
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetCartItem(ctx context.Context, id int) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateCartItems sets count on every row sharing productID.
func (r *GormRepo) UpdateCartItems(ctx context.Context, productID, count int) (int64, error) {
	res := r.DB.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("product_id = ?", productID).
		Update("count", count)
	return res.RowsAffected, res.Error
}

// DeleteCartItems removes every row sharing productID.
func (r *GormRepo) DeleteCartItems(ctx context.Context, productID int) (int64, error) {
	res := r.DB.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.CartItem{})
	return res.RowsAffected, res.Error
}
