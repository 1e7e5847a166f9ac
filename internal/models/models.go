package models

// Product maps the product table by column name; JSON order follows the
// listing contract (id, name, description, price, image, color).
type Product struct {
	ID          int     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"column:name"                        json:"name"`
	Description string  `gorm:"column:description"                 json:"description"`
	Price       float64 `gorm:"column:price"                       json:"price"`
	Image       string  `gorm:"column:image"                       json:"image"`
	Color       string  `gorm:"column:color"                       json:"color"`
}

func (Product) TableName() string {
	return "product"
}

// CartItem rows are not unique per product; several rows may share ProductID.
type CartItem struct {
	ID        int `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Count     int `gorm:"column:count"                       json:"count"`
	ProductID int `gorm:"column:product_id;index"            json:"product_id"`
}

func (CartItem) TableName() string {
	return "cart_item"
}
