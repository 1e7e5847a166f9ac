package repo

import "gorm.io/gorm"

// GormRepo issues exactly one statement per method; callers get the rows
// affected back so zero-row writes stay visible without failing.
type GormRepo struct {
	DB *gorm.DB
}
