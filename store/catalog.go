// Package store is the read/write boundary for the product catalog. Soft
// deletion is a nullable timestamp on the product row; every read helper here
// injects the not-deleted predicate so callers can never bypass it by
// accident. Deleted rows stay in storage and are only reachable through
// Unfiltered.
package store

import (
	"time"

	"gorm.io/gorm"

	"github.com/MEETT007/Shoe-App-Backend/models"
)

// Products is the base query for active catalog records. All catalog reads
// start from it.
func Products(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Product{}).Where("deleted_at IS NULL")
}

// Unfiltered exposes the catalog including soft-deleted rows. Admin-side
// accounting only; never used on a customer-facing path.
func Unfiltered(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Product{})
}

// FindProductByID returns the active product with the given id.
// gorm.ErrRecordNotFound covers both a missing and a soft-deleted row.
func FindProductByID(db *gorm.DB, id uint) (*models.Product, error) {
	var product models.Product
	if err := Products(db).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindProductBySlug returns the active product with the given slug.
func FindProductBySlug(db *gorm.DB, slug string) (*models.Product, error) {
	var product models.Product
	if err := Products(db).Where("slug = ?", slug).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindProductsByIDs resolves a set of references to active products, keyed by
// id. References to missing or soft-deleted products are simply absent from
// the result; tolerant readers (cart, wishlist) drop those lines from their
// view without touching storage.
func FindProductsByIDs(db *gorm.DB, ids []uint) (map[uint]models.Product, error) {
	byID := make(map[uint]models.Product, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}
	var products []models.Product
	if err := Products(db).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID, nil
}

// SoftDeleteProduct marks the product deleted by setting the timestamp. The
// row is kept so order history and stale cart lines stay resolvable on the
// admin side.
func SoftDeleteProduct(db *gorm.DB, id uint) error {
	result := Products(db).Where("id = ?", id).Update("deleted_at", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
