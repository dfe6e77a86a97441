package menu

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zaiqaeats/storefront/pkg/db/models"
	"github.com/zaiqaeats/storefront/pkg/enums"
)

// MenuRepository defines read operations over the menu catalog.
type MenuRepository interface {
	List(ctx context.Context, category *enums.MenuCategory) ([]models.MenuItem, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.MenuItem, error)
}

// Repository is the GORM-backed menu catalog.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns active menu items, optionally filtered to one category.
func (r *Repository) List(ctx context.Context, category *enums.MenuCategory) ([]models.MenuItem, error) {
	query := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("category, name")
	if category != nil {
		query = query.Where("category = ?", *category)
	}

	var items []models.MenuItem
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID loads a single active menu item.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}
