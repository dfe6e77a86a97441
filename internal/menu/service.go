package menu

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zaiqaeats/storefront/pkg/db/models"
	"github.com/zaiqaeats/storefront/pkg/enums"
	"github.com/zaiqaeats/storefront/pkg/errors"
)

// Service exposes the menu catalog to the HTTP layer and to the cart.
type Service struct {
	repo MenuRepository
}

func NewService(repo MenuRepository) *Service {
	return &Service{repo: repo}
}

// List returns active menu items, optionally filtered by category. An empty
// category string means the whole menu.
func (s *Service) List(ctx context.Context, category string) ([]models.MenuItem, error) {
	var filter *enums.MenuCategory
	if category != "" {
		parsed, err := enums.ParseMenuCategory(category)
		if err != nil {
			return nil, errors.New(errors.CodeValidation, "unknown menu category").
				WithDetails(map[string]string{"category": category})
		}
		filter = &parsed
	}

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "listing menu items")
	}
	return items, nil
}

// GetByID loads a single active menu item.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.MenuItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New(errors.CodeNotFound, "menu item not found")
		}
		return nil, errors.Wrap(errors.CodeInternal, err, "loading menu item")
	}
	return item, nil
}
