package menu

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/zaiqaeats/storefront/pkg/db/models"
	"github.com/zaiqaeats/storefront/pkg/enums"
	"github.com/zaiqaeats/storefront/pkg/types"
)

func setupMenuTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	menuItems := `
CREATE TABLE IF NOT EXISTS menu_items (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  category TEXT NOT NULL,
  description TEXT,
  price NUMERIC NOT NULL DEFAULT 0,
  image_url TEXT NOT NULL DEFAULT '',
  sizes TEXT,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(menuItems).Error)
	return db
}

func newMenuItem(t *testing.T, db *gorm.DB, name string, category enums.MenuCategory, active bool) *models.MenuItem {
	t.Helper()

	item := &models.MenuItem{
		ID:       uuid.New(),
		Name:     name,
		Category: category,
		Price:    decimal.NewFromInt(450),
		IsActive: true,
	}
	require.NoError(t, db.Create(item).Error)
	if !active {
		// The model's default:true tag makes gorm skip a zero-valued
		// IsActive on insert, so flip the flag with an explicit update.
		require.NoError(t, db.Model(item).Update("is_active", false).Error)
	}
	return item
}

func TestRepositoryListFiltersInactive(t *testing.T) {
	db := setupMenuTestDB(t)
	repo := NewRepository(db)

	newMenuItem(t, db, "Zinger Burger", enums.MenuCategoryBurgers, true)
	newMenuItem(t, db, "Retired Burger", enums.MenuCategoryBurgers, false)

	items, err := repo.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Zinger Burger", items[0].Name)
}

func TestRepositoryListByCategory(t *testing.T) {
	db := setupMenuTestDB(t)
	repo := NewRepository(db)

	newMenuItem(t, db, "Chicken Tikka Pizza", enums.MenuCategoryPizza, true)
	newMenuItem(t, db, "Zinger Burger", enums.MenuCategoryBurgers, true)

	category := enums.MenuCategoryPizza
	items, err := repo.List(context.Background(), &category)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, enums.MenuCategoryPizza, items[0].Category)
}

func TestRepositoryFindByID(t *testing.T) {
	db := setupMenuTestDB(t)
	repo := NewRepository(db)

	created := &models.MenuItem{
		ID:       uuid.New(),
		Name:     "Chicken Tikka Pizza",
		Category: enums.MenuCategoryPizza,
		Price:    decimal.Zero,
		Sizes: types.SizeOptions{
			{Value: "small", Label: "Small", PriceText: "Small: Rs. 800"},
			{Value: "medium", Label: "Medium", PriceText: "Medium: Rs. 1200"},
		},
		IsActive: true,
	}
	require.NoError(t, db.Create(created).Error)

	item, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, created.Name, item.Name)
	require.Len(t, item.Sizes, 2)
	assert.Equal(t, "Medium: Rs. 1200", item.Sizes[1].PriceText)
}

func TestRepositoryFindByIDInactive(t *testing.T) {
	db := setupMenuTestDB(t)
	repo := NewRepository(db)

	hidden := newMenuItem(t, db, "Retired Burger", enums.MenuCategoryBurgers, false)

	_, err := repo.FindByID(context.Background(), hidden.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryFindByIDMissing(t *testing.T) {
	db := setupMenuTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
