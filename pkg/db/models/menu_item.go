package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zaiqaeats/storefront/pkg/enums"
	"github.com/zaiqaeats/storefront/pkg/types"
)

// MenuItem is one purchasable entry on the storefront menu. Items with size
// variants carry the displayed size/price labels; the line price is read from
// those labels, not from Price.
type MenuItem struct {
	ID          uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string             `gorm:"column:name;not null" json:"name"`
	Category    enums.MenuCategory `gorm:"column:category;not null" json:"category"`
	Description *string            `gorm:"column:description" json:"description,omitempty"`
	Price       decimal.Decimal    `gorm:"column:price;type:numeric(10,2);not null" json:"price"`
	ImageURL    string             `gorm:"column:image_url;not null;default:''" json:"image_url"`
	Sizes       types.SizeOptions  `gorm:"column:sizes;type:jsonb" json:"sizes,omitempty"`
	IsActive    bool               `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt   time.Time          `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time          `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName pins the table used by GORM.
func (MenuItem) TableName() string {
	return "menu_items"
}

// HasSizes reports whether the item is sold in size variants.
func (m MenuItem) HasSizes() bool {
	return len(m.Sizes) > 0
}
