package cart

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zaiqaeats/storefront/internal/menu"
	"github.com/zaiqaeats/storefront/pkg/db/models"
	pkgerrors "github.com/zaiqaeats/storefront/pkg/errors"
	"github.com/zaiqaeats/storefront/pkg/logger"
	"github.com/zaiqaeats/storefront/pkg/metrics"
)

type menuLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.MenuItem, error)
}

// Service exposes per-session cart operations.
type Service interface {
	Get(ctx context.Context, sessionID string) (Snapshot, error)
	AddItem(ctx context.Context, sessionID string, itemID uuid.UUID, sizeValue string) (Snapshot, error)
	AdjustQuantity(ctx context.Context, sessionID string, index, delta int) (Snapshot, error)
	RemoveLine(ctx context.Context, sessionID string, index int) (Snapshot, error)
	Clear(ctx context.Context, sessionID string) error
}

type service struct {
	storage Storage
	menu    menuLoader
	logg    *logger.Logger
	metrics *metrics.StorefrontMetrics
}

// NewService builds a cart service backed by the provided stack.
func NewService(storage Storage, menuRepo menuLoader, logg *logger.Logger, m *metrics.StorefrontMetrics) (Service, error) {
	if storage == nil {
		return nil, fmt.Errorf("cart storage required")
	}
	if menuRepo == nil {
		return nil, fmt.Errorf("menu loader required")
	}
	return &service{storage: storage, menu: menuRepo, logg: logg, metrics: m}, nil
}

// Get returns the session's cart snapshot.
func (s *service) Get(ctx context.Context, sessionID string) (Snapshot, error) {
	lines, err := s.storage.Load(ctx, sessionID)
	if err != nil {
		return Snapshot{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart")
	}
	return snapshotOf(lines), nil
}

// AddItem places one unit of a menu item in the cart. Re-adding the same item
// and size bumps the existing line's quantity; the line keeps the unit price
// it was first added with.
func (s *service) AddItem(ctx context.Context, sessionID string, itemID uuid.UUID, sizeValue string) (Snapshot, error) {
	item, err := s.menu.FindByID(ctx, itemID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return Snapshot{}, pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found")
		}
		return Snapshot{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading menu item")
	}

	var sizeLabel *string
	if item.HasSizes() {
		if sizeValue == "" {
			return Snapshot{}, pkgerrors.New(pkgerrors.CodeValidation, "size selection is required for this item")
		}
		label, found := menu.SizeOptionFor(item, sizeValue)
		if !found {
			return Snapshot{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown size for this item").
				WithDetails(map[string]string{"size": sizeValue})
		}
		sizeLabel = &label
	}

	displayName := item.Name
	label := ""
	if sizeLabel != nil {
		label = *sizeLabel
		displayName = fmt.Sprintf("%s (%s)", item.Name, label)
	}

	price, ok := menu.ResolvePrice(item, label)
	if !ok {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "item", displayName), "price label did not resolve; pricing line at zero")
		}
		s.metrics.IncPriceMiss()
	}

	lines, err := s.storage.Load(ctx, sessionID)
	if err != nil {
		return Snapshot{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart")
	}

	found := false
	for i := range lines {
		if lines[i].Name == displayName {
			lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, Line{
			Name:      displayName,
			UnitPrice: price,
			Quantity:  1,
			Size:      sizeLabel,
			Image:     item.ImageURL,
		})
	}

	if err := s.storage.Save(ctx, sessionID, lines); err != nil {
		return Snapshot{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving cart")
	}
	return snapshotOf(lines), nil
}

// AdjustQuantity shifts a line's quantity by delta. A quantity driven to zero
// or below removes the line. An out-of-range index leaves the cart unchanged.
func (s *service) AdjustQuantity(ctx context.Context, sessionID string, index, delta int) (Snapshot, error) {
	lines, err := s.storage.Load(ctx, sessionID)
	if err != nil {
		return Snapshot{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart")
	}
	if index < 0 || index >= len(lines) {
		return snapshotOf(lines), nil
	}

	lines[index].Quantity += delta
	if lines[index].Quantity <= 0 {
		lines = append(lines[:index], lines[index+1:]...)
	}

	if err := s.storage.Save(ctx, sessionID, lines); err != nil {
		return Snapshot{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving cart")
	}
	return snapshotOf(lines), nil
}

// RemoveLine drops a line outright regardless of quantity.
func (s *service) RemoveLine(ctx context.Context, sessionID string, index int) (Snapshot, error) {
	lines, err := s.storage.Load(ctx, sessionID)
	if err != nil {
		return Snapshot{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart")
	}
	if index < 0 || index >= len(lines) {
		return snapshotOf(lines), nil
	}

	lines = append(lines[:index], lines[index+1:]...)
	if err := s.storage.Save(ctx, sessionID, lines); err != nil {
		return Snapshot{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving cart")
	}
	return snapshotOf(lines), nil
}

// Clear empties the session's cart.
func (s *service) Clear(ctx context.Context, sessionID string) error {
	if err := s.storage.Clear(ctx, sessionID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clearing cart")
	}
	return nil
}
