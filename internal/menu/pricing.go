package menu

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zaiqaeats/storefront/pkg/db/models"
)

// priceToken matches the first displayed amount inside a price label,
// e.g. "Medium: Rs. 1,200.50" -> "1,200.50".
var priceToken = regexp.MustCompile(`[\d,]+(\.\d+)?`)

// ResolvePrice derives the line price for an item and an optional selected
// size label. Items without size variants price at their listed amount. With
// variants, the selected label is matched case-insensitively as a substring of
// each displayed price label and the first numeric token is read out of the
// matching one. A selection that matches no label resolves to zero with
// ok=false; callers decide how loudly to surface that.
func ResolvePrice(item *models.MenuItem, sizeLabel string) (decimal.Decimal, bool) {
	if item == nil {
		return decimal.Zero, false
	}
	if !item.HasSizes() || sizeLabel == "" {
		return item.Price, true
	}

	needle := strings.ToLower(strings.TrimSpace(sizeLabel))
	for _, option := range item.Sizes {
		text := strings.TrimSpace(option.PriceText)
		if text == "" {
			continue
		}
		if !strings.Contains(strings.ToLower(text), needle) {
			continue
		}
		if raw := priceToken.FindString(text); raw != "" {
			amount, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
			if err == nil {
				return amount, true
			}
		}
	}
	return decimal.Zero, false
}

// SizeOptionFor finds the size variant whose machine value matches the
// selection, case-insensitively.
func SizeOptionFor(item *models.MenuItem, sizeValue string) (label string, found bool) {
	if item == nil || sizeValue == "" {
		return "", false
	}
	for _, option := range item.Sizes {
		if strings.EqualFold(option.Value, sizeValue) {
			return option.Label, true
		}
	}
	return "", false
}
