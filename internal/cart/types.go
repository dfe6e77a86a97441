package cart

import "github.com/shopspring/decimal"

// Line is one entry in a session's cart. Name carries the full display name,
// size included, e.g. "Chicken Tikka Pizza (Medium)"; lines are deduplicated
// on it. UnitPrice is fixed when the line is first added and never refreshed
// by later adds of the same item.
type Line struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Size      *string         `json:"size,omitempty"`
	Image     string          `json:"image,omitempty"`
}

// Total is the line's quantity-extended price.
func (l Line) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Snapshot is the cart as presented to callers.
type Snapshot struct {
	Lines     []Line          `json:"lines"`
	ItemCount int             `json:"item_count"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

func snapshotOf(lines []Line) Snapshot {
	snap := Snapshot{Lines: lines, Subtotal: decimal.Zero}
	if snap.Lines == nil {
		snap.Lines = []Line{}
	}
	for _, line := range lines {
		snap.ItemCount += line.Quantity
		snap.Subtotal = snap.Subtotal.Add(line.Total())
	}
	snap.Subtotal = snap.Subtotal.Round(2)
	return snap
}
