package checkout

import (
	db "github.com/artisora/artisan-BE/internal/db/sqlc"
	"github.com/shopspring/decimal"
)

// SellerGroup is the slice of a cart belonging to one seller.
type SellerGroup struct {
	SellerID string
	Lines    []db.CheckoutLine
	Subtotal int64
}

// PartitionBySeller splits cart lines into one group per seller. Groups are
// ordered by each seller's first appearance and together cover every input
// line exactly once.
func PartitionBySeller(lines []db.CheckoutLine) []SellerGroup {
	groups := make([]SellerGroup, 0)
	indexBySeller := make(map[string]int)

	for _, line := range lines {
		i, ok := indexBySeller[line.SellerID]
		if !ok {
			i = len(groups)
			indexBySeller[line.SellerID] = i
			groups = append(groups, SellerGroup{SellerID: line.SellerID})
		}
		groups[i].Lines = append(groups[i].Lines, line)
	}

	for i := range groups {
		groups[i].Subtotal = subtotal(groups[i].Lines)
	}

	return groups
}

func subtotal(lines []db.CheckoutLine) int64 {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(decimal.NewFromInt(line.UnitPrice).Mul(decimal.NewFromInt(line.Quantity)))
	}
	return sum.IntPart()
}
