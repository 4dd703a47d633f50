package checkout

import (
	"testing"

	db "github.com/artisora/artisan-BE/internal/db/sqlc"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func line(seller string, productID int64, price, qty int64) db.CheckoutLine {
	return db.CheckoutLine{
		CartItemID: uuid.New(),
		ProductID:  productID,
		SellerID:   seller,
		UnitPrice:  price,
		Quantity:   qty,
	}
}

func TestPartitionBySellerOrderAndSubtotals(t *testing.T) {
	lines := []db.CheckoutLine{
		line("seller-a", 1, 100, 2),
		line("seller-b", 2, 50, 1),
		line("seller-a", 3, 25, 4),
	}

	groups := PartitionBySeller(lines)

	require.Len(t, groups, 2)

	// First-appearance order is preserved.
	require.Equal(t, "seller-a", groups[0].SellerID)
	require.Equal(t, "seller-b", groups[1].SellerID)

	require.Len(t, groups[0].Lines, 2)
	require.Len(t, groups[1].Lines, 1)

	require.Equal(t, int64(300), groups[0].Subtotal) // 2*100 + 4*25
	require.Equal(t, int64(50), groups[1].Subtotal)
}

func TestPartitionBySellerIsExhaustive(t *testing.T) {
	lines := []db.CheckoutLine{
		line("a", 1, 10, 1),
		line("b", 2, 10, 1),
		line("c", 3, 10, 1),
		line("b", 4, 10, 1),
		line("a", 5, 10, 1),
	}

	groups := PartitionBySeller(lines)

	seen := map[uuid.UUID]bool{}
	total := 0
	for _, group := range groups {
		for _, l := range group.Lines {
			require.Equal(t, group.SellerID, l.SellerID)
			require.False(t, seen[l.CartItemID], "line assigned to two groups")
			seen[l.CartItemID] = true
			total++
		}
	}
	require.Equal(t, len(lines), total)
}

func TestPartitionBySellerEmpty(t *testing.T) {
	require.Empty(t, PartitionBySeller(nil))
}
