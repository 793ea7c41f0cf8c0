package scene

import (
	"fmt"
	"strings"
)

// Currency denominations. Coin totals are carried in copper units.
const (
	CopperPerSilver = 100
	SilverPerGold   = 100
	CopperPerGold   = CopperPerSilver * SilverPerGold
)

const (
	goldMark   = "🟡"
	silverMark = "🔘"
	copperMark = "🟠"
)

// FormatCoins renders a copper total as "Ng Ns Nc" using the gold, silver
// and copper marks. Only nonzero tiers are shown, highest first; a zero
// total renders as zero of the smallest denomination.
func FormatCoins(totalCopper int) string {
	if totalCopper <= 0 {
		return "0" + copperMark
	}

	gold := totalCopper / CopperPerGold
	rem := totalCopper % CopperPerGold
	silver := rem / CopperPerSilver
	copper := rem % CopperPerSilver

	parts := make([]string, 0, 3)
	if gold > 0 {
		parts = append(parts, fmt.Sprintf("%d%s", gold, goldMark))
	}
	if silver > 0 {
		parts = append(parts, fmt.Sprintf("%d%s", silver, silverMark))
	}
	if copper > 0 || (gold == 0 && silver == 0) {
		parts = append(parts, fmt.Sprintf("%d%s", copper, copperMark))
	}
	return strings.Join(parts, " ")
}

// FormatCoinsPtr renders an optional coin total, treating absence as zero.
func FormatCoinsPtr(totalCopper *int) string {
	if totalCopper == nil {
		return FormatCoins(0)
	}
	return FormatCoins(*totalCopper)
}
