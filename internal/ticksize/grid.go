package ticksize

import (
	"math"

	"lobcore/internal/common"
)

// Shift moves price by n ticks along the band's grid, returning the
// resulting price.
//
// This ports marketsimulator/orderbook.py's get_new_price verbatim,
// including the array-index arithmetic used to step back into the
// grid from the extrapolated region above it (which relies on
// Python's negative-index wraparound and can land one tick higher
// than the naive expectation — kept as-is, since it is the reference
// implementation's actual behavior and not one of the flagged bugs).
// The one deliberate deviation is at the bottom of the grid: undershoot
// past the first price clamps there only when price already equals
// Prices[0], and is ErrInvalidPrice otherwise, per spec.md's resolution
// of that case rather than the original's index wraparound.
func (b *Band) Shift(price float64, n int) (float64, error) {
	last := b.Prices[len(b.Prices)-1]

	if idx, ok := b.idxs[price]; ok {
		target := idx + n
		if target >= 0 && target < len(b.Prices) {
			return b.Prices[target], nil
		}
		if n >= 0 {
			return price + float64(n)*b.MaxTick, nil
		}
		if price == b.Prices[0] {
			return b.Prices[0], nil
		}
		return 0, common.ErrInvalidPrice
	}

	if n >= 0 {
		return price + float64(n)*b.MaxTick, nil
	}

	if price > last {
		nAbove := (price - last) / b.MaxTick
		if math.Abs(float64(n)) > nAbove {
			idx := len(b.Prices) + n + int(nAbove+0.5)
			if idx >= 0 && idx < len(b.Prices) {
				return b.Prices[idx], nil
			}
			return 0, common.ErrInvalidPrice
		}
		return price + float64(n)*b.MaxTick, nil
	}

	if price == b.Prices[0] {
		return b.Prices[0], nil
	}
	return 0, common.ErrInvalidPrice
}
