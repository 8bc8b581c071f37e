package book

import "github.com/tidwall/btree"

// HalfBook is one side (Bids or Asks) of the order book: an ordered
// map from price to PriceLevel, plus the cached best level. Bids order
// their levels highest-price-first, Asks lowest-price-first, so Best
// is always the book's minimum element under the side's own
// comparator and can be recomputed in O(log n).
type HalfBook struct {
	IsBuy  bool
	Best   *PriceLevel
	levels *btree.BTreeG[*PriceLevel]
}

// NewHalfBook builds an empty half of the book for the given side.
func NewHalfBook(isBuy bool) *HalfBook {
	var less func(a, b *PriceLevel) bool
	if isBuy {
		less = func(a, b *PriceLevel) bool { return a.Price > b.Price }
	} else {
		less = func(a, b *PriceLevel) bool { return a.Price < b.Price }
	}
	return &HalfBook{IsBuy: isBuy, levels: btree.NewBTreeG(less)}
}

// Len returns the number of distinct price levels currently resting.
func (h *HalfBook) Len() int {
	return h.levels.Len()
}

// Get looks up the level at price, if any.
func (h *HalfBook) Get(price float64) (*PriceLevel, bool) {
	return h.levels.GetMut(&PriceLevel{Price: price})
}

// Add rests o at its price, creating the level if this is the first
// order there, and updates Best if o's price improves it.
func (h *HalfBook) Add(o *Order) {
	key := &PriceLevel{Price: o.Price}
	if lvl, ok := h.levels.GetMut(key); ok {
		lvl.Append(o)
	} else {
		lvl := NewPriceLevel(o)
		h.levels.Set(lvl)
		if h.Best == nil || h.isBetterThanBest(o.Price) {
			h.Best = lvl
		}
	}
	o.Active = true
}

func (h *HalfBook) isBetterThanBest(price float64) bool {
	if h.IsBuy {
		return price > h.Best.Price
	}
	return price < h.Best.Price
}

// RemovePrice drops the (expected to be empty) level at price and
// recomputes Best from what remains.
func (h *HalfBook) RemovePrice(price float64) {
	h.levels.Delete(&PriceLevel{Price: price})
	if lvl, ok := h.levels.MinMut(); ok {
		h.Best = lvl
	} else {
		h.Best = nil
	}
}
