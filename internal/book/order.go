// Package book implements the two-sided price-level book: an Order's
// intrusive doubly-linked position inside a PriceLevel, and the
// ordered-map HalfBook (Bids/Asks) that owns a side's price levels and
// tracks the current best.
package book

import "time"

// Order is a single resting or in-flight order. UID's sign is the sole
// in-band ownership marker: negative identifies the participant's own
// order, non-negative a replayed historical order.
type Order struct {
	UID       int64
	IsBuy     bool
	Qty       int64
	LeavesQty int64
	Price     float64
	Timestamp time.Time
	Active    bool

	// Prev, Next link this order into its PriceLevel's FIFO queue.
	Prev, Next *Order

	cumQtyFrozen bool
	frozenCumQty int64
}

// New creates an in-flight Order. It is not yet active; the caller
// (OrderBook) marks it active once it actually rests in a HalfBook.
func New(uid int64, isBuy bool, qty int64, price float64, timestamp time.Time) *Order {
	return &Order{
		UID:       uid,
		IsBuy:     isBuy,
		Qty:       qty,
		LeavesQty: qty,
		Price:     price,
		Timestamp: timestamp,
	}
}

// CumQty returns qty - leavesqty while the order is live, or the
// cumulative quantity frozen at cancel time.
func (o *Order) CumQty() int64 {
	if o.cumQtyFrozen {
		return o.frozenCumQty
	}
	return o.Qty - o.LeavesQty
}

// Freeze captures the current cumulative quantity so it survives the
// leavesqty reset that cancellation performs.
func (o *Order) Freeze() {
	o.frozenCumQty = o.Qty - o.LeavesQty
	o.cumQtyFrozen = true
}
