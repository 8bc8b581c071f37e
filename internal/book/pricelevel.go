package book

// PriceLevel is the FIFO queue of resting orders at a single price,
// linked intrusively through each Order's Prev/Next fields.
type PriceLevel struct {
	Price float64
	Head  *Order
	Tail  *Order
}

// NewPriceLevel creates a level whose sole member is o.
func NewPriceLevel(o *Order) *PriceLevel {
	return &PriceLevel{Price: o.Price, Head: o, Tail: o}
}

// Vol returns the level's total resting quantity: the sum of every
// member order's leavesqty. Walking the list on demand keeps this in
// lockstep with partial fills without a separately maintained counter
// to drift out of sync.
func (lvl *PriceLevel) Vol() int64 {
	var v int64
	for o := lvl.Head; o != nil; o = o.Next {
		v += o.LeavesQty
	}
	return v
}

// Append adds o to the tail of the queue, preserving time priority.
func (lvl *PriceLevel) Append(o *Order) {
	o.Prev = lvl.Tail
	if lvl.Tail != nil {
		lvl.Tail.Next = o
	} else {
		lvl.Head = o
	}
	lvl.Tail = o
}

// PopHead removes and returns the head order once it has been fully
// matched. The popped order is deactivated and unlinked on both ends.
func (lvl *PriceLevel) PopHead() *Order {
	head := lvl.Head
	head.Active = false
	if head.Next == nil {
		lvl.Head, lvl.Tail = nil, nil
	} else {
		head.Next.Prev = nil
		lvl.Head = head.Next
	}
	head.Next = nil
	return head
}

// Remove splices o out of the queue at an arbitrary position, as used
// by Cancel. It reports whether the level is now empty.
func (lvl *PriceLevel) Remove(o *Order) (empty bool) {
	switch {
	case o.Prev == nil && o.Next == nil:
		lvl.Head, lvl.Tail = nil, nil
		empty = true
	case o.Next == nil:
		lvl.Tail = o.Prev
		o.Prev.Next = nil
	case o.Prev == nil:
		lvl.Head = o.Next
		o.Next.Prev = nil
	default:
		o.Prev.Next = o.Next
		o.Next.Prev = o.Prev
	}
	o.Prev, o.Next = nil, nil
	return empty
}
