package book

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkOrder(uid int64, isBuy bool, qty int64, price float64) *Order {
	return New(uid, isBuy, qty, price, time.Unix(0, int64(uid)*int64(time.Millisecond)))
}

func TestPriceLevel_AppendPreservesFIFO(t *testing.T) {
	a := mkOrder(1, true, 10, 100)
	lvl := NewPriceLevel(a)

	b := mkOrder(2, true, 5, 100)
	c := mkOrder(3, true, 7, 100)
	lvl.Append(b)
	lvl.Append(c)

	require.Equal(t, a, lvl.Head)
	require.Equal(t, c, lvl.Tail)
	assert.Equal(t, int64(22), lvl.Vol())

	assert.Same(t, b, a.Next)
	assert.Same(t, a, b.Prev)
	assert.Same(t, c, b.Next)
	assert.Same(t, b, c.Prev)
	assert.Nil(t, c.Next)
}

func TestPriceLevel_PopHeadAdvancesAndDeactivates(t *testing.T) {
	a := mkOrder(1, true, 10, 100)
	lvl := NewPriceLevel(a)
	b := mkOrder(2, true, 5, 100)
	lvl.Append(b)

	popped := lvl.PopHead()
	assert.Same(t, a, popped)
	assert.False(t, popped.Active)
	assert.Nil(t, popped.Next)
	assert.Nil(t, popped.Prev)
	assert.Same(t, b, lvl.Head)
	assert.Same(t, b, lvl.Tail)

	last := lvl.PopHead()
	assert.Same(t, b, last)
	assert.Nil(t, lvl.Head)
	assert.Nil(t, lvl.Tail)
}

func TestPriceLevel_RemoveMiddleSplicesCleanly(t *testing.T) {
	a := mkOrder(1, true, 10, 100)
	lvl := NewPriceLevel(a)
	b := mkOrder(2, true, 5, 100)
	c := mkOrder(3, true, 7, 100)
	lvl.Append(b)
	lvl.Append(c)

	empty := lvl.Remove(b)
	assert.False(t, empty)
	assert.Nil(t, b.Prev)
	assert.Nil(t, b.Next)
	assert.Same(t, c, a.Next)
	assert.Same(t, a, c.Prev)
	assert.Equal(t, int64(17), lvl.Vol())
}

func TestPriceLevel_RemoveSoleMemberEmptiesLevel(t *testing.T) {
	a := mkOrder(1, true, 10, 100)
	lvl := NewPriceLevel(a)

	empty := lvl.Remove(a)
	assert.True(t, empty)
	assert.Nil(t, lvl.Head)
	assert.Nil(t, lvl.Tail)
}

func TestPriceLevel_RemoveHeadAndTail(t *testing.T) {
	a := mkOrder(1, true, 10, 100)
	lvl := NewPriceLevel(a)
	b := mkOrder(2, true, 5, 100)
	lvl.Append(b)

	lvl.Remove(a)
	assert.Same(t, b, lvl.Head)
	assert.Nil(t, b.Prev)

	lvl.Remove(b)
	assert.Nil(t, lvl.Head)
	assert.Nil(t, lvl.Tail)
}

func TestHalfBook_BidsBestIsHighestPrice(t *testing.T) {
	bids := NewHalfBook(true)
	bids.Add(mkOrder(1, true, 10, 100))
	bids.Add(mkOrder(2, true, 10, 101))
	bids.Add(mkOrder(3, true, 10, 99))

	require.NotNil(t, bids.Best)
	assert.Equal(t, 101.0, bids.Best.Price)
	assert.Equal(t, 3, bids.Len())
}

func TestHalfBook_AsksBestIsLowestPrice(t *testing.T) {
	asks := NewHalfBook(false)
	asks.Add(mkOrder(1, false, 10, 100))
	asks.Add(mkOrder(2, false, 10, 99))
	asks.Add(mkOrder(3, false, 10, 101))

	require.NotNil(t, asks.Best)
	assert.Equal(t, 99.0, asks.Best.Price)
}

func TestHalfBook_AddToExistingLevelAppendsFIFO(t *testing.T) {
	bids := NewHalfBook(true)
	first := mkOrder(1, true, 10, 100)
	second := mkOrder(2, true, 5, 100)
	bids.Add(first)
	bids.Add(second)

	lvl, ok := bids.Get(100)
	require.True(t, ok)
	assert.Same(t, first, lvl.Head)
	assert.Same(t, second, lvl.Tail)
}

func TestHalfBook_RemovePriceRecomputesBest(t *testing.T) {
	bids := NewHalfBook(true)
	bids.Add(mkOrder(1, true, 10, 100))
	bids.Add(mkOrder(2, true, 10, 101))

	bids.RemovePrice(101)
	require.NotNil(t, bids.Best)
	assert.Equal(t, 100.0, bids.Best.Price)

	bids.RemovePrice(100)
	assert.Nil(t, bids.Best)
	assert.Equal(t, 0, bids.Len())
}
