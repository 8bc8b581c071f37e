package engine

import "time"

// tradeLog is the columnar (structure-of-arrays) append-only buffer
// backing both the durable all-trades log and the ephemeral
// per-sweep staging buffer that feeds it. Capacity grows by fixed
// increments rather than Go's built-in geometric slice growth, so the
// increment can be tuned to the band's average trade count the way
// the reference implementation's dictionary-of-arrays sizing was.
type tradeLog struct {
	price     []float64
	vol       []int64
	aggUID    []int64
	pasUID    []int64
	buyInit   []bool
	timestamp []time.Time
	inc       int
}

func newTradeLog(initSize, inc int) *tradeLog {
	return &tradeLog{
		price:     make([]float64, initSize),
		vol:       make([]int64, initSize),
		aggUID:    make([]int64, initSize),
		pasUID:    make([]int64, initSize),
		buyInit:   make([]bool, initSize),
		timestamp: make([]time.Time, initSize),
		inc:       inc,
	}
}

func (t *tradeLog) grow(to int) {
	if to <= len(t.price) {
		return
	}
	add := t.inc
	for len(t.price)+add < to {
		add += t.inc
	}
	t.price = append(t.price, make([]float64, add)...)
	t.vol = append(t.vol, make([]int64, add)...)
	t.aggUID = append(t.aggUID, make([]int64, add)...)
	t.pasUID = append(t.pasUID, make([]int64, add)...)
	t.buyInit = append(t.buyInit, make([]bool, add)...)
	t.timestamp = append(t.timestamp, make([]time.Time, add)...)
}

func (t *tradeLog) set(i int, price float64, vol, aggUID, pasUID int64, buyInit bool, ts time.Time) {
	t.grow(i + 1)
	t.price[i] = price
	t.vol[i] = vol
	t.aggUID[i] = aggUID
	t.pasUID[i] = pasUID
	t.buyInit[i] = buyInit
	t.timestamp[i] = ts
}

// appendFrom bulk-copies the first n rows of src starting at cursor,
// growing capacity as needed, and returns the new cursor.
func (t *tradeLog) appendFrom(cursor int, src *tradeLog, n int) int {
	if n == 0 {
		return cursor
	}
	t.grow(cursor + n)
	copy(t.price[cursor:cursor+n], src.price[:n])
	copy(t.vol[cursor:cursor+n], src.vol[:n])
	copy(t.aggUID[cursor:cursor+n], src.aggUID[:n])
	copy(t.pasUID[cursor:cursor+n], src.pasUID[:n])
	copy(t.buyInit[cursor:cursor+n], src.buyInit[:n])
	copy(t.timestamp[cursor:cursor+n], src.timestamp[:n])
	return cursor + n
}

// myTradeLog is tradeLog's participant-only counterpart: no
// aggressor/passive/side columns, since every row is, by
// construction, one of the participant's own fills.
type myTradeLog struct {
	price     []float64
	vol       []int64
	uid       []int64
	timestamp []time.Time
	inc       int
}

func newMyTradeLog(initSize, inc int) *myTradeLog {
	return &myTradeLog{
		price:     make([]float64, initSize),
		vol:       make([]int64, initSize),
		uid:       make([]int64, initSize),
		timestamp: make([]time.Time, initSize),
		inc:       inc,
	}
}

func (t *myTradeLog) grow(to int) {
	if to <= len(t.price) {
		return
	}
	add := t.inc
	for len(t.price)+add < to {
		add += t.inc
	}
	t.price = append(t.price, make([]float64, add)...)
	t.vol = append(t.vol, make([]int64, add)...)
	t.uid = append(t.uid, make([]int64, add)...)
	t.timestamp = append(t.timestamp, make([]time.Time, add)...)
}

func (t *myTradeLog) set(i int, price float64, vol, uid int64, ts time.Time) {
	t.grow(i + 1)
	t.price[i] = price
	t.vol[i] = vol
	t.uid[i] = uid
	t.timestamp[i] = ts
}

func (t *myTradeLog) appendFrom(cursor int, src *myTradeLog, n int) int {
	if n == 0 {
		return cursor
	}
	t.grow(cursor + n)
	copy(t.price[cursor:cursor+n], src.price[:n])
	copy(t.vol[cursor:cursor+n], src.vol[:n])
	copy(t.uid[cursor:cursor+n], src.uid[:n])
	copy(t.timestamp[cursor:cursor+n], src.timestamp[:n])
	return cursor + n
}
