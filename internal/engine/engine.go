package engine

// Engine is a registry of OrderBooks, one per ticker, each an
// independent, single-threaded matching core.
type Engine struct {
	books map[string]*OrderBook
}

// NewEngine builds an Engine with a fresh OrderBook per ticker, each
// using the package's default market-impact parameters.
func NewEngine(tickers ...string) *Engine {
	e := &Engine{books: make(map[string]*OrderBook, len(tickers))}
	for _, t := range tickers {
		e.books[t] = New(t, DefaultMaxImpact, DefaultResilience)
	}
	return e
}

// Book looks up a ticker's OrderBook.
func (e *Engine) Book(ticker string) (*OrderBook, bool) {
	b, ok := e.books[ticker]
	return b, ok
}
