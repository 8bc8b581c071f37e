// Command replay drives a single OrderBook through a small synthetic
// sequence of historical and participant orders, logging each order
// sent with the evolving market-impact accumulator, then a snapshot of
// the final book. It talks to the
// engine in-process — there is no wire protocol here, unlike the
// strategy-facing gateway this exercise leaves out of scope.
package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/tomb.v2"

	"lobcore/internal/engine"
)

type historicalOrder struct {
	isBuy bool
	qty   int64
	price float64
	uid   int64
}

// syntheticTape is a toy replay of historical orders around a single
// price. runReplay sends one participant order after it so the
// market-impact accumulator has something to react to.
var syntheticTape = []historicalOrder{
	{isBuy: false, qty: 200, price: 10.00, uid: 1},
	{isBuy: false, qty: 150, price: 10.01, uid: 2},
	{isBuy: true, qty: 100, price: 9.99, uid: 3},
	{isBuy: false, qty: 300, price: 10.02, uid: 4},
	{isBuy: true, qty: 120, price: 9.98, uid: 5},
}

func main() {
	runID := uuid.New()
	logger := log.With().Str("run_id", runID.String()).Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var t tomb.Tomb
	t.Go(func() error {
		return runReplay(&t, logger)
	})

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	select {
	case <-t.Dying():
	case <-sig:
		logger.Warn().Msg("shutdown signal received, stopping replay")
		t.Kill(nil)
	}

	if err := t.Wait(); err != nil {
		logger.Error().Err(err).Msg("replay exited with error")
		os.Exit(1)
	}
	logger.Info().Msg("replay complete")
}

func runReplay(t *tomb.Tomb, logger zerolog.Logger) error {
	eng := engine.NewEngine("AAPL")
	ob, _ := eng.Book("AAPL")

	base := time.Now()
	for i, o := range syntheticTape {
		select {
		case <-t.Dying():
			return nil
		default:
		}

		ts := base.Add(time.Duration(i) * time.Millisecond)
		if err := ob.Send(o.isBuy, o.qty, o.price, o.uid, false, ts); err != nil {
			logger.Error().Err(err).Int64("uid", o.uid).Msg("historical send rejected")
			continue
		}
		logger.Info().
			Int64("uid", o.uid).
			Bool("is_buy", o.isBuy).
			Int64("qty", o.qty).
			Float64("price", o.price).
			Float64("market_impact", ob.MarketImpact()).
			Msg("historical order sent")
	}

	participantUID := int64(-1)
	if err := ob.Send(true, 80, 10.00, participantUID, true, base.Add(10*time.Millisecond)); err != nil {
		logger.Error().Err(err).Msg("participant send rejected")
	} else {
		logger.Info().
			Int64("uid", participantUID).
			Float64("market_impact", ob.MarketImpact()).
			Float64("my_pov", ob.MyPOV()).
			Msg("participant order sent")
	}

	logger.Info().Str("snapshot", ob.String()).Msg("final book state")
	return nil
}
