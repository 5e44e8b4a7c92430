package app

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/guttosm/finance-gateway/internal/calendar"
	"github.com/guttosm/finance-gateway/internal/logger"
)

// warmupTimeout bounds one scheduled refresh.
const warmupTimeout = 30 * time.Second

// Warmer refreshes a cache when it is stale. *tickers.Directory satisfies it.
type Warmer interface {
	Warm(ctx context.Context) error
}

// warmupScheduler is an indirection for unit testing; defaults to scheduleWarmup.
var warmupScheduler = scheduleWarmup

// tradingDay gates scheduled ticks; the listing does not change while B3 is closed.
var tradingDay = func() bool { return calendar.IsTradingDay(time.Now().In(saoPaulo)) }

// saoPaulo is B3's timezone; falls back to a fixed UTC-3 zone when tzdata is missing.
var saoPaulo = loadSaoPaulo()

func loadSaoPaulo() *time.Location {
	if loc, err := time.LoadLocation("America/Sao_Paulo"); err == nil {
		return loc
	}
	return time.FixedZone("BRT", -3*60*60)
}

// scheduleWarmup runs w once right away and then on every tick of spec.
//
// Behavior:
//   - An empty or "off" spec disables the job and returns a no-op stop.
//   - An invalid spec is returned as an error before anything runs.
//   - Scheduled ticks are skipped on days B3 does not trade; the start-up
//     run always happens.
//   - The returned stop func waits for the start-up run and any running
//     scheduled job to finish.
func scheduleWarmup(spec string, w Warmer) (func(), error) {
	spec = strings.TrimSpace(spec)
	if spec == "" || strings.EqualFold(spec, "off") {
		logger.L().Info().Msg("ticker warm-up disabled")
		return func() {}, nil
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc(spec, func() { scheduledWarm(w) }); err != nil {
		return nil, err
	}
	c.Start()

	var initial sync.WaitGroup
	initial.Add(1)
	go func() {
		defer initial.Done()
		warm(w)
	}()

	logger.L().Info().Str("spec", spec).Msg("ticker warm-up scheduled")
	return func() {
		<-c.Stop().Done()
		initial.Wait()
	}, nil
}

func scheduledWarm(w Warmer) {
	if !tradingDay() {
		logger.L().Debug().Msg("market closed, skipping ticker warm-up")
		return
	}
	warm(w)
}

func warm(w Warmer) {
	ctx, cancel := context.WithTimeout(context.Background(), warmupTimeout)
	defer cancel()

	if err := w.Warm(ctx); err != nil {
		logger.L().Warn().Err(err).Msg("ticker warm-up failed")
	}
}
