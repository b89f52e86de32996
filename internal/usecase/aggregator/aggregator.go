package aggregator

import (
	"context"
	"time"

	barDomain "github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/domain/bar"
	etlrunDomain "github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/domain/etlrun"
	tickDomain "github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/domain/tick"
	"github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/infrastructure/postgres/bar"
	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/config"
	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/errors"
	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/interval"
	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/logger"
)

// Usecase drives the periodic tick-to-bar aggregation cycle.
//
// Each cycle covers the half-open window [watermark, T) where T is the
// current bucket boundary minus the lateness bound. The watermark is the
// completed_at of the latest successful run, so a crashed or failed cycle
// is simply re-covered by the next one. Upserts are idempotent, which
// makes the re-cover safe.
type Usecase struct {
	tickUsecase   tickDomain.Usecase
	barUsecase    barDomain.Usecase
	etlRunUsecase etlrunDomain.Usecase
	interval      interval.Interval
	cfg           config.AggregatorConfig
	logger        logger.Interface

	// now is swappable for tests.
	now func() time.Time
}

// NewUsecase creates a new aggregator usecase.
func NewUsecase(
	tickUsecase tickDomain.Usecase,
	barUsecase barDomain.Usecase,
	etlRunUsecase etlrunDomain.Usecase,
	cfg config.AggregatorConfig,
	logger logger.Interface,
) (*Usecase, error) {
	iv, err := interval.GetInterval(cfg.Interval)
	if err != nil {
		return nil, errors.TracerFromError(err).WithCode(errors.GeneralBadRequestError)
	}

	return &Usecase{
		tickUsecase:   tickUsecase,
		barUsecase:    barUsecase,
		etlRunUsecase: etlRunUsecase,
		interval:      iv,
		cfg:           cfg,
		logger:        logger,
		now:           time.Now,
	}, nil
}

// Start runs aggregation cycles on the configured cadence until the
// context is cancelled. A failing cycle is logged and retried on the
// next tick.
func (u *Usecase) Start(ctx context.Context) error {
	ticker := time.NewTicker(u.cfg.Cadence)
	defer ticker.Stop()

	u.logger.InfoContext(ctx, "aggregator started",
		logger.NewField("source", u.cfg.Source),
		logger.NewField("interval", u.interval.Name),
		logger.NewField("cadence", u.cfg.Cadence.String()),
	)

	for {
		if err := u.RunCycle(ctx); err != nil {
			u.logger.ErrorContext(ctx, err, logger.NewField("source", u.cfg.Source))
		}

		select {
		case <-ctx.Done():
			u.logger.InfoContext(ctx, "aggregator stopping")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// RunCycle performs a single aggregation pass. It is a no-op when there
// is nothing to aggregate yet.
func (u *Usecase) RunCycle(ctx context.Context) error {
	now := u.now().UTC()

	watermark, err := u.resolveWatermark(ctx, now)
	if err != nil {
		return err
	}
	if watermark == nil {
		u.logger.DebugContext(ctx, "no ticks yet, skipping cycle")
		return nil
	}

	// Buckets still inside the lateness bound are left open for late
	// arrivals; only buckets strictly behind T are finalized.
	windowEnd := u.interval.CalculateBucketTime(now.Add(-u.cfg.LatenessBound))
	if !watermark.Before(windowEnd) {
		u.logger.DebugContext(ctx, "watermark caught up, skipping cycle",
			logger.NewField("watermark", watermark.Format(time.RFC3339)),
		)
		return nil
	}

	run, err := u.etlRunUsecase.Begin(ctx, u.cfg.Source)
	if err != nil {
		return errors.TracerFromError(err).WithCode(errors.ErrAggregationCycle)
	}

	processed, err := u.aggregateWindow(ctx, *watermark, windowEnd)
	if err != nil {
		if failErr := u.etlRunUsecase.Fail(ctx, run.ID); failErr != nil {
			u.logger.ErrorContext(ctx, failErr, logger.NewField("run_id", run.ID))
		}
		return errors.TracerFromError(err).WithCode(errors.ErrAggregationCycle)
	}

	if err := u.etlRunUsecase.Complete(ctx, run.ID, processed, windowEnd); err != nil {
		return errors.TracerFromError(err).WithCode(errors.ErrAggregationCycle)
	}

	u.logger.InfoContext(ctx, "aggregation cycle complete",
		logger.NewField("run_id", run.ID),
		logger.NewField("window_start", watermark.Format(time.RFC3339)),
		logger.NewField("window_end", windowEnd.Format(time.RFC3339)),
		logger.NewField("ticks_processed", processed),
	)

	return nil
}

// resolveWatermark determines where the next window starts. With no
// prior successful run it falls back to the earliest stored tick,
// clamped to the lookback horizon. Nil means there is nothing to do.
func (u *Usecase) resolveWatermark(ctx context.Context, now time.Time) (*time.Time, error) {
	watermark, err := u.etlRunUsecase.GetWatermark(ctx, u.cfg.Source)
	if err != nil {
		return nil, errors.TracerFromError(err).WithCode(errors.ErrWatermark)
	}
	if watermark != nil {
		w := watermark.UTC()
		return &w, nil
	}

	earliest, err := u.tickUsecase.GetEarliestEventTime(ctx)
	if err != nil {
		return nil, errors.TracerFromError(err).WithCode(errors.ErrWatermark)
	}
	if earliest == nil {
		return nil, nil
	}

	start := earliest.UTC()
	if floor := now.Add(-u.cfg.Lookback); start.Before(floor) {
		start = floor
	}
	start = u.interval.CalculateBucketTime(start)
	return &start, nil
}

// aggregateWindow folds the ticks in [from, to) into bars and upserts
// them. Returns the number of ticks folded.
func (u *Usecase) aggregateWindow(ctx context.Context, from, to time.Time) (int64, error) {
	ticks, err := u.tickUsecase.GetTicksRange(ctx, from, to)
	if err != nil {
		return 0, err
	}
	if len(ticks) == 0 {
		return 0, nil
	}

	data := make([]interval.TickData, 0, len(ticks))
	for _, t := range ticks {
		data = append(data, interval.TickData{
			ID:        t.ID,
			Symbol:    t.Symbol,
			Price:     t.Price,
			Volume:    t.Volume,
			EventTime: t.EventTime,
		})
	}

	barData := u.interval.AggregateBuckets(data)

	bars := make([]*bar.Bar, 0, len(barData))
	for _, b := range barData {
		bars = append(bars, &bar.Bar{
			Symbol:      b.Symbol,
			BucketStart: b.BucketStart,
			Open:        b.Open,
			High:        b.High,
			Low:         b.Low,
			Close:       b.Close,
			VolumeSum:   b.VolumeSum,
			TickCount:   b.TickCount,
		})
	}

	if err := u.barUsecase.UpsertBars(ctx, bars); err != nil {
		return 0, err
	}

	return int64(len(ticks)), nil
}
