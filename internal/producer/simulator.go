package producer

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	v1 "github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/domain/tick/v1"
	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/config"
	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/errors"
	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/logger"
)

// basePrices seeds the random walk per symbol. Unknown symbols start at 100.
var basePrices = map[string]float64{
	"AAPL": 190,
	"MSFT": 415,
	"GOOG": 175,
	"AMZN": 185,
	"TSLA": 245,
	"NVDA": 875,
}

const (
	defaultBasePrice = 100
	maxDrift         = 0.5
	minVolume        = 500
	maxVolume        = 15000
)

// tickWriter is the subset of kafka.Writer the simulator uses.
type tickWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Simulator publishes synthetic tick events on a fixed interval.
// Prices follow a bounded random walk per symbol; messages are keyed
// by symbol so one symbol always lands on one partition.
type Simulator struct {
	cfg    config.ProducerConfig
	writer tickWriter
	logger logger.Interface
	prices map[string]float64
	rng    *rand.Rand

	now func() time.Time
}

// NewSimulator creates a new tick simulator.
func NewSimulator(cfg config.ProducerConfig, kafkaCfg config.TickKafkaConfig, logger logger.Interface) *Simulator {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(kafkaCfg.Brokers...),
		Topic:    kafkaCfg.Topic,
		Balancer: &kafka.Hash{},
	}

	prices := make(map[string]float64, len(cfg.Symbols))
	for _, symbol := range cfg.Symbols {
		base, ok := basePrices[symbol]
		if !ok {
			base = defaultBasePrice
		}
		prices[symbol] = base
	}

	return &Simulator{
		cfg:    cfg,
		writer: writer,
		logger: logger,
		prices: prices,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		now:    time.Now,
	}
}

// Start publishes one batch of ticks per interval until the context is
// cancelled.
func (s *Simulator) Start(ctx context.Context) error {
	defer s.writer.Close()

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	s.logger.InfoContext(ctx, "tick simulator started",
		logger.NewField("symbols", s.cfg.Symbols),
		logger.NewField("interval", s.cfg.Interval.String()),
	)

	for {
		if err := s.publishBatch(ctx); err != nil {
			s.logger.ErrorContext(ctx, err)
		}

		select {
		case <-ctx.Done():
			s.logger.InfoContext(ctx, "tick simulator stopping")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// publishBatch emits one tick per symbol.
func (s *Simulator) publishBatch(ctx context.Context) error {
	now := s.now().UTC()

	msgs := make([]kafka.Message, 0, len(s.cfg.Symbols))
	for _, symbol := range s.cfg.Symbols {
		event := s.nextTick(symbol, now)

		value, err := json.Marshal(event)
		if err != nil {
			return errors.TracerFromError(err).WithCode(errors.ErrStreamPublish)
		}

		msgs = append(msgs, kafka.Message{
			Key:   []byte(symbol),
			Value: value,
		})
	}

	if err := s.writer.WriteMessages(ctx, msgs...); err != nil {
		return errors.TracerFromError(err).WithCode(errors.ErrStreamPublish)
	}

	return nil
}

// nextTick advances the symbol's random walk one step.
func (s *Simulator) nextTick(symbol string, eventTime time.Time) *v1.RawTickEvent {
	price := s.prices[symbol] + (s.rng.Float64()*2-1)*maxDrift
	if price < 1 {
		price = 1
	}
	s.prices[symbol] = price

	volume := int64(minVolume + s.rng.Intn(maxVolume-minVolume+1))

	return &v1.RawTickEvent{
		Symbol:    symbol,
		Price:     decimal.NewFromFloat(price).Round(4),
		Volume:    &volume,
		EventTime: &eventTime,
	}
}
