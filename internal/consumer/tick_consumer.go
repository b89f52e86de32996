package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"golang.org/x/sync/errgroup"

	"github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/domain/failedevent"
	tickDomain "github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/domain/tick"
	v1 "github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/domain/tick/v1"
	failedEventInfra "github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/infrastructure/postgres/failedevent"
	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/config"
	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/errors"
	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/logger"
)

const dlqSource = "tick-consumer"

// readerFactory builds one kafka.Reader per worker. Swappable for tests.
type readerFactory func() tickReader

// tickReader is the subset of kafka.Reader the consumer uses.
type tickReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// TickConsumer consumes raw tick events and stores them durably.
//
// Offsets are committed only after the tick is persisted or dead
// lettered, so a crash between store and commit causes redelivery,
// never loss. Malformed payloads are dead lettered and skipped;
// storage outages are retried with backoff before the worker gives up
// and leaves the message uncommitted.
type TickConsumer struct {
	cfg                config.TickKafkaConfig
	logger             logger.Interface
	tickUsecase        tickDomain.Usecase
	failedEventUsecase failedevent.Usecase
	newReader          readerFactory
}

// NewTickConsumer creates a new TickConsumer.
func NewTickConsumer(
	cfg config.TickKafkaConfig,
	logger logger.Interface,
	tickUsecase tickDomain.Usecase,
	failedEventUsecase failedevent.Usecase,
) *TickConsumer {
	return &TickConsumer{
		cfg:                cfg,
		logger:             logger,
		tickUsecase:        tickUsecase,
		failedEventUsecase: failedEventUsecase,
		newReader: func() tickReader {
			return kafka.NewReader(kafka.ReaderConfig{
				Brokers:     cfg.Brokers,
				Topic:       cfg.Topic,
				GroupID:     cfg.ConsumerGroup,
				MinBytes:    1,
				MaxBytes:    10e6,
				StartOffset: kafka.FirstOffset,
			})
		},
	}
}

// Start runs the configured number of workers until the context is
// cancelled or a worker exhausts its retries.
func (c *TickConsumer) Start(ctx context.Context) error {
	c.logger.InfoContext(ctx, "starting tick consumer", logger.Field{
		Key:   "action",
		Value: "tick_consumer_start",
	}, logger.Field{
		Key:   "workers",
		Value: c.cfg.Workers,
	})

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < c.cfg.Workers; i++ {
		workerID := i
		g.Go(func() error {
			return c.runWorker(ctx, workerID)
		})
	}

	return g.Wait()
}

// runWorker fetches, handles and commits messages in a loop. Each
// worker holds its own reader in the shared consumer group.
func (c *TickConsumer) runWorker(ctx context.Context, workerID int) error {
	reader := c.newReader()
	defer reader.Close()

	fetchFailures := 0
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			// A transient broker fault clears on the next fetch; a
			// persistent one exhausts the budget and the worker exits
			// so the orchestrator restarts it instead of hot looping.
			fetchFailures++
			if fetchFailures > c.cfg.MaxRetries {
				return errors.TracerFromError(err).WithCode(errors.ErrStreamRead)
			}

			c.logger.ErrorContext(ctx, errors.TracerFromError(err).WithCode(errors.ErrStreamRead), logger.Field{
				Key:   "worker",
				Value: workerID,
			}, logger.Field{
				Key:   "attempt",
				Value: fetchFailures,
			})

			backoff := c.cfg.RetryBackoff * time.Duration(1<<(fetchFailures-1))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
			continue
		}
		fetchFailures = 0

		if err := c.handleMessage(ctx, msg); err != nil {
			// Storage is down and retries are exhausted. Exit without
			// committing so the group redelivers the message.
			return err
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.ErrorContext(ctx, errors.TracerFromError(err).WithCode(errors.ErrStreamCommit), logger.Field{
				Key:   "worker",
				Value: workerID,
			})
		}
	}
}

// handleMessage validates and stores one tick. A nil return means the
// message can be committed, including the dead letter case.
func (c *TickConsumer) handleMessage(ctx context.Context, msg kafka.Message) error {
	event := &v1.RawTickEvent{}
	if err := json.Unmarshal(msg.Value, event); err != nil {
		return c.deadLetter(ctx, msg, fmt.Errorf("unmarshal: %w", err))
	}

	if err := event.Validate(); err != nil {
		return c.deadLetter(ctx, msg, err)
	}

	return c.storeWithRetry(ctx, event)
}

// deadLetter records the message in failed_events so it can still be
// committed. Recording failures are surfaced, not swallowed, because
// committing an unrecorded poison message would lose it.
func (c *TickConsumer) deadLetter(ctx context.Context, msg kafka.Message, cause error) error {
	c.logger.WarnContext(ctx, "dead lettering tick event", logger.Field{
		Key:   "topic",
		Value: msg.Topic,
	}, logger.Field{
		Key:   "partition",
		Value: msg.Partition,
	}, logger.Field{
		Key:   "offset",
		Value: msg.Offset,
	}, logger.Field{
		Key:   "cause",
		Value: cause.Error(),
	})

	return c.failedEventUsecase.Record(ctx, &failedEventInfra.FailedEvent{
		Source:       dlqSource,
		Topic:        msg.Topic,
		Partition:    msg.Partition,
		Offset:       msg.Offset,
		RawValue:     msg.Value,
		ErrorMessage: cause.Error(),
	})
}

// storeWithRetry persists a tick, backing off exponentially on storage
// failures up to the configured retry budget.
func (c *TickConsumer) storeWithRetry(ctx context.Context, event *v1.RawTickEvent) error {
	var lastErr error
	for attempt := 1; attempt <= c.cfg.MaxRetries; attempt++ {
		if lastErr = c.tickUsecase.StoreTick(ctx, event.ToTick()); lastErr == nil {
			return nil
		}

		c.logger.WarnContext(ctx, "tick store failed, retrying", logger.Field{
			Key:   "attempt",
			Value: attempt,
		}, logger.Field{
			Key:   "symbol",
			Value: event.Symbol,
		}, logger.Field{
			Key:   "error",
			Value: lastErr.Error(),
		})

		backoff := c.cfg.RetryBackoff * time.Duration(1<<(attempt-1))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}

	return errors.TracerFromError(lastErr).WithCode(errors.ErrTickStore)
}
