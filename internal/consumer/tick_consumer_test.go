package consumer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"

	failedEventUcMock "github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/domain/failedevent/mock"
	tickUcMock "github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/domain/tick/mock"
	failedEventInfra "github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/infrastructure/postgres/failedevent"
	tickInfra "github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/infrastructure/postgres/tick"
	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/config"
	loggerMock "github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/logger/mock"
)

func testKafkaConfig() config.TickKafkaConfig {
	return config.TickKafkaConfig{
		Brokers:       []string{"localhost:9092"},
		Topic:         "stock.ticks.v1",
		ConsumerGroup: "stockpulse-consumer-v1",
		Workers:       1,
		MaxRetries:    3,
		RetryBackoff:  time.Millisecond,
	}
}

func newTestConsumer(t *testing.T, ctrl *gomock.Controller) (*TickConsumer, *tickUcMock.MockUsecase, *failedEventUcMock.MockUsecase) {
	tickUc := tickUcMock.NewMockUsecase(ctrl)
	failedUc := failedEventUcMock.NewMockUsecase(ctrl)

	lg := loggerMock.NewMockInterface(ctrl)
	lg.EXPECT().InfoContext(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	lg.EXPECT().WarnContext(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	lg.EXPECT().ErrorContext(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	return NewTickConsumer(testKafkaConfig(), lg, tickUc, failedUc), tickUc, failedUc
}

func TestHandleMessage_StoresValidTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, tickUc, _ := newTestConsumer(t, ctrl)

	tickUc.EXPECT().StoreTick(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tk *tickInfra.Tick) error {
			assert.Equal(t, "AAPL", tk.Symbol)
			assert.Equal(t, "190.25", tk.Price.String())
			assert.Equal(t, int64(1200), *tk.Volume)
			return nil
		})

	msg := kafka.Message{
		Topic: "stock.ticks.v1",
		Value: []byte(`{"symbol":"AAPL","price":190.25,"volume":1200,"event_time":"2026-03-10T12:00:05Z"}`),
	}
	assert.NoError(t, c.handleMessage(context.Background(), msg))
}

func TestHandleMessage_LegacyTimestampField(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, tickUc, _ := newTestConsumer(t, ctrl)

	wantTime := time.Date(2026, 3, 10, 12, 0, 5, 0, time.UTC)
	tickUc.EXPECT().StoreTick(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tk *tickInfra.Tick) error {
			assert.True(t, tk.EventTime.Equal(wantTime))
			return nil
		})

	msg := kafka.Message{
		Value: []byte(`{"symbol":"MSFT","price":415.10,"ts":"2026-03-10T12:00:05Z"}`),
	}
	assert.NoError(t, c.handleMessage(context.Background(), msg))
}

func TestHandleMessage_MalformedPayloadDeadLetters(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
	}{
		{name: "invalid json", payload: `{not json`},
		{name: "missing symbol", payload: `{"price":10,"event_time":"2026-03-10T12:00:05Z"}`},
		{name: "zero price", payload: `{"symbol":"AAPL","price":0,"event_time":"2026-03-10T12:00:05Z"}`},
		{name: "negative price", payload: `{"symbol":"AAPL","price":-1,"event_time":"2026-03-10T12:00:05Z"}`},
		{name: "negative volume", payload: `{"symbol":"AAPL","price":10,"volume":-5,"event_time":"2026-03-10T12:00:05Z"}`},
		{name: "missing event time", payload: `{"symbol":"AAPL","price":10}`},
		{name: "symbol too long", payload: `{"symbol":"ABCDEFGHIJK","price":10,"event_time":"2026-03-10T12:00:05Z"}`},
		{name: "symbol with digits", payload: `{"symbol":"AAPL1","price":10,"event_time":"2026-03-10T12:00:05Z"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			c, tickUc, failedUc := newTestConsumer(t, ctrl)

			tickUc.EXPECT().StoreTick(gomock.Any(), gomock.Any()).Times(0)
			failedUc.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, ev *failedEventInfra.FailedEvent) error {
					assert.Equal(t, dlqSource, ev.Source)
					assert.Equal(t, []byte(tc.payload), ev.RawValue)
					assert.NotEmpty(t, ev.ErrorMessage)
					return nil
				})

			msg := kafka.Message{Topic: "stock.ticks.v1", Partition: 2, Offset: 40, Value: []byte(tc.payload)}

			// Dead lettering succeeds, so the message is committable.
			assert.NoError(t, c.handleMessage(context.Background(), msg))
		})
	}
}

func TestHandleMessage_DeadLetterStoreFailureIsSurfaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, _, failedUc := newTestConsumer(t, ctrl)

	failedUc.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	msg := kafka.Message{Value: []byte(`{not json`)}
	assert.Error(t, c.handleMessage(context.Background(), msg))
}

func TestStoreWithRetry_RecoversAfterTransientFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, tickUc, _ := newTestConsumer(t, ctrl)

	gomock.InOrder(
		tickUc.EXPECT().StoreTick(gomock.Any(), gomock.Any()).Return(errors.New("timeout")),
		tickUc.EXPECT().StoreTick(gomock.Any(), gomock.Any()).Return(nil),
	)

	msg := kafka.Message{
		Value: []byte(`{"symbol":"GOOG","price":175.40,"event_time":"2026-03-10T12:00:05Z"}`),
	}
	assert.NoError(t, c.handleMessage(context.Background(), msg))
}

func TestStoreWithRetry_ExhaustedRetriesReturnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, tickUc, failedUc := newTestConsumer(t, ctrl)

	tickUc.EXPECT().StoreTick(gomock.Any(), gomock.Any()).Return(errors.New("db down")).Times(3)
	// Storage outages are not dead lettered; the message stays
	// uncommitted for redelivery.
	failedUc.EXPECT().Record(gomock.Any(), gomock.Any()).Times(0)

	msg := kafka.Message{
		Value: []byte(`{"symbol":"TSLA","price":245.00,"event_time":"2026-03-10T12:00:05Z"}`),
	}
	assert.Error(t, c.handleMessage(context.Background(), msg))
}

type scriptedReader struct {
	msgs      []kafka.Message
	committed []kafka.Message
	closed    bool
}

func (r *scriptedReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.msgs) == 0 {
		<-ctx.Done()
		return kafka.Message{}, ctx.Err()
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	return msg, nil
}

func (r *scriptedReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *scriptedReader) Close() error {
	r.closed = true
	return nil
}

type flakyReader struct {
	scriptedReader
	fetchErrs  int
	fetchCalls int
}

func (r *flakyReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.fetchCalls++
	if r.fetchErrs > 0 {
		r.fetchErrs--
		return kafka.Message{}, errors.New("broker unavailable")
	}
	return r.scriptedReader.FetchMessage(ctx)
}

func TestStart_PersistentFetchFailureStopsWorker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, tickUc, _ := newTestConsumer(t, ctrl)

	reader := &flakyReader{fetchErrs: 10}
	c.newReader = func() tickReader { return reader }

	tickUc.EXPECT().StoreTick(gomock.Any(), gomock.Any()).Times(0)

	err := c.Start(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, context.Canceled)
	// MaxRetries backed-off attempts, then the next failure escalates.
	assert.Equal(t, testKafkaConfig().MaxRetries+1, reader.fetchCalls)
	assert.True(t, reader.closed)
}

func TestStart_TransientFetchFailureRecovers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, tickUc, _ := newTestConsumer(t, ctrl)

	reader := &flakyReader{
		fetchErrs: 1,
		scriptedReader: scriptedReader{msgs: []kafka.Message{
			{Offset: 1, Value: []byte(`{"symbol":"AAPL","price":190.10,"event_time":"2026-03-10T12:00:05Z"}`)},
		}},
	}
	c.newReader = func() tickReader { return reader }

	ctx, cancel := context.WithCancel(context.Background())
	tickUc.EXPECT().StoreTick(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *tickInfra.Tick) error {
			cancel()
			return nil
		})

	err := c.Start(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, reader.committed, 1)
}

func TestStart_CommitsAfterStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, tickUc, _ := newTestConsumer(t, ctrl)

	reader := &scriptedReader{msgs: []kafka.Message{
		{Offset: 1, Value: []byte(`{"symbol":"AAPL","price":190.10,"event_time":"2026-03-10T12:00:05Z"}`)},
		{Offset: 2, Value: []byte(`{"symbol":"AAPL","price":190.20,"event_time":"2026-03-10T12:00:07Z"}`)},
	}}
	c.newReader = func() tickReader { return reader }

	ctx, cancel := context.WithCancel(context.Background())
	stored := 0
	tickUc.EXPECT().StoreTick(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *tickInfra.Tick) error {
			stored++
			if stored == 2 {
				cancel()
			}
			return nil
		}).Times(2)

	err := c.Start(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, reader.committed, 2)
	assert.True(t, reader.closed)
}
