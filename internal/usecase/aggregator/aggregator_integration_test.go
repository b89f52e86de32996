package aggregator

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	barInfra "github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/infrastructure/postgres/bar"
	etlrunInfra "github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/infrastructure/postgres/etlrun"
	tickInfra "github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/infrastructure/postgres/tick"
	barUc "github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/usecase/bar"
	etlrunUc "github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/usecase/etlrun"
	tickUc "github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/usecase/tick"
	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/logger"
	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/postgresql"
)

// AggregatorIntegrationTestSuite drives a full aggregation cycle
// against a real PostgreSQL instance. Opt in with INTEGRATION_TESTS=1.
type AggregatorIntegrationTestSuite struct {
	suite.Suite
	container *postgresql.TestContainer
	tickRepo  tickInfra.TickRepository
	barRepo   barInfra.BarRepository
	runRepo   etlrunInfra.RunRepository
	agg       *Usecase
	ctx       context.Context
}

func (s *AggregatorIntegrationTestSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	require.NoError(s.T(), err)

	cfg := postgresql.DefaultTestContainerConfig()
	cfg.MigrationsPath = migrationsPath

	container, err := postgresql.NewTestContainer(s.ctx, cfg)
	require.NoError(s.T(), err)
	s.container = container

	s.tickRepo = tickInfra.NewRepository(container.Client)
	s.barRepo = barInfra.NewRepository(container.Client)
	s.runRepo = etlrunInfra.NewRepository(container.Client)

	lg, err := logger.NewLogger()
	require.NoError(s.T(), err)

	s.agg, err = NewUsecase(
		tickUc.NewUsecase(s.tickRepo),
		barUc.NewUsecase(s.barRepo),
		etlrunUc.NewUsecase(s.runRepo),
		testConfig(),
		lg,
	)
	require.NoError(s.T(), err)
}

func (s *AggregatorIntegrationTestSuite) TearDownSuite() {
	if s.container != nil {
		s.container.Close()
	}
}

func (s *AggregatorIntegrationTestSuite) SetupTest() {
	require.NoError(s.T(), s.container.TruncateTables("stock_ticks", "stock_bars_1m", "etl_runs", "failed_events"))
}

func (s *AggregatorIntegrationTestSuite) storeTick(symbol, price string, volume int64, eventTime time.Time) {
	require.NoError(s.T(), s.tickRepo.Store(s.ctx, &tickInfra.Tick{
		Symbol:    symbol,
		Price:     decimal.RequireFromString(price),
		Volume:    &volume,
		EventTime: eventTime,
	}))
}

func (s *AggregatorIntegrationTestSuite) TestFullCycleProducesBarsAndWatermark() {
	bucket := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	s.storeTick("AAPL", "190.10", 1000, bucket.Add(5*time.Second))
	s.storeTick("AAPL", "190.55", 2000, bucket.Add(20*time.Second))
	s.storeTick("AAPL", "189.80", 500, bucket.Add(40*time.Second))
	s.storeTick("AAPL", "190.25", 1500, bucket.Add(59*time.Second))

	s.agg.now = func() time.Time { return bucket.Add(90 * time.Second) }
	require.NoError(s.T(), s.agg.RunCycle(s.ctx))

	bars, err := s.barRepo.GetByFilter(s.ctx, barInfra.Filter{Symbol: "AAPL"})
	require.NoError(s.T(), err)
	require.Len(s.T(), bars, 1)

	bar := bars[0]
	s.True(bar.BucketStart.Equal(bucket))
	s.True(bar.Open.Equal(decimal.RequireFromString("190.10")))
	s.True(bar.High.Equal(decimal.RequireFromString("190.55")))
	s.True(bar.Low.Equal(decimal.RequireFromString("189.80")))
	s.True(bar.Close.Equal(decimal.RequireFromString("190.25")))
	s.Equal(int64(5000), bar.VolumeSum)
	s.Equal(int32(4), bar.TickCount)

	run, err := s.runRepo.GetLatestSuccess(s.ctx, "aggregator")
	require.NoError(s.T(), err)
	require.NotNil(s.T(), run)
	s.Equal(int64(4), run.RecordsProcessed)
	require.NotNil(s.T(), run.CompletedAt)
	s.True(run.CompletedAt.Equal(bucket.Add(time.Minute)))
}

func (s *AggregatorIntegrationTestSuite) TestRerunIsIdempotent() {
	bucket := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	s.storeTick("MSFT", "415.10", 700, bucket.Add(10*time.Second))

	s.agg.now = func() time.Time { return bucket.Add(90 * time.Second) }
	require.NoError(s.T(), s.agg.RunCycle(s.ctx))

	// A late tick for the same bucket arrives after the cycle. Clearing
	// the run history forces the next cycle to re-cover the window; the
	// bar must be replaced, not duplicated.
	s.storeTick("MSFT", "415.90", 300, bucket.Add(30*time.Second))
	_, err := s.container.Client.Exec(s.ctx, "DELETE FROM etl_runs")
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.agg.RunCycle(s.ctx))

	bars, err := s.barRepo.GetByFilter(s.ctx, barInfra.Filter{Symbol: "MSFT"})
	require.NoError(s.T(), err)
	require.Len(s.T(), bars, 1)
	s.Equal(int32(2), bars[0].TickCount)
	s.Equal(int64(1000), bars[0].VolumeSum)
	s.True(bars[0].Close.Equal(decimal.RequireFromString("415.90")))
}

func (s *AggregatorIntegrationTestSuite) TestLateTickWaitsForNextCycle() {
	bucket := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	s.storeTick("GOOG", "175.40", 100, bucket.Add(10*time.Second))
	// This tick's bucket is still open at the first cycle.
	s.storeTick("GOOG", "175.80", 200, bucket.Add(70*time.Second))

	s.agg.now = func() time.Time { return bucket.Add(90 * time.Second) }
	require.NoError(s.T(), s.agg.RunCycle(s.ctx))

	bars, err := s.barRepo.GetByFilter(s.ctx, barInfra.Filter{Symbol: "GOOG"})
	require.NoError(s.T(), err)
	require.Len(s.T(), bars, 1)

	// The next cycle closes the second bucket.
	s.agg.now = func() time.Time { return bucket.Add(150 * time.Second) }
	require.NoError(s.T(), s.agg.RunCycle(s.ctx))

	bars, err = s.barRepo.GetByFilter(s.ctx, barInfra.Filter{Symbol: "GOOG"})
	require.NoError(s.T(), err)
	require.Len(s.T(), bars, 2)
}

func (s *AggregatorIntegrationTestSuite) TestTickBehindWatermarkNeverReachesBars() {
	bucket := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	s.storeTick("NVDA", "875.10", 400, bucket.Add(10*time.Second))

	s.agg.now = func() time.Time { return bucket.Add(90 * time.Second) }
	require.NoError(s.T(), s.agg.RunCycle(s.ctx))

	// The watermark now sits at bucket+60s. A tick older than that is
	// stored durably but its bucket is already frozen.
	s.storeTick("NVDA", "880.00", 600, bucket.Add(30*time.Second))

	s.agg.now = func() time.Time { return bucket.Add(150 * time.Second) }
	require.NoError(s.T(), s.agg.RunCycle(s.ctx))

	count, err := s.tickRepo.Count(s.ctx)
	require.NoError(s.T(), err)
	s.Equal(int64(2), count)

	bars, err := s.barRepo.GetByFilter(s.ctx, barInfra.Filter{Symbol: "NVDA"})
	require.NoError(s.T(), err)
	require.Len(s.T(), bars, 1)
	s.Equal(int32(1), bars[0].TickCount)
	s.Equal(int64(400), bars[0].VolumeSum)
	s.True(bars[0].Close.Equal(decimal.RequireFromString("875.10")))
}

func TestAggregatorIntegrationTestSuite(t *testing.T) {
	if os.Getenv("INTEGRATION_TESTS") == "" {
		t.Skip("set INTEGRATION_TESTS=1 to run")
	}
	suite.Run(t, new(AggregatorIntegrationTestSuite))
}
