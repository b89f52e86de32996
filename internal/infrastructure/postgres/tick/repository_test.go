package tick

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mockPg "github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/postgresql/mock"
	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/util"
)

// fakeRow satisfies pgx.Row with a canned scan function.
type fakeRow struct {
	scanFn func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error {
	return r.scanFn(dest...)
}

func TestTickRepository_Store(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 5, 0, time.UTC)

	testCases := []struct {
		name     string
		mockFn   func(tc *Tick, pg *mockPg.MockPostgreSQLClient)
		tick     *Tick
		assertFn func(t *testing.T, tc *Tick, err error)
	}{
		{
			name: "success",
			mockFn: func(tc *Tick, pg *mockPg.MockPostgreSQLClient) {
				pg.EXPECT().
					QueryRow(ctx, gomock.Any(), tc.Symbol, tc.Price, tc.Volume, tc.EventTime).
					Return(fakeRow{scanFn: func(dest ...any) error {
						*dest[0].(*int64) = 42
						*dest[1].(*time.Time) = now
						return nil
					}})
			},
			tick: &Tick{
				Symbol:    "AAPL",
				Price:     decimal.RequireFromString("190.25"),
				Volume:    util.Int64Pointer(1200),
				EventTime: now,
			},
			assertFn: func(t *testing.T, tc *Tick, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(42), tc.ID)
			},
		},
		{
			name: "error",
			mockFn: func(tc *Tick, pg *mockPg.MockPostgreSQLClient) {
				pg.EXPECT().
					QueryRow(ctx, gomock.Any(), tc.Symbol, tc.Price, tc.Volume, tc.EventTime).
					Return(fakeRow{scanFn: func(dest ...any) error {
						return errors.New("connection refused")
					}})
			},
			tick: &Tick{
				Symbol:    "AAPL",
				Price:     decimal.RequireFromString("190.25"),
				Volume:    util.Int64Pointer(1200),
				EventTime: now,
			},
			assertFn: func(t *testing.T, tc *Tick, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			pg := mockPg.NewMockPostgreSQLClient(ctrl)
			tc.mockFn(tc.tick, pg)

			repo := NewRepository(pg)
			err := repo.Store(ctx, tc.tick)
			tc.assertFn(t, tc.tick, err)
		})
	}
}

func TestTickRepository_StoreBatch(t *testing.T) {
	ctx := context.Background()
	ticks := []*Tick{
		{Symbol: "AAPL", Price: decimal.RequireFromString("190.10"), Volume: util.Int64Pointer(500), EventTime: time.Now()},
		{Symbol: "MSFT", Price: decimal.RequireFromString("415.40"), Volume: nil, EventTime: time.Now()},
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		pg := mockPg.NewMockPostgreSQLClient(ctrl)
		pg.EXPECT().
			CopyFrom(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(2), nil)

		repo := NewRepository(pg)
		assert.NoError(t, repo.StoreBatch(ctx, ticks))
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		pg := mockPg.NewMockPostgreSQLClient(ctrl)
		repo := NewRepository(pg)
		assert.NoError(t, repo.StoreBatch(ctx, nil))
	})

	t.Run("error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		pg := mockPg.NewMockPostgreSQLClient(ctrl)
		pg.EXPECT().
			CopyFrom(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), errors.New("copy failed"))

		repo := NewRepository(pg)
		assert.Error(t, repo.StoreBatch(ctx, ticks))
	})
}

func TestTickRepository_GetRange(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2026, 3, 10, 11, 58, 0, 0, time.UTC)
	to := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		pg := mockPg.NewMockPostgreSQLClient(ctrl)
		rows := mockPg.NewMockRowsInterface(ctrl)

		pg.EXPECT().Query(ctx, gomock.Any(), from, to).Return(rows, nil)

		scanned := 0
		rows.EXPECT().Next().DoAndReturn(func() bool { return scanned < 2 }).Times(3)
		rows.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(dest ...any) error {
				scanned++
				*dest[0].(*int64) = int64(scanned)
				*dest[1].(*string) = "AAPL"
				*dest[2].(*decimal.Decimal) = decimal.RequireFromString("190.10")
				*dest[4].(*time.Time) = from.Add(time.Duration(scanned) * time.Second)
				return nil
			}).Times(2)
		rows.EXPECT().Err().Return(nil)
		rows.EXPECT().Close()

		repo := NewRepository(pg)
		ticks, err := repo.GetRange(ctx, from, to)
		require.NoError(t, err)
		require.Len(t, ticks, 2)
		assert.Equal(t, int64(1), ticks[0].ID)
		assert.Equal(t, "AAPL", ticks[0].Symbol)
	})

	t.Run("query error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		pg := mockPg.NewMockPostgreSQLClient(ctrl)
		pg.EXPECT().Query(ctx, gomock.Any(), from, to).Return(nil, errors.New("timeout"))

		repo := NewRepository(pg)
		_, err := repo.GetRange(ctx, from, to)
		assert.Error(t, err)
	})
}

func TestTickRepository_GetEarliestEventTime(t *testing.T) {
	ctx := context.Background()
	earliest := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		mockFn   func(pg *mockPg.MockPostgreSQLClient)
		assertFn func(t *testing.T, got *time.Time, err error)
	}{
		{
			name: "returns earliest",
			mockFn: func(pg *mockPg.MockPostgreSQLClient) {
				pg.EXPECT().QueryRow(ctx, gomock.Any()).Return(fakeRow{scanFn: func(dest ...any) error {
					*dest[0].(**time.Time) = &earliest
					return nil
				}})
			},
			assertFn: func(t *testing.T, got *time.Time, err error) {
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.True(t, got.Equal(earliest))
			},
		},
		{
			name: "empty table yields nil",
			mockFn: func(pg *mockPg.MockPostgreSQLClient) {
				pg.EXPECT().QueryRow(ctx, gomock.Any()).Return(fakeRow{scanFn: func(dest ...any) error {
					return nil
				}})
			},
			assertFn: func(t *testing.T, got *time.Time, err error) {
				require.NoError(t, err)
				assert.Nil(t, got)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			pg := mockPg.NewMockPostgreSQLClient(ctrl)
			tc.mockFn(pg)

			repo := NewRepository(pg)
			got, err := repo.GetEarliestEventTime(ctx)
			tc.assertFn(t, got, err)
		})
	}
}

func TestTickRepository_GetSummary(t *testing.T) {
	ctx := context.Background()
	since := time.Date(2026, 3, 10, 11, 55, 0, 0, time.UTC)

	t.Run("returns summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		pg := mockPg.NewMockPostgreSQLClient(ctrl)
		pg.EXPECT().QueryRow(ctx, gomock.Any(), "AAPL", since).Return(fakeRow{scanFn: func(dest ...any) error {
			*dest[0].(*int64) = 5
			*dest[1].(*decimal.Decimal) = decimal.RequireFromString("190.20")
			*dest[2].(*decimal.Decimal) = decimal.RequireFromString("189.80")
			*dest[3].(*decimal.Decimal) = decimal.RequireFromString("190.55")
			*dest[4].(*int64) = 5000
			return nil
		}})

		repo := NewRepository(pg)
		summary, err := repo.GetSummary(ctx, "AAPL", since)
		require.NoError(t, err)
		require.NotNil(t, summary)
		assert.Equal(t, int64(5), summary.Count)
		assert.Equal(t, int64(5000), summary.SumVolume)
	})

	t.Run("no ticks yields nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		pg := mockPg.NewMockPostgreSQLClient(ctrl)
		pg.EXPECT().QueryRow(ctx, gomock.Any(), "AAPL", since).Return(fakeRow{scanFn: func(dest ...any) error {
			*dest[0].(*int64) = 0
			return nil
		}})

		repo := NewRepository(pg)
		summary, err := repo.GetSummary(ctx, "AAPL", since)
		require.NoError(t, err)
		assert.Nil(t, summary)
	})
}
