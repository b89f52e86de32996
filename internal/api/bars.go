package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/infrastructure/postgres/bar"
)

const (
	defaultBarLimit          = 60
	maxBarLimit              = 1440
	defaultBarSummaryMinutes = 60
	defaultMoversMinutes     = 5
	defaultMoversLimit       = 5
	maxMoversLimit           = 20
)

type barResponse struct {
	Symbol      string          `json:"symbol"`
	BucketStart time.Time       `json:"bucket_start"`
	Open        decimal.Decimal `json:"open"`
	High        decimal.Decimal `json:"high"`
	Low         decimal.Decimal `json:"low"`
	Close       decimal.Decimal `json:"close"`
	VolumeSum   int64           `json:"volume_sum"`
	TickCount   int32           `json:"tick_count"`
}

func (s *Server) handleLatestBars(c *gin.Context) {
	symbol, err := symbolParam(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	limit, err := intParam(c, "limit", defaultBarLimit, maxBarLimit)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	bars, err := s.barUsecase.GetBars(c.Request.Context(), bar.Filter{
		Symbol: symbol,
		Limit:  limit,
	})
	if err != nil {
		s.logger.ErrorContext(c.Request.Context(), err)
		respondInternal(c)
		return
	}
	// An unknown or not-yet-aggregated symbol is an empty list, not an error.
	out := make([]barResponse, 0, len(bars))
	for _, b := range bars {
		out = append(out, barResponse{
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

	c.JSON(http.StatusOK, gin.H{"symbol": symbol, "count": len(out), "bars": out})
}

func (s *Server) handleBarSummary(c *gin.Context) {
	symbol, err := symbolParam(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	minutes, err := intParam(c, "minutes", defaultBarSummaryMinutes, maxWindowMinutes)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	since := time.Now().UTC().Add(-time.Duration(minutes) * time.Minute)
	summary, err := s.barUsecase.GetBarSummary(c.Request.Context(), symbol, since)
	if err != nil {
		s.logger.ErrorContext(c.Request.Context(), err)
		respondInternal(c)
		return
	}
	if summary == nil {
		respondNotFound(c, "no bars for symbol "+symbol)
		return
	}

	// Percentage move over the window. Null when the period open is zero.
	var changePct *decimal.Decimal
	if !summary.PeriodOpen.IsZero() {
		pct := summary.PeriodClose.Sub(summary.PeriodOpen).
			Div(summary.PeriodOpen).
			Mul(decimal.NewFromInt(100)).
			Round(4)
		changePct = &pct
	}

	c.JSON(http.StatusOK, gin.H{
		"symbol":         symbol,
		"window_minutes": minutes,
		"bar_count":      summary.BarCount,
		"period_open":    summary.PeriodOpen,
		"period_high":    summary.PeriodHigh,
		"period_low":     summary.PeriodLow,
		"period_close":   summary.PeriodClose,
		"change_pct":     changePct,
		"total_volume":   summary.TotalVolume,
		"total_ticks":    summary.TotalTicks,
		"start_time":     summary.StartTime,
		"end_time":       summary.EndTime,
	})
}

func (s *Server) handleMovers(c *gin.Context) {
	minutes, err := intParam(c, "minutes", defaultMoversMinutes, maxWindowMinutes)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	limit, err := intParam(c, "limit", defaultMoversLimit, maxMoversLimit)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	since := time.Now().UTC().Add(-time.Duration(minutes) * time.Minute)
	movers, err := s.barUsecase.GetMovers(c.Request.Context(), since, limit)
	if err != nil {
		s.logger.ErrorContext(c.Request.Context(), err)
		respondInternal(c)
		return
	}
	if movers == nil {
		movers = []*bar.Mover{}
	}

	c.JSON(http.StatusOK, gin.H{
		"window_minutes": minutes,
		"movers":         movers,
	})
}
