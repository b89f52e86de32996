package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/infrastructure/postgres/tick"
)

const (
	defaultTickLimit      = 10
	maxTickLimit          = 100
	defaultSummaryMinutes = 5
	maxWindowMinutes      = 1440
)

type tickResponse struct {
	ID        int64           `json:"id"`
	Symbol    string          `json:"symbol"`
	Price     decimal.Decimal `json:"price"`
	Volume    *int64          `json:"volume"`
	EventTime time.Time       `json:"event_time"`
}

func (s *Server) handleSymbols(c *gin.Context) {
	symbols, err := s.tickUsecase.GetSymbols(c.Request.Context())
	if err != nil {
		s.logger.ErrorContext(c.Request.Context(), err)
		respondInternal(c)
		return
	}
	if symbols == nil {
		symbols = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"symbols": symbols})
}

func (s *Server) handleLatestTicks(c *gin.Context) {
	symbol, err := symbolParam(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	limit, err := intParam(c, "limit", defaultTickLimit, maxTickLimit)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	ticks, err := s.tickUsecase.GetTicks(c.Request.Context(), tick.Filter{
		Symbol: symbol,
		Limit:  limit,
	})
	if err != nil {
		s.logger.ErrorContext(c.Request.Context(), err)
		respondInternal(c)
		return
	}
	// An unknown or quiet symbol is an empty list, not an error.
	out := make([]tickResponse, 0, len(ticks))
	for _, t := range ticks {
		out = append(out, tickResponse{
			ID:        t.ID,
			Symbol:    t.Symbol,
			Price:     t.Price,
			Volume:    t.Volume,
			EventTime: t.EventTime,
		})
	}

	c.JSON(http.StatusOK, gin.H{"symbol": symbol, "count": len(out), "ticks": out})
}

func (s *Server) handleTickSummary(c *gin.Context) {
	symbol, err := symbolParam(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	minutes, err := intParam(c, "minutes", defaultSummaryMinutes, maxWindowMinutes)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	since := time.Now().UTC().Add(-time.Duration(minutes) * time.Minute)
	summary, err := s.tickUsecase.GetTickSummary(c.Request.Context(), symbol, since)
	if err != nil {
		s.logger.ErrorContext(c.Request.Context(), err)
		respondInternal(c)
		return
	}
	if summary == nil {
		respondNotFound(c, "no ticks for symbol "+symbol)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"symbol":         symbol,
		"window_minutes": minutes,
		"tick_count":     summary.Count,
		"avg_price":      summary.AvgPrice,
		"min_price":      summary.MinPrice,
		"max_price":      summary.MaxPrice,
		"sum_volume":     summary.SumVolume,
		"start_time":     summary.StartTime,
		"end_time":       summary.EndTime,
	})
}
