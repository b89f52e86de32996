package v1

import (
	"fmt"
	"time"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/infrastructure/postgres/tick"
)

const maxSymbolLength = 10

// RawTickEvent is the wire payload consumed from the tick topic.
// EventTime is preferred; TS is accepted as a legacy alias from older
// producers and used only when EventTime is absent.
type RawTickEvent struct {
	Symbol    string          `json:"symbol"`
	Price     decimal.Decimal `json:"price"`
	Volume    *int64          `json:"volume,omitempty"`
	EventTime *time.Time      `json:"event_time,omitempty"`
	TS        *time.Time      `json:"ts,omitempty"`
}

// ResolvedEventTime returns the effective event time of the payload,
// or the zero time when neither field is set.
func (e *RawTickEvent) ResolvedEventTime() time.Time {
	if e.EventTime != nil {
		return *e.EventTime
	}
	if e.TS != nil {
		return *e.TS
	}
	return time.Time{}
}

// Validate checks the payload against the tick schema.
func (e *RawTickEvent) Validate() error {
	if e.Symbol == "" {
		return fmt.Errorf("symbol is required")
	}
	if len(e.Symbol) > maxSymbolLength {
		return fmt.Errorf("symbol %q exceeds %d characters", e.Symbol, maxSymbolLength)
	}
	for _, r := range e.Symbol {
		if !unicode.IsLetter(r) {
			return fmt.Errorf("symbol %q contains non-letter characters", e.Symbol)
		}
	}
	if !e.Price.IsPositive() {
		return fmt.Errorf("price must be positive, got %s", e.Price)
	}
	if e.Volume != nil && *e.Volume < 0 {
		return fmt.Errorf("volume must not be negative, got %d", *e.Volume)
	}
	if e.ResolvedEventTime().IsZero() {
		return fmt.Errorf("event_time is required")
	}
	return nil
}

// ToTick converts a validated payload into a storable tick.
func (e *RawTickEvent) ToTick() *tick.Tick {
	return &tick.Tick{
		Symbol:    e.Symbol,
		Price:     e.Price,
		Volume:    e.Volume,
		EventTime: e.ResolvedEventTime().UTC(),
	}
}
