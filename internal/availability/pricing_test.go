package availability

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var (
	weekday = time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC) // Wednesday
	weekend = time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC) // Saturday
)

func rates(hourly string, currency string) RateCard {
	return RateCard{
		HourlyRate: decimal.RequireFromString(hourly),
		Currency:   currency,
	}
}

func TestTotalPrice(t *testing.T) {
	calc := NewPricingCalculator()
	twoHours := TimeInterval{9 * 60, 11 * 60}
	ninetyMinutes := TimeInterval{9 * 60, 10*60 + 30}

	tests := []struct {
		name  string
		rates RateCard
		slot  TimeInterval
		want  string
	}{
		{name: "whole hours", rates: rates("25.00", "USD"), slot: twoHours, want: "50"},
		{name: "fractional hours", rates: rates("25.00", "USD"), slot: ninetyMinutes, want: "37.5"},
		{name: "two decimal rounding", rates: rates("33.33", "EUR"), slot: ninetyMinutes, want: "50"},
		{name: "zero-decimal currency rounds to integer", rates: rates("1500.5", "JPY"), slot: ninetyMinutes, want: "2251"},
		{name: "zero rate", rates: rates("0", "USD"), slot: twoHours, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.TotalPrice(tt.rates, weekday, tt.slot)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestTotalPriceWeekendMultiplier(t *testing.T) {
	calc := NewPricingCalculator()
	slot := TimeInterval{9 * 60, 11 * 60}

	mult := decimal.RequireFromString("1.5")
	card := rates("20.00", "USD")
	card.WeekendMultiplier = &mult

	onWeekday := calc.TotalPrice(card, weekday, slot)
	assert.True(t, onWeekday.Equal(decimal.RequireFromString("40")), "got %s", onWeekday)

	onWeekend := calc.TotalPrice(card, weekend, slot)
	assert.True(t, onWeekend.Equal(decimal.RequireFromString("60")), "got %s", onWeekend)
}

func TestTotalPriceNoMultiplierIsFlat(t *testing.T) {
	calc := NewPricingCalculator()
	slot := TimeInterval{9 * 60, 11 * 60}
	card := rates("20.00", "USD")

	assert.True(t, calc.TotalPrice(card, weekend, slot).Equal(decimal.RequireFromString("40")))
}

func TestCurrencyExponent(t *testing.T) {
	assert.Equal(t, int32(2), CurrencyExponent("USD"))
	assert.Equal(t, int32(2), CurrencyExponent("EUR"))
	assert.Equal(t, int32(0), CurrencyExponent("JPY"))
	assert.Equal(t, int32(0), CurrencyExponent("KRW"))
	assert.Equal(t, int32(2), CurrencyExponent(""), "unknown currencies default to two decimals")
}
