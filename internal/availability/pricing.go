package availability

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateCard is the pricing projection of a resource.
type RateCard struct {
	HourlyRate decimal.Decimal
	// Currency is an ISO 4217 code; it determines the rounding precision.
	Currency string
	// WeekendMultiplier scales the hourly rate on Saturdays and Sundays
	// when set. Nil means flat-rate pricing.
	WeekendMultiplier *decimal.Decimal
}

// zeroDecimalCurrencies lists currencies with no minor unit. Everything else
// rounds to two decimals.
var zeroDecimalCurrencies = map[string]bool{
	"BIF": true, "CLP": true, "DJF": true, "GNF": true, "JPY": true,
	"KMF": true, "KRW": true, "MGA": true, "PYG": true, "RWF": true,
	"UGX": true, "VND": true, "VUV": true, "XAF": true, "XOF": true,
	"XPF": true,
}

// CurrencyExponent returns the number of minor-unit decimals for a currency.
func CurrencyExponent(code string) int32 {
	if zeroDecimalCurrencies[code] {
		return 0
	}
	return 2
}

// RateModifier returns the multiplier to apply to a resource's hourly rate
// for a slot on a given date. It is the hook for peak/weekend pricing.
type RateModifier func(date time.Time, slot TimeInterval, rates RateCard) decimal.Decimal

// WeekendRateModifier applies the rate card's weekend multiplier on
// Saturdays and Sundays.
func WeekendRateModifier(date time.Time, _ TimeInterval, rates RateCard) decimal.Decimal {
	if rates.WeekendMultiplier == nil {
		return decimal.NewFromInt(1)
	}
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return *rates.WeekendMultiplier
	default:
		return decimal.NewFromInt(1)
	}
}

// PricingCalculator derives the total price of a slot from an hourly rate
// and the slot duration.
type PricingCalculator struct {
	Modifier RateModifier
}

func NewPricingCalculator() PricingCalculator {
	return PricingCalculator{Modifier: WeekendRateModifier}
}

// TotalPrice computes rate * (duration / 60), applies the modifier, and
// rounds to the currency's minor-unit precision.
func (p PricingCalculator) TotalPrice(rates RateCard, date time.Time, slot TimeInterval) decimal.Decimal {
	hours := decimal.NewFromInt(int64(slot.Minutes())).Div(decimal.NewFromInt(60))
	total := rates.HourlyRate.Mul(hours)
	if p.Modifier != nil {
		total = total.Mul(p.Modifier(date, slot, rates))
	}
	return total.Round(CurrencyExponent(rates.Currency))
}
