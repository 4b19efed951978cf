// Package calc performs the price/weight conversions shown on the calculator
// screen. All arithmetic uses decimal.Decimal so displayed values never pick
// up binary floating-point noise.
package calc

import (
	"github.com/shopspring/decimal"

	"github.com/a-rout/price-calculator-app/pkg/types"
)

// Result scales: prices carry two decimal places, weights three (gram
// resolution).
const (
	PriceScale  = 2
	WeightScale = 3
)

// PriceFor returns the price of weightKg kilograms at perKg, rounded to
// PriceScale. perKg must be positive.
func PriceFor(perKg, weightKg decimal.Decimal) (decimal.Decimal, error) {
	if !perKg.IsPositive() {
		return decimal.Zero, types.ErrNonPositivePrice
	}
	return perKg.Mul(weightKg).Round(PriceScale), nil
}

// WeightFor returns the weight in kilograms that amount buys at perKg,
// rounded to WeightScale. perKg must be positive.
func WeightFor(perKg, amount decimal.Decimal) (decimal.Decimal, error) {
	if !perKg.IsPositive() {
		return decimal.Zero, types.ErrNonPositivePrice
	}
	return amount.DivRound(perKg, WeightScale), nil
}
