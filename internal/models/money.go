package models

import "github.com/shopspring/decimal"

// RoundPrice rounds an amount to 2 decimal places.
func RoundPrice(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}

func lineAmount(unitPrice float64, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(unitPrice).Mul(decimal.NewFromInt(int64(quantity)))
}
