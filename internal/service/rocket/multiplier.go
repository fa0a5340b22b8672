package rocket

import (
	"github.com/shopspring/decimal"
)

const (
	startMultiplier = 1.00

	baseStep = 0.10
	midStep  = 0.15
	highStep = 0.25

	// Пороги, с которых шаг растет
	midFrom  = 2.00
	highFrom = 5.00
)

// nextStep Шаг для множителя m. Шаг никогда не уменьшается относительно current
func nextStep(m, current float64) float64 {
	step := baseStep
	switch {
	case m >= highFrom:
		step = highStep
	case m >= midFrom:
		step = midStep
	}
	if step < current {
		return current
	}
	return step
}

// advance round(m + step, 2) без накопления двоичной погрешности
func advance(m, step float64) float64 {
	return decimal.NewFromFloat(m).
		Add(decimal.NewFromFloat(step)).
		Round(2).
		InexactFloat64()
}

func roundMultiplier(m float64) float64 {
	return decimal.NewFromFloat(m).Round(2).InexactFloat64()
}

// Payout floor(bet × multiplier), множитель берется с точностью до сотых
func Payout(bet int64, multiplier float64) int64 {
	return decimal.NewFromInt(bet).
		Mul(decimal.NewFromFloat(multiplier).Round(2)).
		Floor().
		IntPart()
}
