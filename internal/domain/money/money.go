package money

import (
	"github.com/shopspring/decimal"
)

// 金額は常にdecimalで扱う（floatだとセント単位の誤差が発生するため）

var hundred = decimal.NewFromInt(100)

// PercentOf 金額に対する割合を計算する（小数点以下2桁、四捨五入、負にならない）
func PercentOf(value, rate decimal.Decimal) decimal.Decimal {
	result := Round2(value.Mul(rate).Div(hundred))
	if result.IsNegative() {
		return decimal.Zero
	}
	return result
}

// Round2 小数点以下2桁に四捨五入する
func Round2(value decimal.Decimal) decimal.Decimal {
	return value.Round(2)
}

// Clamp 値をmin以上max以下に制限する
func Clamp(value, min, max decimal.Decimal) decimal.Decimal {
	if value.LessThan(min) {
		return min
	}
	if value.GreaterThan(max) {
		return max
	}
	return value
}

// Min 2つの値のうち小さい方を返す
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThanOrEqual(b) {
		return a
	}
	return b
}
