package commission

import (
	"github.com/shopspring/decimal"
)

// DefaultRates 静的フォールバックのコミッション率テーブルを返す
// レートストアが利用できない場合や、種別が未設定の場合に使用される
func DefaultRates() map[ConversionType]decimal.Decimal {
	return map[ConversionType]decimal.Decimal{
		ConversionTypeSignup:              decimal.NewFromInt(5),
		ConversionTypeBooking:             decimal.NewFromInt(10),
		ConversionTypeProductPurchase:     decimal.NewFromInt(8),
		ConversionTypeEventTicketPurchase: decimal.NewFromInt(8),
		ConversionTypeSubscription:        decimal.NewFromInt(15),
		ConversionTypeReferral:            decimal.NewFromInt(5),
	}
}

// DefaultRate 指定した種別の静的フォールバック率を返す（未知の種別は0）
func DefaultRate(conversionType ConversionType) decimal.Decimal {
	if rate, ok := DefaultRates()[conversionType]; ok {
		return rate
	}
	return decimal.Zero
}
