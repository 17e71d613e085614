package settlement

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComputeCommissionRequest コミッション計算リクエスト
type ComputeCommissionRequest struct {
	ConversionType  string
	ConversionValue decimal.Decimal
}

// ComputeCommissionResponse コミッション計算レスポンス
type ComputeCommissionResponse struct {
	ConversionType   string
	ConversionValue  decimal.Decimal
	CommissionRate   decimal.Decimal
	CommissionAmount decimal.Decimal
}

// RecordConversionRequest コンバージョン記録リクエスト
type RecordConversionRequest struct {
	AffiliateID     string
	ConversionType  string
	ConversionValue decimal.Decimal
}

// RecordConversionResponse コンバージョン記録レスポンス
type RecordConversionResponse struct {
	ConversionID     string
	AffiliateID      string
	ConversionType   string
	ConversionValue  decimal.Decimal
	CommissionRate   decimal.Decimal
	CommissionAmount decimal.Decimal
	CreatedAt        time.Time
}

// ListConversionsRequest コンバージョン一覧取得リクエスト
type ListConversionsRequest struct {
	AffiliateID string
	Limit       int
	Offset      int
}

// ConversionView コンバージョン台帳レコードのビュー
type ConversionView struct {
	ConversionID     string
	ConversionType   string
	ConversionValue  decimal.Decimal
	CommissionRate   decimal.Decimal
	CommissionAmount decimal.Decimal
	CreatedAt        time.Time
}

// ListConversionsResponse コンバージョン一覧取得レスポンス
type ListConversionsResponse struct {
	Conversions []*ConversionView
	Total       int
	Limit       int
	Offset      int
}
