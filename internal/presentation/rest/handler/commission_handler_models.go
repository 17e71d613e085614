package handler

// ComputeCommissionRequest コミッション計算リクエスト
// @Description コミッション計算リクエスト
type ComputeCommissionRequest struct {
	ConversionType  string `json:"conversion_type" example:"booking" enums:"signup,booking,product_purchase,event_ticket_purchase,subscription,referral"`
	ConversionValue string `json:"conversion_value" example:"100"`
}

// ComputeCommissionResponse コミッション計算レスポンス
// @Description コミッション計算レスポンス
type ComputeCommissionResponse struct {
	ConversionType   string `json:"conversion_type" example:"booking"`
	ConversionValue  string `json:"conversion_value" example:"100"`
	CommissionRate   string `json:"commission_rate" example:"10"`
	CommissionAmount string `json:"commission_amount" example:"10"`
}

// RecordConversionRequest コンバージョン記録リクエスト
// @Description コンバージョン記録リクエスト
type RecordConversionRequest struct {
	AffiliateID     string `json:"affiliate_id" example:"aff_123"`
	ConversionType  string `json:"conversion_type" example:"booking" enums:"signup,booking,product_purchase,event_ticket_purchase,subscription,referral"`
	ConversionValue string `json:"conversion_value" example:"100"`
}

// RecordConversionResponse コンバージョン記録レスポンス
// @Description コンバージョン記録レスポンス
type RecordConversionResponse struct {
	ConversionID     string `json:"conversion_id" example:"conv_123"`
	AffiliateID      string `json:"affiliate_id" example:"aff_123"`
	ConversionType   string `json:"conversion_type" example:"booking"`
	ConversionValue  string `json:"conversion_value" example:"100"`
	CommissionRate   string `json:"commission_rate" example:"10"`
	CommissionAmount string `json:"commission_amount" example:"10"`
	CreatedAt        string `json:"created_at" example:"2024-01-01T00:00:00Z"`
}

// ListConversionsResponse コンバージョン一覧取得レスポンス
// @Description コンバージョン一覧取得レスポンス
type ListConversionsResponse struct {
	Conversions []ConversionItem `json:"conversions"`
	Total       int              `json:"total" example:"100"`
	Limit       int              `json:"limit" example:"50"`
	Offset      int              `json:"offset" example:"0"`
}

// ConversionItem コンバージョン台帳レコード
// @Description コンバージョン台帳レコード
type ConversionItem struct {
	ConversionID     string `json:"conversion_id" example:"conv_123"`
	ConversionType   string `json:"conversion_type" example:"booking"`
	ConversionValue  string `json:"conversion_value" example:"100"`
	CommissionRate   string `json:"commission_rate" example:"10"`
	CommissionAmount string `json:"commission_amount" example:"10"`
	CreatedAt        string `json:"created_at" example:"2024-01-01T00:00:00Z"`
}
