package handler

// ValidateCodeRequest プロモーションコード検証リクエスト
// @Description プロモーションコード検証リクエスト
type ValidateCodeRequest struct {
	Code        string  `json:"code" example:"SUMMER10"`
	UserID      string  `json:"user_id" example:"user_123"`
	Amount      string  `json:"amount" example:"1000"`
	PaymentType string  `json:"payment_type" example:"booking" enums:"booking,product_purchase,event_ticket_purchase,subscription"`
	GymID       *string `json:"gym_id,omitempty" example:"gym_1"`
	ProductID   *string `json:"product_id,omitempty" example:"prod_1"`
	PackageID   *string `json:"package_id,omitempty" example:"pkg_1"`
}

// ValidateCodeResponse プロモーションコード検証レスポンス
// @Description プロモーションコード検証レスポンス
type ValidateCodeResponse struct {
	IsValid         bool   `json:"is_valid" example:"true"`
	PromotionID     string `json:"promotion_id,omitempty" example:"promo_1"`
	Code            string `json:"code,omitempty" example:"SUMMER10"`
	Title           string `json:"title,omitempty" example:"夏の10%オフ"`
	OriginalPrice   string `json:"original_price,omitempty" example:"1000"`
	DiscountAmount  string `json:"discount_amount,omitempty" example:"100"`
	FinalPrice      string `json:"final_price,omitempty" example:"900"`
	FreeShipping    bool   `json:"free_shipping" example:"false"`
	RejectionReason string `json:"rejection_reason,omitempty" example:"promotion has expired"`
}

// RedeemCodeRequest プロモーションコード使用確定リクエスト
// @Description プロモーションコード使用確定リクエスト
type RedeemCodeRequest struct {
	Code        string  `json:"code" example:"SUMMER10"`
	UserID      string  `json:"user_id" example:"user_123"`
	Amount      string  `json:"amount" example:"1000"`
	PaymentType string  `json:"payment_type" example:"booking" enums:"booking,product_purchase,event_ticket_purchase,subscription"`
	GymID       *string `json:"gym_id,omitempty" example:"gym_1"`
	ProductID   *string `json:"product_id,omitempty" example:"prod_1"`
	PackageID   *string `json:"package_id,omitempty" example:"pkg_1"`
}

// RedeemCodeResponse プロモーションコード使用確定レスポンス
// @Description プロモーションコード使用確定レスポンス
type RedeemCodeResponse struct {
	PromotionID    string `json:"promotion_id" example:"promo_1"`
	Code           string `json:"code" example:"SUMMER10"`
	Title          string `json:"title" example:"夏の10%オフ"`
	OriginalPrice  string `json:"original_price" example:"1000"`
	DiscountAmount string `json:"discount_amount" example:"100"`
	FinalPrice     string `json:"final_price" example:"900"`
	FreeShipping   bool   `json:"free_shipping" example:"false"`
	RedeemedAt     string `json:"redeemed_at" example:"2024-01-01T00:00:00Z"`
}

// ListCandidatesResponse 適用候補プロモーション一覧レスポンス
// @Description 適用候補プロモーション一覧レスポンス
type ListCandidatesResponse struct {
	Candidates []CandidateItem `json:"candidates"`
}

// CandidateItem 適用候補プロモーション
// @Description 適用候補プロモーション
type CandidateItem struct {
	PromotionID   string `json:"promotion_id" example:"promo_1"`
	Code          string `json:"code" example:"SUMMER10"`
	Title         string `json:"title" example:"夏の10%オフ"`
	DiscountType  string `json:"discount_type" example:"percentage" enums:"percentage,fixed_amount,free_shipping"`
	DiscountValue string `json:"discount_value" example:"10"`
	FreeShipping  bool   `json:"free_shipping" example:"false"`
	Priority      int    `json:"priority" example:"100"`
}
