package handler

// IssueCodeResponse 紹介コード発行レスポンス
// @Description 紹介コード発行レスポンス
type IssueCodeResponse struct {
	AffiliateID  string `json:"affiliate_id" example:"aff-12ab34cd"`
	ReferralCode string `json:"referral_code" example:"MT12AB34CD"`
}

// ResolveCodeResponse 紹介コード解決レスポンス
// @Description 紹介コード解決レスポンス
type ResolveCodeResponse struct {
	ReferralCode string `json:"referral_code" example:"MT12AB34CD"`
	AffiliateID  string `json:"affiliate_id" example:"aff-12ab34cd"`
}
