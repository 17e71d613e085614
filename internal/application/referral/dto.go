package referral

// IssueCodeRequest 紹介コード発行リクエスト
type IssueCodeRequest struct {
	AffiliateID string
}

// IssueCodeResponse 紹介コード発行レスポンス
type IssueCodeResponse struct {
	AffiliateID  string
	ReferralCode string
}

// ResolveCodeRequest 紹介コード解決リクエスト
type ResolveCodeRequest struct {
	ReferralCode string
}

// ResolveCodeResponse 紹介コード解決レスポンス
type ResolveCodeResponse struct {
	ReferralCode string
	AffiliateID  string
}
