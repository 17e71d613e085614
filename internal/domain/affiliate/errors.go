package affiliate

import "errors"

var (
	// ErrAffiliateNotFound アフィリエイトが見つからないエラー
	ErrAffiliateNotFound = errors.New("affiliate not found")
	// ErrAffiliateIDTooShort アフィリエイトIDが短すぎて紹介コードを生成できないエラー
	ErrAffiliateIDTooShort = errors.New("affiliate id must be at least 8 characters")
	// ErrMalformedReferralCode 紹介コードの形式が正しくないエラー
	ErrMalformedReferralCode = errors.New("malformed referral code")
)
