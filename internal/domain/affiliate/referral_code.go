package affiliate

import (
	"regexp"
	"strings"
)

// 紹介コードの形式: "MT" + アフィリエイトID末尾8文字（大文字化）
const (
	referralCodePrefix = "MT"
	referralSuffixLen  = 8
)

var referralCodePattern = regexp.MustCompile(`^MT[A-Z0-9]{8}$`)

// EncodeReferralCode アフィリエイトIDから紹介コードを生成する
// IDが8文字未満の場合はErrAffiliateIDTooShortを返す
func EncodeReferralCode(affiliateID string) (string, error) {
	if len(affiliateID) < referralSuffixLen {
		return "", ErrAffiliateIDTooShort
	}
	suffix := affiliateID[len(affiliateID)-referralSuffixLen:]
	return referralCodePrefix + strings.ToUpper(suffix), nil
}

// IsWellFormedReferralCode 紹介コードの形式が正しいかどうかを返す（形式チェックのみ、存在確認はしない）
func IsWellFormedReferralCode(code string) bool {
	return referralCodePattern.MatchString(code)
}

// DecodeReferralSuffix 紹介コードから8文字のサフィックスを取り出す
// 形式が正しくない場合はfalseを返す
// サフィックスを実際のアフィリエイトIDに解決するのはリポジトリの責務
func DecodeReferralSuffix(code string) (string, bool) {
	if !IsWellFormedReferralCode(code) {
		return "", false
	}
	return code[len(referralCodePrefix):], true
}
