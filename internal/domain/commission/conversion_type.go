package commission

import (
	"fmt"
)

// ConversionType コンバージョン種別を表す値オブジェクト
type ConversionType string

const (
	ConversionTypeSignup              ConversionType = "signup"                // 会員登録
	ConversionTypeBooking             ConversionType = "booking"               // ジム予約
	ConversionTypeProductPurchase     ConversionType = "product_purchase"      // 商品購入
	ConversionTypeEventTicketPurchase ConversionType = "event_ticket_purchase" // イベントチケット購入
	ConversionTypeSubscription        ConversionType = "subscription"          // サブスクリプション
	ConversionTypeReferral            ConversionType = "referral"              // 紹介
)

// NewConversionType 新しいConversionTypeを作成
func NewConversionType(s string) (ConversionType, error) {
	switch s {
	case "signup", "booking", "product_purchase", "event_ticket_purchase", "subscription", "referral":
		return ConversionType(s), nil
	default:
		return "", fmt.Errorf("invalid conversion type: %s", s)
	}
}

// String 文字列表現を返す
func (ct ConversionType) String() string {
	return string(ct)
}

// Valid 有効なコンバージョン種別かどうかを返す
func (ct ConversionType) Valid() bool {
	switch ct {
	case ConversionTypeSignup, ConversionTypeBooking, ConversionTypeProductPurchase,
		ConversionTypeEventTicketPurchase, ConversionTypeSubscription, ConversionTypeReferral:
		return true
	default:
		return false
	}
}
