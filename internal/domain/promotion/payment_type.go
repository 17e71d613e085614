package promotion

import (
	"fmt"
)

// PaymentType 購入種別を表す値オブジェクト
type PaymentType string

const (
	PaymentTypeGymBooking PaymentType = "gym_booking" // ジム予約
	PaymentTypeProduct    PaymentType = "product"     // 商品購入
	PaymentTypeTicket     PaymentType = "ticket"      // チケット購入
)

// NewPaymentType 新しいPaymentTypeを作成
func NewPaymentType(s string) (PaymentType, error) {
	switch s {
	case "gym_booking", "product", "ticket":
		return PaymentType(s), nil
	default:
		return "", fmt.Errorf("invalid payment type: %s", s)
	}
}

// String 文字列表現を返す
func (pt PaymentType) String() string {
	return string(pt)
}

// Valid 有効な購入種別かどうかを返す
func (pt PaymentType) Valid() bool {
	switch pt {
	case PaymentTypeGymBooking, PaymentTypeProduct, PaymentTypeTicket:
		return true
	default:
		return false
	}
}
