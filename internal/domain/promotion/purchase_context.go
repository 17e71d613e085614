package promotion

import (
	"github.com/shopspring/decimal"
)

// PurchaseContext 購入コンテキスト（リクエストごとに生成される一時オブジェクト）
type PurchaseContext struct {
	Amount      decimal.Decimal
	PaymentType PaymentType
	UserID      string
	GymID       *string
	ProductID   *string
	PackageID   *string
}

// Validate 購入コンテキストの妥当性をチェックする
func (pc *PurchaseContext) Validate() error {
	if !pc.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !pc.PaymentType.Valid() {
		return ErrUnknownPaymentType
	}
	return nil
}
