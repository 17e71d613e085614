package promotion

import (
	"fmt"
)

// DiscountType 割引タイプを表す値オブジェクト
type DiscountType string

const (
	DiscountTypePercentage   DiscountType = "percentage"    // 割合割引
	DiscountTypeFixedAmount  DiscountType = "fixed_amount"  // 固定額割引
	DiscountTypeFreeShipping DiscountType = "free_shipping" // 送料無料
	DiscountTypeNone         DiscountType = "none"          // 割引なし（使用不可レコード）
)

// NewDiscountType 新しいDiscountTypeを作成
func NewDiscountType(s string) (DiscountType, error) {
	switch s {
	case "percentage", "fixed_amount", "free_shipping", "none":
		return DiscountType(s), nil
	case "":
		// discountType未設定のレコードはnone扱い
		return DiscountTypeNone, nil
	default:
		return "", fmt.Errorf("invalid discount type: %s", s)
	}
}

// String 文字列表現を返す
func (dt DiscountType) String() string {
	return string(dt)
}

// Valid 有効な割引タイプかどうかを返す
func (dt DiscountType) Valid() bool {
	switch dt {
	case DiscountTypePercentage, DiscountTypeFixedAmount, DiscountTypeFreeShipping, DiscountTypeNone:
		return true
	default:
		return false
	}
}

// IsDiscount 実際の割引として使用可能なタイプかどうかを返す
func (dt DiscountType) IsDiscount() bool {
	switch dt {
	case DiscountTypePercentage, DiscountTypeFixedAmount, DiscountTypeFreeShipping:
		return true
	default:
		return false
	}
}
