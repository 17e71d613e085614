package commission

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// CommissionRate コンバージョン種別ごとのコミッション率エンティティ
type CommissionRate struct {
	conversionType ConversionType
	rate           decimal.Decimal // 0〜100のパーセンテージ
	isActive       bool
	updatedAt      time.Time
}

// NewCommissionRate 新しいCommissionRateエンティティを作成
func NewCommissionRate(conversionType ConversionType, rate decimal.Decimal, isActive bool) (*CommissionRate, error) {
	if !conversionType.Valid() {
		return nil, errors.New("invalid conversion type")
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return nil, errors.New("rate must be between 0 and 100")
	}

	return &CommissionRate{
		conversionType: conversionType,
		rate:           rate,
		isActive:       isActive,
		updatedAt:      time.Now(),
	}, nil
}

// ConversionType コンバージョン種別を返す
func (cr *CommissionRate) ConversionType() ConversionType {
	return cr.conversionType
}

// Rate コミッション率を返す
func (cr *CommissionRate) Rate() decimal.Decimal {
	return cr.rate
}

// IsActive 有効かどうかを返す
func (cr *CommissionRate) IsActive() bool {
	return cr.isActive
}

// UpdatedAt 更新日時を返す
func (cr *CommissionRate) UpdatedAt() time.Time {
	return cr.updatedAt
}

// SetUpdatedAt 更新日時を設定（リポジトリから読み込んだ際に使用）
func (cr *CommissionRate) SetUpdatedAt(t time.Time) {
	cr.updatedAt = t
}

// MustNewCommissionRate テスト用ヘルパー: NewCommissionRateを呼び出し、エラーが発生した場合はpanicする
func MustNewCommissionRate(conversionType ConversionType, rate decimal.Decimal, isActive bool) *CommissionRate {
	cr, err := NewCommissionRate(conversionType, rate, isActive)
	if err != nil {
		panic(err)
	}
	return cr
}
