package commission

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ConversionRecord コンバージョンとコミッションの台帳レコードエンティティ
// 計算に使用した率を金額と一緒に保存する（後から率が変更されても過去のレコードは変わらない）
type ConversionRecord struct {
	id               string
	affiliateID      string
	conversionType   ConversionType
	conversionValue  decimal.Decimal
	commissionRate   decimal.Decimal
	commissionAmount decimal.Decimal
	createdAt        time.Time
}

// NewConversionRecord 新しいConversionRecordエンティティを作成
func NewConversionRecord(
	id string,
	affiliateID string,
	conversionType ConversionType,
	conversionValue decimal.Decimal,
	commissionRate decimal.Decimal,
	commissionAmount decimal.Decimal,
) (*ConversionRecord, error) {
	if id == "" {
		return nil, errors.New("invalid id")
	}
	if affiliateID == "" {
		return nil, errors.New("invalid affiliate id")
	}
	if !conversionType.Valid() {
		return nil, errors.New("invalid conversion type")
	}
	if conversionValue.IsNegative() {
		return nil, errors.New("conversion value must not be negative")
	}
	if commissionAmount.IsNegative() {
		return nil, errors.New("commission amount must not be negative")
	}

	return &ConversionRecord{
		id:               id,
		affiliateID:      affiliateID,
		conversionType:   conversionType,
		conversionValue:  conversionValue,
		commissionRate:   commissionRate,
		commissionAmount: commissionAmount,
		createdAt:        time.Now(),
	}, nil
}

// ID IDを返す
func (cr *ConversionRecord) ID() string {
	return cr.id
}

// AffiliateID アフィリエイトIDを返す
func (cr *ConversionRecord) AffiliateID() string {
	return cr.affiliateID
}

// ConversionType コンバージョン種別を返す
func (cr *ConversionRecord) ConversionType() ConversionType {
	return cr.conversionType
}

// ConversionValue コンバージョン金額を返す
func (cr *ConversionRecord) ConversionValue() decimal.Decimal {
	return cr.conversionValue
}

// CommissionRate 計算に使用したコミッション率を返す
func (cr *ConversionRecord) CommissionRate() decimal.Decimal {
	return cr.commissionRate
}

// CommissionAmount コミッション額を返す
func (cr *ConversionRecord) CommissionAmount() decimal.Decimal {
	return cr.commissionAmount
}

// CreatedAt 作成日時を返す
func (cr *ConversionRecord) CreatedAt() time.Time {
	return cr.createdAt
}

// SetCreatedAt 作成日時を設定（リポジトリから読み込んだ際に使用）
func (cr *ConversionRecord) SetCreatedAt(t time.Time) {
	cr.createdAt = t
}
