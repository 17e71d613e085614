package promotion

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"promo-server/internal/domain/money"
)

// Scope プロモーションの適用範囲（全てnilの場合は無制限）
type Scope struct {
	GymID     *string
	ProductID *string
	PackageID *string
}

// Promotion プロモーションコードエンティティ
type Promotion struct {
	id               string
	code             string
	title            string
	discountType     DiscountType
	discountValue    decimal.Decimal
	freeShipping     bool
	scope            Scope
	startDate        *time.Time // nil = 開始日なし
	endDate          *time.Time // nil = 期限なし
	maxUses          *int       // nil = 無制限
	currentUses      int
	priority         int
	singleUsePerUser bool
	isActive         bool
	createdAt        time.Time
	updatedAt        time.Time
}

// NewPromotion 新しいPromotionエンティティを作成
func NewPromotion(
	id string,
	code string,
	title string,
	discountType DiscountType,
	discountValue decimal.Decimal,
	freeShipping bool,
	scope Scope,
	startDate *time.Time,
	endDate *time.Time,
	maxUses *int,
	priority int,
	singleUsePerUser bool,
) (*Promotion, error) {
	if id == "" {
		return nil, errors.New("invalid id")
	}
	if code == "" {
		return nil, errors.New("invalid code")
	}
	if !discountType.Valid() {
		return nil, errors.New("invalid discount type")
	}
	if discountType == DiscountTypePercentage {
		if discountValue.IsNegative() || discountValue.GreaterThan(decimal.NewFromInt(100)) {
			return nil, errors.New("percentage discount value must be between 0 and 100")
		}
	}
	if discountValue.IsNegative() {
		return nil, errors.New("discount value must not be negative")
	}
	if maxUses != nil && *maxUses < 0 {
		return nil, errors.New("max uses must not be negative")
	}

	now := time.Now()
	return &Promotion{
		id:               id,
		code:             code,
		title:            title,
		discountType:     discountType,
		discountValue:    discountValue,
		freeShipping:     freeShipping,
		scope:            scope,
		startDate:        startDate,
		endDate:          endDate,
		maxUses:          maxUses,
		currentUses:      0,
		priority:         priority,
		singleUsePerUser: singleUsePerUser,
		isActive:         true,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// ID IDを返す
func (p *Promotion) ID() string {
	return p.id
}

// Code 公開コードを返す
func (p *Promotion) Code() string {
	return p.code
}

// Title タイトルを返す
func (p *Promotion) Title() string {
	return p.title
}

// DiscountType 割引タイプを返す
func (p *Promotion) DiscountType() DiscountType {
	return p.discountType
}

// DiscountValue 割引値を返す
func (p *Promotion) DiscountValue() decimal.Decimal {
	return p.discountValue
}

// FreeShipping 送料無料フラグを返す
func (p *Promotion) FreeShipping() bool {
	return p.freeShipping
}

// Scope 適用範囲を返す
func (p *Promotion) Scope() Scope {
	return p.scope
}

// StartDate 有効開始日時を返す
func (p *Promotion) StartDate() *time.Time {
	return p.startDate
}

// EndDate 有効期限を返す
func (p *Promotion) EndDate() *time.Time {
	return p.endDate
}

// MaxUses 最大使用回数を返す
func (p *Promotion) MaxUses() *int {
	return p.maxUses
}

// CurrentUses 現在の使用回数を返す
func (p *Promotion) CurrentUses() int {
	return p.currentUses
}

// Priority 優先度を返す（同一スコープに複数の候補がある場合の順位付けに使用）
func (p *Promotion) Priority() int {
	return p.priority
}

// SingleUsePerUser ユーザーごとに1回のみ使用可能かどうかを返す
func (p *Promotion) SingleUsePerUser() bool {
	return p.singleUsePerUser
}

// IsActive 有効かどうかを返す
func (p *Promotion) IsActive() bool {
	return p.isActive
}

// CreatedAt 作成日時を返す
func (p *Promotion) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt 更新日時を返す
func (p *Promotion) UpdatedAt() time.Time {
	return p.updatedAt
}

// Usability 使用可能かどうかをチェックし、使用できない場合はその理由を返す
// 各条件は個別のエラーを返す（呼び出し側がユーザーに具体的な理由を提示するため）
func (p *Promotion) Usability(now time.Time) error {
	if !p.isActive {
		return ErrPromotionInactive
	}
	if !p.discountType.IsDiscount() {
		return ErrPromotionNotDiscount
	}
	if p.startDate != nil && now.Before(*p.startDate) {
		return ErrPromotionNotStarted
	}
	// endDateちょうどは使用可能
	if p.endDate != nil && now.After(*p.endDate) {
		return ErrPromotionExpired
	}
	if p.maxUses != nil && p.currentUses >= *p.maxUses {
		return ErrPromotionExhausted
	}
	return nil
}

// AppliesTo 購入コンテキストが適用範囲に含まれるかチェックする
func (p *Promotion) AppliesTo(pc *PurchaseContext) error {
	if p.scope.GymID != nil {
		if pc.GymID == nil || *pc.GymID != *p.scope.GymID {
			return ErrPromotionNotApplicable
		}
	}
	if p.scope.ProductID != nil {
		if pc.ProductID == nil || *pc.ProductID != *p.scope.ProductID {
			return ErrPromotionNotApplicable
		}
	}
	if p.scope.PackageID != nil {
		if pc.PackageID == nil || *pc.PackageID != *p.scope.PackageID {
			return ErrPromotionNotApplicable
		}
	}
	return nil
}

// Discount 購入金額に対する割引額と送料無料フラグを計算する
// 割引額は必ず 0 <= discount <= amount に収まる
func (p *Promotion) Discount(amount decimal.Decimal) (decimal.Decimal, bool) {
	freeShipping := p.freeShipping || p.discountType == DiscountTypeFreeShipping

	switch p.discountType {
	case DiscountTypePercentage:
		discount := money.PercentOf(amount, p.discountValue)
		return money.Clamp(discount, decimal.Zero, amount), freeShipping
	case DiscountTypeFixedAmount:
		return money.Min(p.discountValue, amount), freeShipping
	case DiscountTypeFreeShipping:
		return decimal.Zero, true
	default:
		return decimal.Zero, freeShipping
	}
}

// SetCurrentUses 現在の使用回数を設定（リポジトリから読み込んだ際に使用）
func (p *Promotion) SetCurrentUses(uses int) {
	p.currentUses = uses
}

// SetActive 有効フラグを設定（リポジトリから読み込んだ際に使用）
func (p *Promotion) SetActive(active bool) {
	p.isActive = active
}

// SetCreatedAt 作成日時を設定（リポジトリから読み込んだ際に使用）
func (p *Promotion) SetCreatedAt(t time.Time) {
	p.createdAt = t
}

// SetUpdatedAt 更新日時を設定（リポジトリから読み込んだ際に使用）
func (p *Promotion) SetUpdatedAt(t time.Time) {
	p.updatedAt = t
}

// MustNewPromotion テスト用ヘルパー: NewPromotionを呼び出し、エラーが発生した場合はpanicする
func MustNewPromotion(
	id string,
	code string,
	title string,
	discountType DiscountType,
	discountValue decimal.Decimal,
	freeShipping bool,
	scope Scope,
	startDate *time.Time,
	endDate *time.Time,
	maxUses *int,
	priority int,
	singleUsePerUser bool,
) *Promotion {
	p, err := NewPromotion(id, code, title, discountType, discountValue, freeShipping, scope, startDate, endDate, maxUses, priority, singleUsePerUser)
	if err != nil {
		panic(err)
	}
	return p
}
