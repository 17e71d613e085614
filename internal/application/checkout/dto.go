package checkout

import (
	"time"

	"github.com/shopspring/decimal"
)

// 拒否理由（ユーザーに提示される文言、理由ごとに区別される）
const (
	ReasonMissingCode        = "missing code"
	ReasonInvalidAmount      = "amount must be positive"
	ReasonUnknownPaymentType = "unknown payment type"
	ReasonCodeNotFound       = "code not found"
	ReasonInactive           = "promotion code is inactive"
	ReasonNotDiscount        = "code is not a discount"
	ReasonNotStarted         = "promotion has not started yet"
	ReasonExpired            = "promotion has expired"
	ReasonExhausted          = "usage limit reached"
	ReasonNotApplicable      = "not applicable to this item"
	ReasonAlreadyUsed        = "already used by this user"
)

// ValidateCodeRequest コード検証リクエスト
type ValidateCodeRequest struct {
	Code        string
	UserID      string
	Amount      decimal.Decimal
	PaymentType string
	GymID       *string
	ProductID   *string
	PackageID   *string
}

// ValidateCodeResponse コード検証レスポンス
// 業務上の拒否は失敗ではなく、IsValid=falseと理由を持つ正常なレスポンスとして返る
type ValidateCodeResponse struct {
	IsValid         bool
	PromotionID     string
	Code            string
	Title           string
	OriginalPrice   decimal.Decimal
	DiscountAmount  decimal.Decimal
	FinalPrice      decimal.Decimal
	FreeShipping    bool
	RejectionReason string
}

// RedeemCodeRequest コード使用確定リクエスト
type RedeemCodeRequest struct {
	Code        string
	UserID      string
	Amount      decimal.Decimal
	PaymentType string
	GymID       *string
	ProductID   *string
	PackageID   *string
}

// RedeemCodeResponse コード使用確定レスポンス
type RedeemCodeResponse struct {
	PromotionID    string
	Code           string
	Title          string
	OriginalPrice  decimal.Decimal
	DiscountAmount decimal.Decimal
	FinalPrice     decimal.Decimal
	FreeShipping   bool
	RedeemedAt     time.Time
}

// ListCandidatesRequest 適用候補一覧取得リクエスト
type ListCandidatesRequest struct {
	GymID     *string
	ProductID *string
	PackageID *string
}

// CandidateView 適用候補（優先度順）
type CandidateView struct {
	PromotionID   string
	Code          string
	Title         string
	DiscountType  string
	DiscountValue decimal.Decimal
	FreeShipping  bool
	Priority      int
}

// ListCandidatesResponse 適用候補一覧取得レスポンス
type ListCandidatesResponse struct {
	Candidates []*CandidateView
}
