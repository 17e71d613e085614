package promotion

import "errors"

var (
	// ErrPromotionNotFound プロモーションコードが見つからないエラー
	ErrPromotionNotFound = errors.New("promotion code not found")
	// ErrPromotionInactive プロモーションコードが無効化されているエラー
	ErrPromotionInactive = errors.New("promotion code inactive")
	// ErrPromotionNotDiscount 割引として使用できないレコードエラー
	ErrPromotionNotDiscount = errors.New("promotion is not a discount")
	// ErrPromotionNotStarted プロモーションの有効期間がまだ始まっていないエラー
	ErrPromotionNotStarted = errors.New("promotion not yet started")
	// ErrPromotionExpired プロモーションが期限切れエラー
	ErrPromotionExpired = errors.New("promotion expired")
	// ErrPromotionExhausted プロモーションの使用回数上限に達しているエラー
	ErrPromotionExhausted = errors.New("promotion max uses reached")
	// ErrPromotionNotApplicable 対象外の商品・ジム・パッケージへの適用エラー
	ErrPromotionNotApplicable = errors.New("promotion not applicable to this item")
	// ErrPromotionAlreadyUsed ユーザーが既にこのコードを使用済みエラー
	ErrPromotionAlreadyUsed = errors.New("promotion already used by this user")
	// ErrMissingCode コードが指定されていないエラー
	ErrMissingCode = errors.New("missing code")
	// ErrInvalidAmount 金額が正の数でないエラー
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrUnknownPaymentType 未知の購入種別エラー
	ErrUnknownPaymentType = errors.New("unknown payment type")
)
