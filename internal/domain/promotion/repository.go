package promotion

import (
	"context"
	"database/sql"
	"time"
)

// PromotionRepository プロモーションコードリポジトリインターフェース
type PromotionRepository interface {
	// FindByCode 公開コードでプロモーションを取得
	FindByCode(ctx context.Context, code string) (*Promotion, error)

	// HasUserRedeemed ユーザーが既にこのプロモーションを使用済みかチェック
	HasUserRedeemed(ctx context.Context, userID string, promotionID string) (bool, error)

	// FindActiveForScope スコープに適用可能な有効プロモーションを取得
	// priority降順、作成日時降順、ID昇順で並べる（同点時の順序を決定的にするため）
	FindActiveForScope(ctx context.Context, scope Scope, now time.Time) ([]*Promotion, error)

	// RegisterRedemption 使用回数のインクリメントとユーザー使用履歴の記録を行う
	// インクリメントは current_uses < max_uses を条件とした単一のUPDATEで行うこと
	// （バリデーション時点のチェックだけでは同時リクエストによる上限超過を防げない）
	// 上限に達していた場合は ErrPromotionExhausted を返す
	RegisterRedemption(ctx context.Context, tx *sql.Tx, promotionID string, userID string) error
}

// TransactionManager トランザクション管理インターフェース
type TransactionManager interface {
	// WithTransaction トランザクション内で関数を実行
	WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}
