package commission

import (
	"context"
)

// RateRepository コミッション率リポジトリインターフェース
type RateRepository interface {
	// LoadActiveRates 有効なコミッション率を全て取得
	// ストアが利用できない場合はエラーを返す（呼び出し側がフォールバックする）
	LoadActiveRates(ctx context.Context) ([]*CommissionRate, error)
}

// ConversionRepository コンバージョン台帳リポジトリインターフェース
type ConversionRepository interface {
	// Save コンバージョンレコードを保存
	Save(ctx context.Context, record *ConversionRecord) error

	// FindByAffiliateID アフィリエイトのコンバージョンレコードを取得
	FindByAffiliateID(ctx context.Context, affiliateID string, limit, offset int) ([]*ConversionRecord, int, error)
}
