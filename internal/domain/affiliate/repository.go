package affiliate

import (
	"context"
)

// AffiliateRepository アフィリエイトIDリポジトリインターフェース
type AffiliateRepository interface {
	// FindBySuffix 紹介コードのサフィックスからアフィリエイトIDを取得
	// 見つからない場合はErrAffiliateNotFoundを返す
	FindBySuffix(ctx context.Context, suffix string) (string, error)
}
