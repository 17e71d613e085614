package service

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"promo-server/internal/domain/commission"
)

// DefaultRateCacheTTL キャッシュの既定の有効期間
const DefaultRateCacheTTL = 5 * time.Minute

// RateResolver コミッション率を解決するドメインサービス
// レートストアの結果を一定時間キャッシュし、ストアが利用できない場合は
// 静的フォールバック（またはstaleなキャッシュ値）に縮退する。決してエラーを返さない。
type RateResolver struct {
	rateRepo commission.RateRepository
	ttl      time.Duration

	// ratesとfetchedAtは必ずペアで置き換える（新しいタイムスタンプ+古い値の
	// 組み合わせを読者に見せないため）
	mu        sync.Mutex
	rates     map[commission.ConversionType]decimal.Decimal
	fetchedAt time.Time

	now func() time.Time
}

// NewRateResolver 新しいRateResolverを作成
func NewRateResolver(rateRepo commission.RateRepository, ttl time.Duration) *RateResolver {
	if ttl <= 0 {
		ttl = DefaultRateCacheTTL
	}
	return &RateResolver{
		rateRepo: rateRepo,
		ttl:      ttl,
		now:      time.Now,
	}
}

// GetRate 指定したコンバージョン種別のコミッション率を解決する
// キャッシュが新しければキャッシュから、古ければストアから再読み込みする
// ストアが失敗した場合はキャッシュを更新せず、staleなキャッシュ値か静的フォールバックを返す
func (r *RateResolver) GetRate(ctx context.Context, conversionType commission.ConversionType) decimal.Decimal {
	r.mu.Lock()
	if r.rates != nil && r.now().Sub(r.fetchedAt) < r.ttl {
		rate, ok := r.rates[conversionType]
		r.mu.Unlock()
		if ok {
			return rate
		}
		return commission.DefaultRate(conversionType)
	}
	r.mu.Unlock()

	loaded, err := r.rateRepo.LoadActiveRates(ctx)
	if err != nil {
		// stale-but-presentをフォールバックより優先する
		r.mu.Lock()
		rate, ok := r.rates[conversionType]
		r.mu.Unlock()
		if ok {
			return rate
		}
		return commission.DefaultRate(conversionType)
	}

	merged := mergeRates(loaded)

	r.mu.Lock()
	r.rates = merged
	r.fetchedAt = r.now()
	rate, ok := r.rates[conversionType]
	r.mu.Unlock()

	if ok {
		return rate
	}
	return commission.DefaultRate(conversionType)
}

// GetRateSync キャッシュ済みの値または静的フォールバックを返す（再読み込みは行わない）
// 非同期処理を待てない呼び出し元向け
func (r *RateResolver) GetRateSync(conversionType commission.ConversionType) decimal.Decimal {
	r.mu.Lock()
	rate, ok := r.rates[conversionType]
	r.mu.Unlock()

	if ok {
		return rate
	}
	return commission.DefaultRate(conversionType)
}

// Invalidate キャッシュを即座にクリアする（管理画面でレート変更後に呼ばれ、次回読み込みを強制する）
func (r *RateResolver) Invalidate() {
	r.mu.Lock()
	r.rates = nil
	r.fetchedAt = time.Time{}
	r.mu.Unlock()
}

// mergeRates 静的フォールバックの上にストアから読み込んだレートを上書きマージする
// ストアに存在しない種別は静的フォールバックのまま残る
func mergeRates(loaded []*commission.CommissionRate) map[commission.ConversionType]decimal.Decimal {
	merged := commission.DefaultRates()
	for _, rate := range loaded {
		if !rate.IsActive() {
			continue
		}
		merged[rate.ConversionType()] = rate.Rate()
	}
	return merged
}
