package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"promo-server/internal/domain/commission"
	"promo-server/internal/domain/promotion"
)

// MockPromotionRepository モックプロモーションリポジトリ
type MockPromotionRepository struct {
	mock.Mock
}

func (m *MockPromotionRepository) FindByCode(ctx context.Context, code string) (*promotion.Promotion, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*promotion.Promotion), args.Error(1)
}

func (m *MockPromotionRepository) HasUserRedeemed(ctx context.Context, userID string, promotionID string) (bool, error) {
	args := m.Called(ctx, userID, promotionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPromotionRepository) FindActiveForScope(ctx context.Context, scope promotion.Scope, now time.Time) ([]*promotion.Promotion, error) {
	args := m.Called(ctx, scope, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*promotion.Promotion), args.Error(1)
}

func (m *MockPromotionRepository) RegisterRedemption(ctx context.Context, tx *sql.Tx, promotionID string, userID string) error {
	args := m.Called(ctx, tx, promotionID, userID)
	return args.Error(0)
}

// MockTransactionManager モックトランザクションマネージャー
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(nil)
}

// MockConversionRepository モックコンバージョンリポジトリ
type MockConversionRepository struct {
	mock.Mock
}

func (m *MockConversionRepository) Save(ctx context.Context, record *commission.ConversionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockConversionRepository) FindByAffiliateID(ctx context.Context, affiliateID string, limit, offset int) ([]*commission.ConversionRecord, int, error) {
	args := m.Called(ctx, affiliateID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*commission.ConversionRecord), args.Int(1), args.Error(2)
}

// MockRateProvider モック料率プロバイダー
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) GetRate(ctx context.Context, conversionType commission.ConversionType) decimal.Decimal {
	args := m.Called(ctx, conversionType)
	return args.Get(0).(decimal.Decimal)
}

// MockAffiliateRepository モックアフィリエイトリポジトリ
type MockAffiliateRepository struct {
	mock.Mock
}

func (m *MockAffiliateRepository) FindBySuffix(ctx context.Context, suffix string) (string, error) {
	args := m.Called(ctx, suffix)
	return args.String(0), args.Error(1)
}
