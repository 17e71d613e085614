package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"promo-server/internal/domain/commission"
)

// MockRateRepository モックコミッション率リポジトリ
type MockRateRepository struct {
	mock.Mock
}

func (m *MockRateRepository) LoadActiveRates(ctx context.Context) ([]*commission.CommissionRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*commission.CommissionRate), args.Error(1)
}

func TestRateResolver_GetRate(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: ストアから読み込んだレートが返る", func(t *testing.T) {
		repo := new(MockRateRepository)
		repo.On("LoadActiveRates", mock.Anything).Return([]*commission.CommissionRate{
			commission.MustNewCommissionRate(commission.ConversionTypeBooking, decimal.NewFromInt(12), true),
		}, nil).Once()

		resolver := NewRateResolver(repo, 5*time.Minute)

		rate := resolver.GetRate(ctx, commission.ConversionTypeBooking)
		assert.True(t, decimal.NewFromInt(12).Equal(rate))
		repo.AssertExpectations(t)
	})

	t.Run("正常系: ストアにない種別は静的フォールバックにマージされる", func(t *testing.T) {
		repo := new(MockRateRepository)
		repo.On("LoadActiveRates", mock.Anything).Return([]*commission.CommissionRate{
			commission.MustNewCommissionRate(commission.ConversionTypeBooking, decimal.NewFromInt(12), true),
		}, nil).Once()

		resolver := NewRateResolver(repo, 5*time.Minute)
		resolver.GetRate(ctx, commission.ConversionTypeBooking)

		// subscriptionはストアにないため静的フォールバック（15%）
		rate := resolver.GetRate(ctx, commission.ConversionTypeSubscription)
		assert.True(t, decimal.NewFromInt(15).Equal(rate))
		repo.AssertExpectations(t)
	})

	t.Run("正常系: 非アクティブなレートはマージされず静的フォールバックが使われる", func(t *testing.T) {
		repo := new(MockRateRepository)
		repo.On("LoadActiveRates", mock.Anything).Return([]*commission.CommissionRate{
			commission.MustNewCommissionRate(commission.ConversionTypeBooking, decimal.NewFromInt(50), false),
		}, nil).Once()

		resolver := NewRateResolver(repo, 5*time.Minute)

		rate := resolver.GetRate(ctx, commission.ConversionTypeBooking)
		assert.True(t, decimal.NewFromInt(10).Equal(rate))
	})

	t.Run("正常系: TTL内はストアに再アクセスしない", func(t *testing.T) {
		repo := new(MockRateRepository)
		repo.On("LoadActiveRates", mock.Anything).Return([]*commission.CommissionRate{
			commission.MustNewCommissionRate(commission.ConversionTypeBooking, decimal.NewFromInt(12), true),
		}, nil).Once() // 1回だけ呼ばれる

		resolver := NewRateResolver(repo, 5*time.Minute)

		resolver.GetRate(ctx, commission.ConversionTypeBooking)
		resolver.GetRate(ctx, commission.ConversionTypeBooking)
		resolver.GetRate(ctx, commission.ConversionTypeSignup)

		repo.AssertNumberOfCalls(t, "LoadActiveRates", 1)
	})

	t.Run("正常系: TTL経過後はストアに再アクセスする", func(t *testing.T) {
		repo := new(MockRateRepository)
		repo.On("LoadActiveRates", mock.Anything).Return([]*commission.CommissionRate{
			commission.MustNewCommissionRate(commission.ConversionTypeBooking, decimal.NewFromInt(12), true),
		}, nil).Twice()

		resolver := NewRateResolver(repo, 5*time.Minute)

		current := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		resolver.now = func() time.Time { return current }

		resolver.GetRate(ctx, commission.ConversionTypeBooking)

		// 5分1秒経過
		current = current.Add(5*time.Minute + time.Second)
		resolver.GetRate(ctx, commission.ConversionTypeBooking)

		repo.AssertNumberOfCalls(t, "LoadActiveRates", 2)
	})

	t.Run("異常系: ストア障害時はキャッシュなしなら静的フォールバックを返す", func(t *testing.T) {
		repo := new(MockRateRepository)
		repo.On("LoadActiveRates", mock.Anything).Return(nil, errors.New("connection refused"))

		resolver := NewRateResolver(repo, 5*time.Minute)

		rate := resolver.GetRate(ctx, commission.ConversionTypeSubscription)
		assert.True(t, decimal.NewFromInt(15).Equal(rate))
	})

	t.Run("異常系: ストア障害時はstaleなキャッシュ値を優先する", func(t *testing.T) {
		repo := new(MockRateRepository)
		repo.On("LoadActiveRates", mock.Anything).Return([]*commission.CommissionRate{
			commission.MustNewCommissionRate(commission.ConversionTypeBooking, decimal.NewFromInt(12), true),
		}, nil).Once()
		repo.On("LoadActiveRates", mock.Anything).Return(nil, errors.New("connection refused"))

		resolver := NewRateResolver(repo, 5*time.Minute)

		current := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		resolver.now = func() time.Time { return current }

		resolver.GetRate(ctx, commission.ConversionTypeBooking)

		// TTL経過後に再読み込みが失敗してもstale値（12%）が返る
		current = current.Add(10 * time.Minute)
		rate := resolver.GetRate(ctx, commission.ConversionTypeBooking)
		assert.True(t, decimal.NewFromInt(12).Equal(rate))
	})
}

func TestRateResolver_GetRateSync(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: キャッシュがない場合は静的フォールバックを返し、再読み込みしない", func(t *testing.T) {
		repo := new(MockRateRepository)

		resolver := NewRateResolver(repo, 5*time.Minute)

		rate := resolver.GetRateSync(commission.ConversionTypeBooking)
		assert.True(t, decimal.NewFromInt(10).Equal(rate))
		repo.AssertNotCalled(t, "LoadActiveRates")
	})

	t.Run("正常系: キャッシュ済みの値を返す", func(t *testing.T) {
		repo := new(MockRateRepository)
		repo.On("LoadActiveRates", mock.Anything).Return([]*commission.CommissionRate{
			commission.MustNewCommissionRate(commission.ConversionTypeBooking, decimal.NewFromInt(12), true),
		}, nil).Once()

		resolver := NewRateResolver(repo, 5*time.Minute)
		resolver.GetRate(ctx, commission.ConversionTypeBooking)

		rate := resolver.GetRateSync(commission.ConversionTypeBooking)
		assert.True(t, decimal.NewFromInt(12).Equal(rate))
		repo.AssertNumberOfCalls(t, "LoadActiveRates", 1)
	})
}

func TestRateResolver_Invalidate(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRateRepository)
	repo.On("LoadActiveRates", mock.Anything).Return([]*commission.CommissionRate{
		commission.MustNewCommissionRate(commission.ConversionTypeBooking, decimal.NewFromInt(12), true),
	}, nil).Twice()

	resolver := NewRateResolver(repo, 5*time.Minute)

	resolver.GetRate(ctx, commission.ConversionTypeBooking)
	repo.AssertNumberOfCalls(t, "LoadActiveRates", 1)

	// Invalidate後はTTL内でも再読み込みされる
	resolver.Invalidate()
	resolver.GetRate(ctx, commission.ConversionTypeBooking)
	repo.AssertNumberOfCalls(t, "LoadActiveRates", 2)
}

func TestRateResolver_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRateRepository)
	repo.On("LoadActiveRates", mock.Anything).Return([]*commission.CommissionRate{
		commission.MustNewCommissionRate(commission.ConversionTypeBooking, decimal.NewFromInt(12), true),
	}, nil)

	resolver := NewRateResolver(repo, 5*time.Minute)

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				rate := resolver.GetRate(ctx, commission.ConversionTypeBooking)
				assert.False(t, rate.IsNegative())
				resolver.GetRateSync(commission.ConversionTypeSignup)
			}
		}()
	}
	go func() {
		defer func() { done <- struct{}{} }()
		for j := 0; j < 10; j++ {
			resolver.Invalidate()
		}
	}()

	for i := 0; i < 11; i++ {
		<-done
	}
}
