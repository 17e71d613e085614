package otel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestNewMetrics(t *testing.T) {
	// Noopメータープロバイダーを使用
	mp := noop.NewMeterProvider()
	otel.SetMeterProvider(mp)

	metrics, err := NewMetrics("test-meter")
	require.NoError(t, err)
	assert.NotNil(t, metrics)

	assert.NotNil(t, metrics.ValidationCount)
	assert.NotNil(t, metrics.RejectionCount)
	assert.NotNil(t, metrics.RedemptionCount)
	assert.NotNil(t, metrics.CommissionCount)
	assert.NotNil(t, metrics.CommissionAmount)
	assert.NotNil(t, metrics.RequestCount)
	assert.NotNil(t, metrics.ResponseTime)
	assert.NotNil(t, metrics.ErrorCount)
}

func TestMetrics_RecordValidation(t *testing.T) {
	mp := noop.NewMeterProvider()
	otel.SetMeterProvider(mp)

	metrics, err := NewMetrics("test-meter")
	require.NoError(t, err)

	ctx := context.Background()

	// 検証結果を記録
	metrics.RecordValidation(ctx, "valid")
	metrics.RecordValidation(ctx, "invalid")

	// エラーが発生しないことを確認
}

func TestMetrics_RecordRejection(t *testing.T) {
	mp := noop.NewMeterProvider()
	otel.SetMeterProvider(mp)

	metrics, err := NewMetrics("test-meter")
	require.NoError(t, err)

	ctx := context.Background()

	// 異なる拒否理由を記録
	metrics.RecordRejection(ctx, "code not found")
	metrics.RecordRejection(ctx, "promotion has expired")
	metrics.RecordRejection(ctx, "usage limit reached")

	// エラーが発生しないことを確認
}

func TestMetrics_RecordRedemption(t *testing.T) {
	mp := noop.NewMeterProvider()
	otel.SetMeterProvider(mp)

	metrics, err := NewMetrics("test-meter")
	require.NoError(t, err)

	ctx := context.Background()

	// コード使用確定を記録
	metrics.RecordRedemption(ctx, "promo-1")

	// エラーが発生しないことを確認
}

func TestMetrics_RecordCommission(t *testing.T) {
	mp := noop.NewMeterProvider()
	otel.SetMeterProvider(mp)

	metrics, err := NewMetrics("test-meter")
	require.NoError(t, err)

	ctx := context.Background()

	// 異なるコンバージョン種別のコミッションを記録
	metrics.RecordCommission(ctx, "booking", 100.0)
	metrics.RecordCommission(ctx, "product_purchase", 8.5)
	metrics.RecordCommission(ctx, "signup", 0)

	// エラーが発生しないことを確認
}

func TestMetrics_RecordRequest(t *testing.T) {
	mp := noop.NewMeterProvider()
	otel.SetMeterProvider(mp)

	metrics, err := NewMetrics("test-meter")
	require.NoError(t, err)

	ctx := context.Background()

	// 異なるHTTPメソッドを記録
	metrics.RecordRequest(ctx, "POST", "/api/v1/checkout/validate-code")
	metrics.RecordRequest(ctx, "POST", "/api/v1/commissions/compute")
	metrics.RecordRequest(ctx, "GET", "/api/v1/referral-codes/MT12AB34CD")

	// エラーが発生しないことを確認
}

func TestMetrics_RecordResponseTime(t *testing.T) {
	mp := noop.NewMeterProvider()
	otel.SetMeterProvider(mp)

	metrics, err := NewMetrics("test-meter")
	require.NoError(t, err)

	ctx := context.Background()

	// 異なるパスとレスポンス時間を記録
	metrics.RecordResponseTime(ctx, "POST", "/api/v1/checkout/validate-code", 0.05)
	metrics.RecordResponseTime(ctx, "POST", "/api/v1/conversions", 0.15)

	// エラーが発生しないことを確認
}

func TestMetrics_RecordError(t *testing.T) {
	mp := noop.NewMeterProvider()
	otel.SetMeterProvider(mp)

	metrics, err := NewMetrics("test-meter")
	require.NoError(t, err)

	ctx := context.Background()

	// 異なるエラータイプを記録
	metrics.RecordError(ctx, "database_error")
	metrics.RecordError(ctx, "validation_error")
	metrics.RecordError(ctx, "not_found_error")

	// エラーが発生しないことを確認
}

func TestMetrics_MultipleCalls(t *testing.T) {
	mp := noop.NewMeterProvider()
	otel.SetMeterProvider(mp)

	metrics, err := NewMetrics("test-meter")
	require.NoError(t, err)

	ctx := context.Background()

	// 複数回メトリクスを記録
	for i := 0; i < 10; i++ {
		metrics.RecordValidation(ctx, "valid")
		metrics.RecordCommission(ctx, "booking", float64(100*i))
		metrics.RecordRequest(ctx, "POST", "/api/v1/checkout/validate-code")
		metrics.RecordResponseTime(ctx, "POST", "/api/v1/checkout/validate-code", 0.1)
	}

	// エラーが発生しないことを確認
}
