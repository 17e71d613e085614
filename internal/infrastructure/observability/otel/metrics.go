package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics メトリクス定義
type Metrics struct {
	// コード検証数（結果別）
	ValidationCount metric.Int64Counter

	// コード検証の拒否数（理由別）
	RejectionCount metric.Int64Counter

	// コード使用確定数
	RedemptionCount metric.Int64Counter

	// コミッション計算数
	CommissionCount metric.Int64Counter

	// コミッション額の分布
	CommissionAmount metric.Float64Histogram

	// リクエスト数
	RequestCount metric.Int64Counter

	// レスポンス時間
	ResponseTime metric.Float64Histogram

	// エラー率
	ErrorCount metric.Int64Counter
}

// NewMetrics 新しいMetricsを作成
func NewMetrics(meterName string) (*Metrics, error) {
	meter := otel.Meter(meterName)

	validationCount, err := meter.Int64Counter(
		"promotion_validations_total",
		metric.WithDescription("Total number of promotion code validations"),
	)
	if err != nil {
		return nil, err
	}

	rejectionCount, err := meter.Int64Counter(
		"promotion_rejections_total",
		metric.WithDescription("Total number of rejected promotion code validations"),
	)
	if err != nil {
		return nil, err
	}

	redemptionCount, err := meter.Int64Counter(
		"promotion_redemptions_total",
		metric.WithDescription("Total number of confirmed promotion redemptions"),
	)
	if err != nil {
		return nil, err
	}

	commissionCount, err := meter.Int64Counter(
		"commissions_total",
		metric.WithDescription("Total number of commission computations"),
	)
	if err != nil {
		return nil, err
	}

	commissionAmount, err := meter.Float64Histogram(
		"commission_amount",
		metric.WithDescription("Commission amount distribution"),
	)
	if err != nil {
		return nil, err
	}

	requestCount, err := meter.Int64Counter(
		"requests_total",
		metric.WithDescription("Total number of requests"),
	)
	if err != nil {
		return nil, err
	}

	responseTime, err := meter.Float64Histogram(
		"response_time_seconds",
		metric.WithDescription("Response time in seconds"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"errors_total",
		metric.WithDescription("Total number of errors"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		ValidationCount:  validationCount,
		RejectionCount:   rejectionCount,
		RedemptionCount:  redemptionCount,
		CommissionCount:  commissionCount,
		CommissionAmount: commissionAmount,
		RequestCount:     requestCount,
		ResponseTime:     responseTime,
		ErrorCount:       errorCount,
	}, nil
}

// RecordValidation コード検証を記録
func (m *Metrics) RecordValidation(ctx context.Context, result string) {
	m.ValidationCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("result", result),
		),
	)
}

// RecordRejection コード検証の拒否を記録
func (m *Metrics) RecordRejection(ctx context.Context, reason string) {
	m.RejectionCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("reason", reason),
		),
	)
}

// RecordRedemption コード使用確定を記録
func (m *Metrics) RecordRedemption(ctx context.Context, promotionID string) {
	m.RedemptionCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("promotion_id", promotionID),
		),
	)
}

// RecordCommission コミッション計算を記録
// amountはメトリクス用の近似値（会計処理はdecimal側の値のみを使用する）
func (m *Metrics) RecordCommission(ctx context.Context, conversionType string, amount float64) {
	m.CommissionCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("conversion_type", conversionType),
		),
	)
	m.CommissionAmount.Record(ctx, amount,
		metric.WithAttributes(
			attribute.String("conversion_type", conversionType),
		),
	)
}

// RecordRequest リクエストを記録
func (m *Metrics) RecordRequest(ctx context.Context, method, path string) {
	m.RequestCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("method", method),
			attribute.String("path", path),
		),
	)
}

// RecordResponseTime レスポンス時間を記録
func (m *Metrics) RecordResponseTime(ctx context.Context, method, path string, duration float64) {
	m.ResponseTime.Record(ctx, duration,
		metric.WithAttributes(
			attribute.String("method", method),
			attribute.String("path", path),
		),
	)
}

// RecordError エラーを記録
func (m *Metrics) RecordError(ctx context.Context, errorType string) {
	m.ErrorCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("error_type", errorType),
		),
	)
}
