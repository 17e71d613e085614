package settlement

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"promo-server/internal/domain/commission"
	"promo-server/internal/domain/money"
	otelinfra "promo-server/internal/infrastructure/observability/otel"
)

// RateProvider コミッション率の解決インターフェース
// 率の解決は決して失敗しない（キャッシュか静的フォールバックに縮退する）
type RateProvider interface {
	GetRate(ctx context.Context, conversionType commission.ConversionType) decimal.Decimal
}

// SettlementApplicationService コミッション計算・コンバージョン台帳アプリケーションサービス
type SettlementApplicationService struct {
	rateProvider   RateProvider
	conversionRepo commission.ConversionRepository
	logger         *otelinfra.Logger
	metrics        *otelinfra.Metrics
	tracer         trace.Tracer
}

// NewSettlementApplicationService 新しいSettlementApplicationServiceを作成
func NewSettlementApplicationService(
	rateProvider RateProvider,
	conversionRepo commission.ConversionRepository,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
) *SettlementApplicationService {
	return &SettlementApplicationService{
		rateProvider:   rateProvider,
		conversionRepo: conversionRepo,
		logger:         logger,
		metrics:        metrics,
		tracer:         otel.Tracer("settlement-service"),
	}
}

// ComputeCommission コンバージョン金額に対するコミッションを計算する
// 金額が0以下の場合は率の解決を行わず、率0・コミッション0を返す
func (s *SettlementApplicationService) ComputeCommission(ctx context.Context, req *ComputeCommissionRequest) (*ComputeCommissionResponse, error) {
	ctx, span := s.tracer.Start(ctx, "SettlementApplicationService.ComputeCommission")
	defer span.End()

	span.SetAttributes(
		attribute.String("conversion_type", req.ConversionType),
		attribute.String("conversion_value", req.ConversionValue.String()),
	)

	conversionType, err := commission.NewConversionType(req.ConversionType)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, commission.ErrInvalidConversionType
	}

	rate, amount := s.compute(ctx, conversionType, req.ConversionValue)

	commissionFloat, _ := amount.Float64()
	s.metrics.RecordCommission(ctx, conversionType.String(), commissionFloat)

	return &ComputeCommissionResponse{
		ConversionType:   conversionType.String(),
		ConversionValue:  req.ConversionValue,
		CommissionRate:   rate,
		CommissionAmount: amount,
	}, nil
}

// RecordConversion コンバージョンを計算し、台帳に記録する
// 計算に使用した率を金額と一緒に保存するため、後から率が変更されても過去のレコードは変わらない
func (s *SettlementApplicationService) RecordConversion(ctx context.Context, req *RecordConversionRequest) (*RecordConversionResponse, error) {
	ctx, span := s.tracer.Start(ctx, "SettlementApplicationService.RecordConversion")
	defer span.End()

	span.SetAttributes(
		attribute.String("affiliate_id", req.AffiliateID),
		attribute.String("conversion_type", req.ConversionType),
	)

	s.logger.Info(ctx, "Recording conversion", map[string]interface{}{
		"affiliate_id":     req.AffiliateID,
		"conversion_type":  req.ConversionType,
		"conversion_value": req.ConversionValue.String(),
	})

	conversionType, err := commission.NewConversionType(req.ConversionType)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, commission.ErrInvalidConversionType
	}

	rate, amount := s.compute(ctx, conversionType, req.ConversionValue)

	record, err := commission.NewConversionRecord(
		uuid.NewString(),
		req.AffiliateID,
		conversionType,
		req.ConversionValue,
		rate,
		amount,
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to create conversion record entity: %w", err)
	}

	if err := s.conversionRepo.Save(ctx, record); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.logger.Error(ctx, "Failed to save conversion record", err, map[string]interface{}{
			"affiliate_id": req.AffiliateID,
		})
		s.metrics.RecordError(ctx, "conversion_save_failed")
		return nil, fmt.Errorf("failed to save conversion record: %w", err)
	}

	commissionFloat, _ := amount.Float64()
	s.metrics.RecordCommission(ctx, conversionType.String(), commissionFloat)

	s.logger.Info(ctx, "Conversion recorded successfully", map[string]interface{}{
		"conversion_id":     record.ID(),
		"affiliate_id":      req.AffiliateID,
		"commission_amount": amount.String(),
	})

	return &RecordConversionResponse{
		ConversionID:     record.ID(),
		AffiliateID:      record.AffiliateID(),
		ConversionType:   record.ConversionType().String(),
		ConversionValue:  record.ConversionValue(),
		CommissionRate:   record.CommissionRate(),
		CommissionAmount: record.CommissionAmount(),
		CreatedAt:        record.CreatedAt(),
	}, nil
}

// ListConversions アフィリエイトのコンバージョン台帳を取得する
func (s *SettlementApplicationService) ListConversions(ctx context.Context, req *ListConversionsRequest) (*ListConversionsResponse, error) {
	ctx, span := s.tracer.Start(ctx, "SettlementApplicationService.ListConversions")
	defer span.End()

	span.SetAttributes(
		attribute.String("affiliate_id", req.AffiliateID),
		attribute.Int("limit", req.Limit),
		attribute.Int("offset", req.Offset),
	)

	// ページネーションパラメータのバリデーション
	if req.Limit <= 0 {
		req.Limit = 50 // デフォルト値
	}
	if req.Limit > 100 {
		req.Limit = 100 // 最大値
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	records, total, err := s.conversionRepo.FindByAffiliateID(ctx, req.AffiliateID, req.Limit, req.Offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.logger.Error(ctx, "Failed to list conversions", err, map[string]interface{}{
			"affiliate_id": req.AffiliateID,
		})
		return nil, fmt.Errorf("failed to list conversions: %w", err)
	}

	conversions := make([]*ConversionView, 0, len(records))
	for _, record := range records {
		conversions = append(conversions, &ConversionView{
			ConversionID:     record.ID(),
			ConversionType:   record.ConversionType().String(),
			ConversionValue:  record.ConversionValue(),
			CommissionRate:   record.CommissionRate(),
			CommissionAmount: record.CommissionAmount(),
			CreatedAt:        record.CreatedAt(),
		})
	}

	return &ListConversionsResponse{
		Conversions: conversions,
		Total:       total,
		Limit:       req.Limit,
		Offset:      req.Offset,
	}, nil
}

// compute コミッション率と額を計算する
// 金額が0以下の場合は率の解決をスキップする（レートストアへの不要なアクセスを避ける）
func (s *SettlementApplicationService) compute(ctx context.Context, conversionType commission.ConversionType, value decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	if !value.IsPositive() {
		return decimal.Zero, decimal.Zero
	}

	rate := s.rateProvider.GetRate(ctx, conversionType)
	return rate, money.PercentOf(value, rate)
}
