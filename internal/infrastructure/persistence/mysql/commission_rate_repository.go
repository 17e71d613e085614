package mysql

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"promo-server/internal/domain/commission"
)

// CommissionRateRepository MySQL実装のRateRepository
type CommissionRateRepository struct {
	db     *DB
	tracer trace.Tracer
}

// NewCommissionRateRepository 新しいCommissionRateRepositoryを作成
func NewCommissionRateRepository(db *DB) *CommissionRateRepository {
	return &CommissionRateRepository{
		db:     db,
		tracer: otel.Tracer("commission-rate-repository"),
	}
}

// LoadActiveRates 有効なコミッション率を全て取得
func (r *CommissionRateRepository) LoadActiveRates(ctx context.Context) ([]*commission.CommissionRate, error) {
	ctx, span := r.tracer.Start(ctx, "CommissionRateRepository.LoadActiveRates")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.table", "commission_rates"),
	)

	query := `
		SELECT conversion_type, rate, is_active
		FROM commission_rates
		WHERE is_active = TRUE
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to query commission rates: %w", err)
	}
	defer rows.Close()

	var rates []*commission.CommissionRate
	for rows.Next() {
		var (
			conversionTypeStr string
			rateStr           string
			isActive          bool
		)
		if err := rows.Scan(&conversionTypeStr, &rateStr, &isActive); err != nil {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, err.Error())
			return nil, fmt.Errorf("failed to scan commission rate: %w", err)
		}

		conversionType, err := commission.NewConversionType(conversionTypeStr)
		if err != nil {
			// 未知の種別はスキップする（新しい種別が先にDBへ入っても古いサーバーが壊れないように）
			continue
		}

		rate, err := decimal.NewFromString(rateStr)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, err.Error())
			return nil, fmt.Errorf("invalid rate value: %w", err)
		}

		cr, err := commission.NewCommissionRate(conversionType, rate, isActive)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, err.Error())
			return nil, fmt.Errorf("failed to build commission rate entity: %w", err)
		}
		rates = append(rates, cr)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to iterate commission rates: %w", err)
	}

	span.SetAttributes(attribute.Int("db.count", len(rates)))
	span.SetStatus(otelcodes.Ok, "commission rates loaded")

	return rates, nil
}
