package mysql

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"promo-server/internal/domain/commission"
)

// ConversionRepository MySQL実装のConversionRepository
type ConversionRepository struct {
	db     *DB
	tracer trace.Tracer
}

// NewConversionRepository 新しいConversionRepositoryを作成
func NewConversionRepository(db *DB) *ConversionRepository {
	return &ConversionRepository{
		db:     db,
		tracer: otel.Tracer("conversion-repository"),
	}
}

// Save コンバージョンレコードを保存
func (r *ConversionRepository) Save(ctx context.Context, record *commission.ConversionRecord) error {
	ctx, span := r.tracer.Start(ctx, "ConversionRepository.Save")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.conversion_id", record.ID()),
		attribute.String("db.affiliate_id", record.AffiliateID()),
		attribute.String("db.operation", "INSERT"),
		attribute.String("db.table", "conversions"),
	)

	query := `
		INSERT INTO conversions (
			id, affiliate_id, conversion_type, conversion_value,
			commission_rate, commission_amount, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		record.ID(),
		record.AffiliateID(),
		record.ConversionType().String(),
		record.ConversionValue().String(),
		record.CommissionRate().String(),
		record.CommissionAmount().String(),
		record.CreatedAt(),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return fmt.Errorf("failed to save conversion record: %w", err)
	}

	span.SetStatus(otelcodes.Ok, "conversion record saved")
	return nil
}

// FindByAffiliateID アフィリエイトのコンバージョンレコードを取得
func (r *ConversionRepository) FindByAffiliateID(ctx context.Context, affiliateID string, limit, offset int) ([]*commission.ConversionRecord, int, error) {
	ctx, span := r.tracer.Start(ctx, "ConversionRepository.FindByAffiliateID")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.affiliate_id", affiliateID),
		attribute.Int("db.limit", limit),
		attribute.Int("db.offset", offset),
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.table", "conversions"),
	)

	countQuery := `
		SELECT COUNT(*)
		FROM conversions
		WHERE affiliate_id = ?
	`

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, affiliateID).Scan(&total); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, 0, fmt.Errorf("failed to count conversion records: %w", err)
	}

	query := `
		SELECT id, affiliate_id, conversion_type, conversion_value,
		       commission_rate, commission_amount, created_at
		FROM conversions
		WHERE affiliate_id = ?
		ORDER BY created_at DESC, id ASC
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, query, affiliateID, limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, 0, fmt.Errorf("failed to query conversion records: %w", err)
	}
	defer rows.Close()

	var records []*commission.ConversionRecord
	for rows.Next() {
		var (
			id, affID          string
			conversionTypeStr  string
			conversionValueStr string
			rateStr            string
			amountStr          string
			createdAt          time.Time
		)
		if err := rows.Scan(&id, &affID, &conversionTypeStr, &conversionValueStr, &rateStr, &amountStr, &createdAt); err != nil {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, err.Error())
			return nil, 0, fmt.Errorf("failed to scan conversion record: %w", err)
		}

		conversionType, err := commission.NewConversionType(conversionTypeStr)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, err.Error())
			return nil, 0, fmt.Errorf("invalid conversion type: %w", err)
		}

		conversionValue, err := decimal.NewFromString(conversionValueStr)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid conversion value: %w", err)
		}
		rate, err := decimal.NewFromString(rateStr)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid commission rate: %w", err)
		}
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid commission amount: %w", err)
		}

		record, err := commission.NewConversionRecord(id, affID, conversionType, conversionValue, rate, amount)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, err.Error())
			return nil, 0, fmt.Errorf("failed to build conversion record entity: %w", err)
		}
		record.SetCreatedAt(createdAt)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, 0, fmt.Errorf("failed to iterate conversion records: %w", err)
	}

	span.SetAttributes(attribute.Int("db.count", len(records)))
	span.SetStatus(otelcodes.Ok, "conversion records found")

	return records, total, nil
}
