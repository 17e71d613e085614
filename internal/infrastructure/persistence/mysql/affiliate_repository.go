package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"promo-server/internal/domain/affiliate"
)

// AffiliateRepository MySQL実装のAffiliateRepository
type AffiliateRepository struct {
	db     *DB
	tracer trace.Tracer
}

// NewAffiliateRepository 新しいAffiliateRepositoryを作成
func NewAffiliateRepository(db *DB) *AffiliateRepository {
	return &AffiliateRepository{
		db:     db,
		tracer: otel.Tracer("affiliate-repository"),
	}
}

// FindBySuffix 紹介コードのサフィックスからアフィリエイトIDを取得
// サフィックスはIDの末尾8文字を大文字化したものなので、大文字小文字を無視して末尾一致で検索する
func (r *AffiliateRepository) FindBySuffix(ctx context.Context, suffix string) (string, error) {
	ctx, span := r.tracer.Start(ctx, "AffiliateRepository.FindBySuffix")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.suffix", suffix),
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.table", "affiliates"),
	)

	query := `
		SELECT id
		FROM affiliates
		WHERE UPPER(RIGHT(id, 8)) = ?
		LIMIT 1
	`

	var affiliateID string
	err := r.db.QueryRowContext(ctx, query, suffix).Scan(&affiliateID)
	if err == sql.ErrNoRows {
		span.SetStatus(otelcodes.Ok, "affiliate not found")
		return "", affiliate.ErrAffiliateNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return "", fmt.Errorf("failed to find affiliate: %w", err)
	}

	span.SetStatus(otelcodes.Ok, "affiliate found")
	return affiliateID, nil
}
