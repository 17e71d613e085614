package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"promo-server/internal/domain/promotion"
)

// PromotionRepository MySQL実装のPromotionRepository
type PromotionRepository struct {
	db     *DB
	tracer trace.Tracer
}

// NewPromotionRepository 新しいPromotionRepositoryを作成
func NewPromotionRepository(db *DB) *PromotionRepository {
	return &PromotionRepository{
		db:     db,
		tracer: otel.Tracer("promotion-repository"),
	}
}

const promotionColumns = `
	id, code, title, discount_type, discount_value, free_shipping,
	gym_id, product_id, package_id,
	start_date, end_date, max_uses, current_uses, priority,
	single_use_per_user, is_active, created_at, updated_at
`

// FindByCode 公開コードでプロモーションを取得
func (r *PromotionRepository) FindByCode(ctx context.Context, code string) (*promotion.Promotion, error) {
	ctx, span := r.tracer.Start(ctx, "PromotionRepository.FindByCode")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.code", code),
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.table", "promotions"),
	)

	query := `
		SELECT ` + promotionColumns + `
		FROM promotions
		WHERE code = ?
	`

	row := r.db.QueryRowContext(ctx, query, code)
	promo, err := scanPromotion(row)
	if err == sql.ErrNoRows {
		span.SetStatus(otelcodes.Ok, "promotion not found")
		return nil, promotion.ErrPromotionNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to find promotion: %w", err)
	}

	span.SetAttributes(
		attribute.String("db.promotion_id", promo.ID()),
		attribute.String("db.discount_type", promo.DiscountType().String()),
	)
	span.SetStatus(otelcodes.Ok, "promotion found")

	return promo, nil
}

// HasUserRedeemed ユーザーが既にこのプロモーションを使用済みかチェック
func (r *PromotionRepository) HasUserRedeemed(ctx context.Context, userID string, promotionID string) (bool, error) {
	ctx, span := r.tracer.Start(ctx, "PromotionRepository.HasUserRedeemed")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.user_id", userID),
		attribute.String("db.promotion_id", promotionID),
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.table", "promotion_redemptions"),
	)

	query := `
		SELECT COUNT(*)
		FROM promotion_redemptions
		WHERE promotion_id = ? AND user_id = ?
	`

	var count int
	err := r.db.QueryRowContext(ctx, query, promotionID, userID).Scan(&count)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return false, fmt.Errorf("failed to check redemption status: %w", err)
	}

	span.SetAttributes(attribute.Bool("db.has_redeemed", count > 0))
	span.SetStatus(otelcodes.Ok, "redemption status checked")

	return count > 0, nil
}

// FindActiveForScope スコープに適用可能な有効プロモーションを取得
// スコープ列がNULLの行は無制限として常にマッチする
// 順序は優先度降順、作成日時降順、ID昇順（同点時も決定的な順序にするため）
func (r *PromotionRepository) FindActiveForScope(ctx context.Context, scope promotion.Scope, now time.Time) ([]*promotion.Promotion, error) {
	ctx, span := r.tracer.Start(ctx, "PromotionRepository.FindActiveForScope")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.table", "promotions"),
	)

	query := `
		SELECT ` + promotionColumns + `
		FROM promotions
		WHERE is_active = TRUE
		  AND discount_type IN ('percentage', 'fixed_amount', 'free_shipping')
		  AND (start_date IS NULL OR start_date <= ?)
		  AND (end_date IS NULL OR end_date >= ?)
		  AND (max_uses IS NULL OR current_uses < max_uses)
		  AND (gym_id IS NULL OR gym_id = ?)
		  AND (product_id IS NULL OR product_id = ?)
		  AND (package_id IS NULL OR package_id = ?)
		ORDER BY priority DESC, created_at DESC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query,
		now, now,
		scope.GymID, scope.ProductID, scope.PackageID,
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to query promotions: %w", err)
	}
	defer rows.Close()

	var promos []*promotion.Promotion
	for rows.Next() {
		promo, err := scanPromotion(rows)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, err.Error())
			return nil, fmt.Errorf("failed to scan promotion: %w", err)
		}
		promos = append(promos, promo)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to iterate promotions: %w", err)
	}

	span.SetAttributes(attribute.Int("db.count", len(promos)))
	span.SetStatus(otelcodes.Ok, "promotions found")

	return promos, nil
}

// RegisterRedemption 使用回数のインクリメントとユーザー使用履歴の記録を行う
// インクリメントは current_uses < max_uses を条件とした単一のUPDATEで行うため、
// 同時リクエストがあっても上限を超えることはない
func (r *PromotionRepository) RegisterRedemption(ctx context.Context, tx *sql.Tx, promotionID string, userID string) error {
	ctx, span := r.tracer.Start(ctx, "PromotionRepository.RegisterRedemption")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.promotion_id", promotionID),
		attribute.String("db.user_id", userID),
		attribute.String("db.operation", "UPDATE"),
		attribute.String("db.table", "promotions"),
	)

	updateQuery := `
		UPDATE promotions
		SET current_uses = current_uses + 1,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
		  AND (max_uses IS NULL OR current_uses < max_uses)
	`

	result, err := tx.ExecContext(ctx, updateQuery, promotionID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return fmt.Errorf("failed to increment usage count: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		err := promotion.ErrPromotionExhausted
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return err
	}

	insertQuery := `
		INSERT INTO promotion_redemptions (promotion_id, user_id, redeemed_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
	`

	if _, err := tx.ExecContext(ctx, insertQuery, promotionID, userID); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return fmt.Errorf("failed to record redemption: %w", err)
	}

	span.SetStatus(otelcodes.Ok, "redemption registered")
	return nil
}

// rowScanner sql.Rowとsql.Rowsの両方を受け取るためのインターフェース
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanPromotion 1行をPromotionエンティティに変換する
func scanPromotion(row rowScanner) (*promotion.Promotion, error) {
	var (
		id, code, title  string
		discountTypeStr  string
		discountValueStr string
		freeShipping     bool
		gymID            sql.NullString
		productID        sql.NullString
		packageID        sql.NullString
		startDate        sql.NullTime
		endDate          sql.NullTime
		maxUses          sql.NullInt64
		currentUses      int
		priority         int
		singleUsePerUser bool
		isActive         bool
		createdAt        time.Time
		updatedAt        time.Time
	)

	err := row.Scan(
		&id, &code, &title, &discountTypeStr, &discountValueStr, &freeShipping,
		&gymID, &productID, &packageID,
		&startDate, &endDate, &maxUses, &currentUses, &priority,
		&singleUsePerUser, &isActive, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	discountType, err := promotion.NewDiscountType(discountTypeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid discount type: %w", err)
	}

	discountValue, err := decimal.NewFromString(discountValueStr)
	if err != nil {
		return nil, fmt.Errorf("invalid discount value: %w", err)
	}

	scope := promotion.Scope{}
	if gymID.Valid {
		scope.GymID = &gymID.String
	}
	if productID.Valid {
		scope.ProductID = &productID.String
	}
	if packageID.Valid {
		scope.PackageID = &packageID.String
	}

	var startDatePtr, endDatePtr *time.Time
	if startDate.Valid {
		startDatePtr = &startDate.Time
	}
	if endDate.Valid {
		endDatePtr = &endDate.Time
	}

	var maxUsesPtr *int
	if maxUses.Valid {
		v := int(maxUses.Int64)
		maxUsesPtr = &v
	}

	promo, err := promotion.NewPromotion(
		id, code, title, discountType, discountValue, freeShipping,
		scope, startDatePtr, endDatePtr, maxUsesPtr, priority, singleUsePerUser,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build promotion entity: %w", err)
	}

	promo.SetCurrentUses(currentUses)
	promo.SetActive(isActive)
	promo.SetCreatedAt(createdAt)
	promo.SetUpdatedAt(updatedAt)

	return promo, nil
}
