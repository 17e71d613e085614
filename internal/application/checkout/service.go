package checkout

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	otelinfra "promo-server/internal/infrastructure/observability/otel"

	"promo-server/internal/domain/promotion"
)

// CheckoutApplicationService プロモーションコード検証・使用確定アプリケーションサービス
type CheckoutApplicationService struct {
	promotionRepo promotion.PromotionRepository
	txManager     promotion.TransactionManager
	logger        *otelinfra.Logger
	metrics       *otelinfra.Metrics
	tracer        trace.Tracer
	now           func() time.Time
}

// NewCheckoutApplicationService 新しいCheckoutApplicationServiceを作成
func NewCheckoutApplicationService(
	promotionRepo promotion.PromotionRepository,
	txManager promotion.TransactionManager,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
) *CheckoutApplicationService {
	return &CheckoutApplicationService{
		promotionRepo: promotionRepo,
		txManager:     txManager,
		logger:        logger,
		metrics:       metrics,
		tracer:        otel.Tracer("checkout-service"),
		now:           time.Now,
	}
}

// Validate プロモーションコードを検証し、割引額を計算する
// 業務上の拒否（未知のコード、期限切れなど）はエラーではなくIsValid=falseのレスポンスで返す
// エラーを返すのはストア障害などの技術的な失敗のみ
func (s *CheckoutApplicationService) Validate(ctx context.Context, req *ValidateCodeRequest) (*ValidateCodeResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CheckoutApplicationService.Validate")
	defer span.End()

	span.SetAttributes(
		attribute.String("code", req.Code),
		attribute.String("user_id", req.UserID),
		attribute.String("payment_type", req.PaymentType),
	)

	s.logger.Info(ctx, "Validating promotion code", map[string]interface{}{
		"code":         req.Code,
		"user_id":      req.UserID,
		"payment_type": req.PaymentType,
	})

	promo, discount, freeShipping, err := s.evaluate(ctx, req)
	if err != nil {
		reason, rejected := rejectionReason(err)
		if !rejected {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, err.Error())
			s.logger.Error(ctx, "Failed to validate promotion code", err, map[string]interface{}{
				"code": req.Code,
			})
			s.metrics.RecordError(ctx, "code_validation_failed")
			return nil, err
		}

		span.SetAttributes(attribute.String("rejection_reason", reason))
		s.metrics.RecordValidation(ctx, "invalid")
		s.metrics.RecordRejection(ctx, reason)
		s.logger.Info(ctx, "Promotion code rejected", map[string]interface{}{
			"code":   req.Code,
			"reason": reason,
		})

		return &ValidateCodeResponse{
			IsValid:         false,
			Code:            strings.TrimSpace(req.Code),
			OriginalPrice:   req.Amount,
			DiscountAmount:  decimal.Zero,
			FinalPrice:      req.Amount,
			RejectionReason: reason,
		}, nil
	}

	finalPrice := req.Amount.Sub(discount)

	s.metrics.RecordValidation(ctx, "valid")
	s.logger.Info(ctx, "Promotion code validated", map[string]interface{}{
		"code":            promo.Code(),
		"promotion_id":    promo.ID(),
		"discount_amount": discount.String(),
		"final_price":     finalPrice.String(),
	})

	return &ValidateCodeResponse{
		IsValid:        true,
		PromotionID:    promo.ID(),
		Code:           promo.Code(),
		Title:          promo.Title(),
		OriginalPrice:  req.Amount,
		DiscountAmount: discount,
		FinalPrice:     finalPrice,
		FreeShipping:   freeShipping,
	}, nil
}

// Redeem プロモーションコードの使用を確定する
// 検証に失敗した場合はドメインのエラーをそのまま返す（ハンドラがHTTPステータスに変換する）
// 使用回数のインクリメントはリポジトリ内の条件付きUPDATEで行われるため、
// 同時リクエストがあっても上限を超えることはない
func (s *CheckoutApplicationService) Redeem(ctx context.Context, req *RedeemCodeRequest) (*RedeemCodeResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CheckoutApplicationService.Redeem")
	defer span.End()

	span.SetAttributes(
		attribute.String("code", req.Code),
		attribute.String("user_id", req.UserID),
	)

	s.logger.Info(ctx, "Redeeming promotion code", map[string]interface{}{
		"code":    req.Code,
		"user_id": req.UserID,
	})

	promo, discount, freeShipping, err := s.evaluate(ctx, &ValidateCodeRequest{
		Code:        req.Code,
		UserID:      req.UserID,
		Amount:      req.Amount,
		PaymentType: req.PaymentType,
		GymID:       req.GymID,
		ProductID:   req.ProductID,
		PackageID:   req.PackageID,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	err = s.txManager.WithTransaction(ctx, func(tx *sql.Tx) error {
		return s.promotionRepo.RegisterRedemption(ctx, tx, promo.ID(), req.UserID)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.logger.Error(ctx, "Failed to redeem promotion code", err, map[string]interface{}{
			"code":         req.Code,
			"promotion_id": promo.ID(),
			"user_id":      req.UserID,
		})
		s.metrics.RecordError(ctx, "code_redemption_failed")
		return nil, err
	}

	s.metrics.RecordRedemption(ctx, promo.ID())
	s.logger.Info(ctx, "Promotion code redeemed successfully", map[string]interface{}{
		"code":         promo.Code(),
		"promotion_id": promo.ID(),
		"user_id":      req.UserID,
	})

	return &RedeemCodeResponse{
		PromotionID:    promo.ID(),
		Code:           promo.Code(),
		Title:          promo.Title(),
		OriginalPrice:  req.Amount,
		DiscountAmount: discount,
		FinalPrice:     req.Amount.Sub(discount),
		FreeShipping:   freeShipping,
		RedeemedAt:     s.now(),
	}, nil
}

// ListCandidates 指定スコープに適用可能なプロモーションを優先度順に取得する
func (s *CheckoutApplicationService) ListCandidates(ctx context.Context, req *ListCandidatesRequest) (*ListCandidatesResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CheckoutApplicationService.ListCandidates")
	defer span.End()

	scope := promotion.Scope{
		GymID:     req.GymID,
		ProductID: req.ProductID,
		PackageID: req.PackageID,
	}

	promos, err := s.promotionRepo.FindActiveForScope(ctx, scope, s.now())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.logger.Error(ctx, "Failed to list promotion candidates", err, nil)
		return nil, fmt.Errorf("failed to list promotion candidates: %w", err)
	}

	candidates := make([]*CandidateView, 0, len(promos))
	for _, p := range promos {
		candidates = append(candidates, &CandidateView{
			PromotionID:   p.ID(),
			Code:          p.Code(),
			Title:         p.Title(),
			DiscountType:  p.DiscountType().String(),
			DiscountValue: p.DiscountValue(),
			FreeShipping:  p.FreeShipping(),
			Priority:      p.Priority(),
		})
	}

	span.SetAttributes(attribute.Int("candidate_count", len(candidates)))

	return &ListCandidatesResponse{
		Candidates: candidates,
	}, nil
}

// evaluate コードを検証し、適用可能なら割引額と送料無料フラグを計算する
// 業務上の拒否はドメインのセンチネルエラーとして返る（rejectionReasonで理由に変換できる）
func (s *CheckoutApplicationService) evaluate(ctx context.Context, req *ValidateCodeRequest) (*promotion.Promotion, decimal.Decimal, bool, error) {
	code := strings.TrimSpace(req.Code)
	if code == "" {
		return nil, decimal.Zero, false, promotion.ErrMissingCode
	}

	pc := &promotion.PurchaseContext{
		Amount:      req.Amount,
		PaymentType: promotion.PaymentType(req.PaymentType),
		UserID:      req.UserID,
		GymID:       req.GymID,
		ProductID:   req.ProductID,
		PackageID:   req.PackageID,
	}
	if err := pc.Validate(); err != nil {
		return nil, decimal.Zero, false, err
	}

	promo, err := s.promotionRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, promotion.ErrPromotionNotFound) {
			return nil, decimal.Zero, false, err
		}
		return nil, decimal.Zero, false, fmt.Errorf("failed to find promotion: %w", err)
	}

	if err := promo.Usability(s.now()); err != nil {
		return nil, decimal.Zero, false, err
	}

	if err := promo.AppliesTo(pc); err != nil {
		return nil, decimal.Zero, false, err
	}

	if promo.SingleUsePerUser() {
		redeemed, err := s.promotionRepo.HasUserRedeemed(ctx, req.UserID, promo.ID())
		if err != nil {
			return nil, decimal.Zero, false, fmt.Errorf("failed to check redemption status: %w", err)
		}
		if redeemed {
			return nil, decimal.Zero, false, promotion.ErrPromotionAlreadyUsed
		}
	}

	discount, freeShipping := promo.Discount(req.Amount)
	return promo, discount, freeShipping, nil
}

// rejectionReason ドメインのセンチネルエラーをユーザー向けの拒否理由に変換する
// 業務上の拒否でないエラー（ストア障害など）の場合は ("", false) を返す
func rejectionReason(err error) (string, bool) {
	switch {
	case errors.Is(err, promotion.ErrMissingCode):
		return ReasonMissingCode, true
	case errors.Is(err, promotion.ErrInvalidAmount):
		return ReasonInvalidAmount, true
	case errors.Is(err, promotion.ErrUnknownPaymentType):
		return ReasonUnknownPaymentType, true
	case errors.Is(err, promotion.ErrPromotionNotFound):
		return ReasonCodeNotFound, true
	case errors.Is(err, promotion.ErrPromotionInactive):
		return ReasonInactive, true
	case errors.Is(err, promotion.ErrPromotionNotDiscount):
		return ReasonNotDiscount, true
	case errors.Is(err, promotion.ErrPromotionNotStarted):
		return ReasonNotStarted, true
	case errors.Is(err, promotion.ErrPromotionExpired):
		return ReasonExpired, true
	case errors.Is(err, promotion.ErrPromotionExhausted):
		return ReasonExhausted, true
	case errors.Is(err, promotion.ErrPromotionNotApplicable):
		return ReasonNotApplicable, true
	case errors.Is(err, promotion.ErrPromotionAlreadyUsed):
		return ReasonAlreadyUsed, true
	default:
		return "", false
	}
}
