package referral

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"promo-server/internal/domain/affiliate"
	otelinfra "promo-server/internal/infrastructure/observability/otel"
)

// ReferralApplicationService 紹介コードアプリケーションサービス
type ReferralApplicationService struct {
	affiliateRepo affiliate.AffiliateRepository
	logger        *otelinfra.Logger
	metrics       *otelinfra.Metrics
	tracer        trace.Tracer
}

// NewReferralApplicationService 新しいReferralApplicationServiceを作成
func NewReferralApplicationService(
	affiliateRepo affiliate.AffiliateRepository,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
) *ReferralApplicationService {
	return &ReferralApplicationService{
		affiliateRepo: affiliateRepo,
		logger:        logger,
		metrics:       metrics,
		tracer:        otel.Tracer("referral-service"),
	}
}

// IssueCode アフィリエイトIDから紹介コードを発行する
// コードはIDから決定的に生成されるため、同じIDには常に同じコードが返る
func (s *ReferralApplicationService) IssueCode(ctx context.Context, req *IssueCodeRequest) (*IssueCodeResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ReferralApplicationService.IssueCode")
	defer span.End()

	span.SetAttributes(
		attribute.String("affiliate_id", req.AffiliateID),
	)

	code, err := affiliate.EncodeReferralCode(req.AffiliateID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	s.logger.Info(ctx, "Referral code issued", map[string]interface{}{
		"affiliate_id":  req.AffiliateID,
		"referral_code": code,
	})

	return &IssueCodeResponse{
		AffiliateID:  req.AffiliateID,
		ReferralCode: code,
	}, nil
}

// ResolveCode 紹介コードをアフィリエイトIDに解決する
// 形式が正しくない場合はErrMalformedReferralCode、該当するアフィリエイトが
// 存在しない場合はErrAffiliateNotFoundを返す
func (s *ReferralApplicationService) ResolveCode(ctx context.Context, req *ResolveCodeRequest) (*ResolveCodeResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ReferralApplicationService.ResolveCode")
	defer span.End()

	span.SetAttributes(
		attribute.String("referral_code", req.ReferralCode),
	)

	suffix, ok := affiliate.DecodeReferralSuffix(req.ReferralCode)
	if !ok {
		err := affiliate.ErrMalformedReferralCode
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	affiliateID, err := s.affiliateRepo.FindBySuffix(ctx, suffix)
	if err != nil {
		if errors.Is(err, affiliate.ErrAffiliateNotFound) {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, err.Error())
			return nil, err
		}
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.logger.Error(ctx, "Failed to resolve referral code", err, map[string]interface{}{
			"referral_code": req.ReferralCode,
		})
		s.metrics.RecordError(ctx, "referral_resolution_failed")
		return nil, fmt.Errorf("failed to resolve referral code: %w", err)
	}

	return &ResolveCodeResponse{
		ReferralCode: req.ReferralCode,
		AffiliateID:  affiliateID,
	}, nil
}
