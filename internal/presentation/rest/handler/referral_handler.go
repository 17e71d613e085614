package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	referralapp "promo-server/internal/application/referral"
)

// ReferralHandler 紹介コード関連ハンドラー
type ReferralHandler struct {
	referralService *referralapp.ReferralApplicationService
}

// NewReferralHandler 新しいReferralHandlerを作成
func NewReferralHandler(referralService *referralapp.ReferralApplicationService) *ReferralHandler {
	return &ReferralHandler{
		referralService: referralService,
	}
}

// IssueCode 紹介コード発行ハンドラー
// GET /api/v1/affiliates/:affiliate_id/referral-code
func (h *ReferralHandler) IssueCode(c echo.Context) error {
	affiliateID := c.Param("affiliate_id")

	req := &referralapp.IssueCodeRequest{
		AffiliateID: affiliateID,
	}

	resp, err := h.referralService.IssueCode(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, IssueCodeResponse{
		AffiliateID:  resp.AffiliateID,
		ReferralCode: resp.ReferralCode,
	})
}

// ResolveCode 紹介コード解決ハンドラー
// GET /api/v1/referral-codes/:code
func (h *ReferralHandler) ResolveCode(c echo.Context) error {
	code := c.Param("code")

	req := &referralapp.ResolveCodeRequest{
		ReferralCode: code,
	}

	resp, err := h.referralService.ResolveCode(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ResolveCodeResponse{
		ReferralCode: resp.ReferralCode,
		AffiliateID:  resp.AffiliateID,
	})
}
