package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	checkoutapp "promo-server/internal/application/checkout"
)

// CheckoutHandler チェックアウト関連ハンドラー
type CheckoutHandler struct {
	checkoutService *checkoutapp.CheckoutApplicationService
}

// NewCheckoutHandler 新しいCheckoutHandlerを作成
func NewCheckoutHandler(checkoutService *checkoutapp.CheckoutApplicationService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// ValidateCode プロモーションコード検証ハンドラー
// POST /api/v1/checkout/validate-code
func (h *CheckoutHandler) ValidateCode(c echo.Context) error {
	var reqBody ValidateCodeRequest
	if err := c.Bind(&reqBody); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	amount, err := decimal.NewFromString(reqBody.Amount)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "amount must be a decimal string")
	}

	req := &checkoutapp.ValidateCodeRequest{
		Code:        reqBody.Code,
		UserID:      reqBody.UserID,
		Amount:      amount,
		PaymentType: reqBody.PaymentType,
		GymID:       reqBody.GymID,
		ProductID:   reqBody.ProductID,
		PackageID:   reqBody.PackageID,
	}

	resp, err := h.checkoutService.Validate(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ValidateCodeResponse{
		IsValid:         resp.IsValid,
		PromotionID:     resp.PromotionID,
		Code:            resp.Code,
		Title:           resp.Title,
		OriginalPrice:   resp.OriginalPrice.String(),
		DiscountAmount:  resp.DiscountAmount.String(),
		FinalPrice:      resp.FinalPrice.String(),
		FreeShipping:    resp.FreeShipping,
		RejectionReason: resp.RejectionReason,
	})
}

// RedeemCode プロモーションコード使用確定ハンドラー
// POST /api/v1/checkout/redeem
func (h *CheckoutHandler) RedeemCode(c echo.Context) error {
	var reqBody RedeemCodeRequest
	if err := c.Bind(&reqBody); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	amount, err := decimal.NewFromString(reqBody.Amount)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "amount must be a decimal string")
	}

	req := &checkoutapp.RedeemCodeRequest{
		Code:        reqBody.Code,
		UserID:      reqBody.UserID,
		Amount:      amount,
		PaymentType: reqBody.PaymentType,
		GymID:       reqBody.GymID,
		ProductID:   reqBody.ProductID,
		PackageID:   reqBody.PackageID,
	}

	resp, err := h.checkoutService.Redeem(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, RedeemCodeResponse{
		PromotionID:    resp.PromotionID,
		Code:           resp.Code,
		Title:          resp.Title,
		OriginalPrice:  resp.OriginalPrice.String(),
		DiscountAmount: resp.DiscountAmount.String(),
		FinalPrice:     resp.FinalPrice.String(),
		FreeShipping:   resp.FreeShipping,
		RedeemedAt:     resp.RedeemedAt.Format(time.RFC3339),
	})
}

// ListCandidates 適用候補プロモーション一覧ハンドラー
// GET /api/v1/promotions/candidates
func (h *CheckoutHandler) ListCandidates(c echo.Context) error {
	req := &checkoutapp.ListCandidatesRequest{
		GymID:     queryParamPtr(c, "gym_id"),
		ProductID: queryParamPtr(c, "product_id"),
		PackageID: queryParamPtr(c, "package_id"),
	}

	resp, err := h.checkoutService.ListCandidates(c.Request().Context(), req)
	if err != nil {
		return err
	}

	candidates := make([]CandidateItem, 0, len(resp.Candidates))
	for _, candidate := range resp.Candidates {
		candidates = append(candidates, CandidateItem{
			PromotionID:   candidate.PromotionID,
			Code:          candidate.Code,
			Title:         candidate.Title,
			DiscountType:  candidate.DiscountType,
			DiscountValue: candidate.DiscountValue.String(),
			FreeShipping:  candidate.FreeShipping,
			Priority:      candidate.Priority,
		})
	}

	return c.JSON(http.StatusOK, ListCandidatesResponse{
		Candidates: candidates,
	})
}

// queryParamPtr 空でないクエリパラメータをポインタで返す
func queryParamPtr(c echo.Context, name string) *string {
	value := c.QueryParam(name)
	if value == "" {
		return nil
	}
	return &value
}
