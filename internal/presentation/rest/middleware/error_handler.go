package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	otelinfra "promo-server/internal/infrastructure/observability/otel"

	"promo-server/internal/domain/affiliate"
	"promo-server/internal/domain/commission"
	"promo-server/internal/domain/promotion"
)

// ErrorResponse エラーレスポンス
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ErrorHandlerMiddleware エラーハンドリングミドルウェア
func ErrorHandlerMiddleware(logger *otelinfra.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}

			// エラーハンドリング
			return handleError(c, err, logger)
		}
	}
}

// domainErrorMapping ドメインエラーとHTTPレスポンスの対応
type domainErrorMapping struct {
	err        error
	statusCode int
	errorCode  string
	logMessage string
}

var domainErrorMappings = []domainErrorMapping{
	{promotion.ErrPromotionNotFound, http.StatusNotFound, "promotion_not_found", "Promotion not found"},
	{promotion.ErrPromotionInactive, http.StatusBadRequest, "promotion_inactive", "Promotion inactive"},
	{promotion.ErrPromotionNotDiscount, http.StatusBadRequest, "promotion_not_discount", "Promotion is not a discount"},
	{promotion.ErrPromotionNotStarted, http.StatusBadRequest, "promotion_not_started", "Promotion not started"},
	{promotion.ErrPromotionExpired, http.StatusBadRequest, "promotion_expired", "Promotion expired"},
	{promotion.ErrPromotionExhausted, http.StatusConflict, "promotion_exhausted", "Promotion usage limit reached"},
	{promotion.ErrPromotionNotApplicable, http.StatusBadRequest, "promotion_not_applicable", "Promotion not applicable"},
	{promotion.ErrPromotionAlreadyUsed, http.StatusConflict, "promotion_already_used", "Promotion already used by user"},
	{promotion.ErrMissingCode, http.StatusBadRequest, "missing_code", "Missing code"},
	{promotion.ErrInvalidAmount, http.StatusBadRequest, "invalid_amount", "Invalid amount"},
	{promotion.ErrUnknownPaymentType, http.StatusBadRequest, "unknown_payment_type", "Unknown payment type"},
	{commission.ErrInvalidConversionType, http.StatusBadRequest, "invalid_conversion_type", "Invalid conversion type"},
	{commission.ErrConversionNotFound, http.StatusNotFound, "conversion_not_found", "Conversion not found"},
	{affiliate.ErrAffiliateNotFound, http.StatusNotFound, "affiliate_not_found", "Affiliate not found"},
	{affiliate.ErrAffiliateIDTooShort, http.StatusBadRequest, "affiliate_id_too_short", "Affiliate id too short"},
	{affiliate.ErrMalformedReferralCode, http.StatusBadRequest, "malformed_referral_code", "Malformed referral code"},
}

// handleError エラーを処理して適切なHTTPレスポンスを返す
func handleError(c echo.Context, err error, logger *otelinfra.Logger) error {
	ctx := c.Request().Context()

	// ドメインエラーの判定と処理
	for _, mapping := range domainErrorMappings {
		if errors.Is(err, mapping.err) {
			logger.Warn(ctx, mapping.logMessage, map[string]interface{}{
				"error": err.Error(),
			})
			return c.JSON(mapping.statusCode, ErrorResponse{
				Error:   mapping.errorCode,
				Message: err.Error(),
			})
		}
	}

	// EchoのHTTPエラー
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		logger.Warn(ctx, "HTTP error", map[string]interface{}{
			"status_code": httpErr.Code,
			"message":     httpErr.Message,
		})
		message := ""
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(httpErr.Code)
		}
		return c.JSON(httpErr.Code, ErrorResponse{
			Error:   http.StatusText(httpErr.Code),
			Message: message,
		})
	}

	// 予期しないエラー
	logger.Error(ctx, "Internal server error", err, map[string]interface{}{
		"path": c.Request().URL.Path,
	})
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_server_error",
		Message: "An unexpected error occurred",
	})
}
