package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"promo-server/internal/domain/affiliate"
	"promo-server/internal/domain/commission"
	"promo-server/internal/domain/promotion"
	otelinfra "promo-server/internal/infrastructure/observability/otel"
)

func newErrorHandlerContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder, echo.MiddlewareFunc) {
	t.Helper()

	tracer := noop.NewTracerProvider().Tracer("test")
	logger := otelinfra.NewLogger(tracer)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return c, rec, ErrorHandlerMiddleware(logger)
}

func TestErrorHandlerMiddleware_NoError(t *testing.T) {
	c, rec, middleware := newErrorHandlerContext(t)

	handler := middleware(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	err := handler(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestErrorHandlerMiddleware_DomainErrors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantStatusCode int
		wantErrorCode  string
	}{
		{
			name:           "プロモーションが見つからない場合は404",
			err:            promotion.ErrPromotionNotFound,
			wantStatusCode: http.StatusNotFound,
			wantErrorCode:  "promotion_not_found",
		},
		{
			name:           "期限切れのプロモーションは400",
			err:            promotion.ErrPromotionExpired,
			wantStatusCode: http.StatusBadRequest,
			wantErrorCode:  "promotion_expired",
		},
		{
			name:           "利用上限到達は409",
			err:            promotion.ErrPromotionExhausted,
			wantStatusCode: http.StatusConflict,
			wantErrorCode:  "promotion_exhausted",
		},
		{
			name:           "利用済みプロモーションは409",
			err:            promotion.ErrPromotionAlreadyUsed,
			wantStatusCode: http.StatusConflict,
			wantErrorCode:  "promotion_already_used",
		},
		{
			name:           "不正な成果種別は400",
			err:            commission.ErrInvalidConversionType,
			wantStatusCode: http.StatusBadRequest,
			wantErrorCode:  "invalid_conversion_type",
		},
		{
			name:           "アフィリエイトが見つからない場合は404",
			err:            affiliate.ErrAffiliateNotFound,
			wantStatusCode: http.StatusNotFound,
			wantErrorCode:  "affiliate_not_found",
		},
		{
			name:           "不正な紹介コードは400",
			err:            affiliate.ErrMalformedReferralCode,
			wantStatusCode: http.StatusBadRequest,
			wantErrorCode:  "malformed_referral_code",
		},
		{
			name:           "ラップされたドメインエラーも判定される",
			err:            errors.Join(errors.New("redeem failed"), promotion.ErrPromotionExhausted),
			wantStatusCode: http.StatusConflict,
			wantErrorCode:  "promotion_exhausted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec, middleware := newErrorHandlerContext(t)

			handler := middleware(func(c echo.Context) error {
				return tt.err
			})

			err := handler(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantErrorCode, resp.Error)
		})
	}
}

func TestErrorHandlerMiddleware_EchoHTTPError(t *testing.T) {
	c, rec, middleware := newErrorHandlerContext(t)

	handler := middleware(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid payload")
	})

	err := handler(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid payload", resp.Message)
}

func TestErrorHandlerMiddleware_UnexpectedError(t *testing.T) {
	c, rec, middleware := newErrorHandlerContext(t)

	handler := middleware(func(c echo.Context) error {
		return errors.New("database connection lost")
	})

	err := handler(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "internal_server_error", resp.Error)
}
