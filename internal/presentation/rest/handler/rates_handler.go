package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"promo-server/internal/domain/service"
)

// RatesHandler コミッション料率関連ハンドラー
type RatesHandler struct {
	rateResolver *service.RateResolver
}

// NewRatesHandler 新しいRatesHandlerを作成
func NewRatesHandler(rateResolver *service.RateResolver) *RatesHandler {
	return &RatesHandler{
		rateResolver: rateResolver,
	}
}

// InvalidateCache 料率キャッシュ無効化ハンドラー
// POST /api/v1/admin/commission-rates/invalidate
// 次回の料率参照時にストアから再読込させる
func (h *RatesHandler) InvalidateCache(c echo.Context) error {
	h.rateResolver.Invalidate()

	return c.JSON(http.StatusOK, InvalidateCacheResponse{
		Status: "invalidated",
	})
}
