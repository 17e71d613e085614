package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	settlementapp "promo-server/internal/application/settlement"
)

// CommissionHandler コミッション精算関連ハンドラー
type CommissionHandler struct {
	settlementService *settlementapp.SettlementApplicationService
}

// NewCommissionHandler 新しいCommissionHandlerを作成
func NewCommissionHandler(settlementService *settlementapp.SettlementApplicationService) *CommissionHandler {
	return &CommissionHandler{
		settlementService: settlementService,
	}
}

// ComputeCommission コミッション計算ハンドラー
// POST /api/v1/commissions/compute
func (h *CommissionHandler) ComputeCommission(c echo.Context) error {
	var reqBody ComputeCommissionRequest
	if err := c.Bind(&reqBody); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	value, err := decimal.NewFromString(reqBody.ConversionValue)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "conversion_value must be a decimal string")
	}

	req := &settlementapp.ComputeCommissionRequest{
		ConversionType:  reqBody.ConversionType,
		ConversionValue: value,
	}

	resp, err := h.settlementService.ComputeCommission(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ComputeCommissionResponse{
		ConversionType:   resp.ConversionType,
		ConversionValue:  resp.ConversionValue.String(),
		CommissionRate:   resp.CommissionRate.String(),
		CommissionAmount: resp.CommissionAmount.String(),
	})
}

// RecordConversion コンバージョン記録ハンドラー
// POST /api/v1/conversions
func (h *CommissionHandler) RecordConversion(c echo.Context) error {
	var reqBody RecordConversionRequest
	if err := c.Bind(&reqBody); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	value, err := decimal.NewFromString(reqBody.ConversionValue)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "conversion_value must be a decimal string")
	}

	req := &settlementapp.RecordConversionRequest{
		AffiliateID:     reqBody.AffiliateID,
		ConversionType:  reqBody.ConversionType,
		ConversionValue: value,
	}

	resp, err := h.settlementService.RecordConversion(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, RecordConversionResponse{
		ConversionID:     resp.ConversionID,
		AffiliateID:      resp.AffiliateID,
		ConversionType:   resp.ConversionType,
		ConversionValue:  resp.ConversionValue.String(),
		CommissionRate:   resp.CommissionRate.String(),
		CommissionAmount: resp.CommissionAmount.String(),
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
	})
}

// ListConversions コンバージョン一覧取得ハンドラー
// GET /api/v1/affiliates/:affiliate_id/conversions
func (h *CommissionHandler) ListConversions(c echo.Context) error {
	affiliateID := c.Param("affiliate_id")

	limit, err := queryParamInt(c, "limit", 0)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "limit must be an integer")
	}
	offset, err := queryParamInt(c, "offset", 0)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "offset must be an integer")
	}

	req := &settlementapp.ListConversionsRequest{
		AffiliateID: affiliateID,
		Limit:       limit,
		Offset:      offset,
	}

	resp, err := h.settlementService.ListConversions(c.Request().Context(), req)
	if err != nil {
		return err
	}

	conversions := make([]ConversionItem, 0, len(resp.Conversions))
	for _, conversion := range resp.Conversions {
		conversions = append(conversions, ConversionItem{
			ConversionID:     conversion.ConversionID,
			ConversionType:   conversion.ConversionType,
			ConversionValue:  conversion.ConversionValue.String(),
			CommissionRate:   conversion.CommissionRate.String(),
			CommissionAmount: conversion.CommissionAmount.String(),
			CreatedAt:        conversion.CreatedAt.Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusOK, ListConversionsResponse{
		Conversions: conversions,
		Total:       resp.Total,
		Limit:       resp.Limit,
		Offset:      resp.Offset,
	})
}

// queryParamInt 整数のクエリパラメータを取得する（未指定時はデフォルト値）
func queryParamInt(c echo.Context, name string, defaultValue int) (int, error) {
	value := c.QueryParam(name)
	if value == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(value)
}
