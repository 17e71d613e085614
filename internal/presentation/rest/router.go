package rest

import (
	checkoutapp "promo-server/internal/application/checkout"
	referralapp "promo-server/internal/application/referral"
	settlementapp "promo-server/internal/application/settlement"
	"promo-server/internal/domain/service"
	"promo-server/internal/infrastructure/config"
	otelinfra "promo-server/internal/infrastructure/observability/otel"
	"promo-server/internal/presentation/rest/handler"
	restmiddleware "promo-server/internal/presentation/rest/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Router REST APIルーター
type Router struct {
	echo              *echo.Echo
	checkoutHandler   *handler.CheckoutHandler
	commissionHandler *handler.CommissionHandler
	referralHandler   *handler.ReferralHandler
	ratesHandler      *handler.RatesHandler
}

// NewRouter 新しいRouterを作成
func NewRouter(
	cfg *config.Config,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
	checkoutService *checkoutapp.CheckoutApplicationService,
	settlementService *settlementapp.SettlementApplicationService,
	referralService *referralapp.ReferralApplicationService,
	rateResolver *service.RateResolver,
) (*Router, error) {
	e := echo.New()

	// Echoのデフォルトエラーハンドラーを無効化（カスタムエラーハンドラーを使用）
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		// エラーハンドリングミドルウェアで処理される
	}

	// ミドルウェアの設定
	setupMiddleware(e, logger, metrics)

	// ハンドラーの作成
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	commissionHandler := handler.NewCommissionHandler(settlementService)
	referralHandler := handler.NewReferralHandler(referralService)
	ratesHandler := handler.NewRatesHandler(rateResolver)

	// ルーティングの設定
	setupRoutes(e, checkoutHandler, commissionHandler, referralHandler, ratesHandler)

	// Swagger UI / ReDoc統合
	SetupSwagger(e)

	return &Router{
		echo:              e,
		checkoutHandler:   checkoutHandler,
		commissionHandler: commissionHandler,
		referralHandler:   referralHandler,
		ratesHandler:      ratesHandler,
	}, nil
}

// setupMiddleware ミドルウェアを設定
func setupMiddleware(e *echo.Echo, logger *otelinfra.Logger, metrics *otelinfra.Metrics) {
	// リカバリーミドルウェア
	e.Use(middleware.Recover())

	// CORS設定
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"}, // 本番環境では適切に設定
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// リクエストIDの設定
	e.Use(middleware.RequestID())

	// セキュリティヘッダー
	e.Use(restmiddleware.SecurityHeadersMiddleware())

	// トレーシングミドルウェア
	e.Use(restmiddleware.TracingMiddleware())

	// メトリクスミドルウェア
	e.Use(restmiddleware.MetricsMiddleware(metrics))

	// ログミドルウェア
	e.Use(restmiddleware.LoggingMiddleware(logger))

	// エラーハンドリングミドルウェア
	e.Use(restmiddleware.ErrorHandlerMiddleware(logger))
}

// setupRoutes ルーティングを設定
func setupRoutes(
	e *echo.Echo,
	checkoutHandler *handler.CheckoutHandler,
	commissionHandler *handler.CommissionHandler,
	referralHandler *handler.ReferralHandler,
	ratesHandler *handler.RatesHandler,
) {
	// API v1グループ
	api := e.Group("/api/v1")

	// チェックアウト関連エンドポイント
	api.POST("/checkout/validate-code", checkoutHandler.ValidateCode)
	api.POST("/checkout/redeem", checkoutHandler.RedeemCode)
	api.GET("/promotions/candidates", checkoutHandler.ListCandidates)

	// コミッション精算関連エンドポイント
	api.POST("/commissions/compute", commissionHandler.ComputeCommission)
	api.POST("/conversions", commissionHandler.RecordConversion)
	api.GET("/affiliates/:affiliate_id/conversions", commissionHandler.ListConversions)

	// 紹介コード関連エンドポイント
	api.GET("/affiliates/:affiliate_id/referral-code", referralHandler.IssueCode)
	api.GET("/referral-codes/:code", referralHandler.ResolveCode)

	// 管理用エンドポイント
	api.POST("/admin/commission-rates/invalidate", ratesHandler.InvalidateCache)

	// ヘルスチェックエンドポイント
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})
}

// Start サーバーを起動
func (r *Router) Start(address string) error {
	return r.echo.Start(address)
}

// Shutdown サーバーをシャットダウン
func (r *Router) Shutdown() error {
	return r.echo.Close()
}
