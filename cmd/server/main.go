package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	checkoutapp "promo-server/internal/application/checkout"
	referralapp "promo-server/internal/application/referral"
	settlementapp "promo-server/internal/application/settlement"
	"promo-server/internal/domain/service"
	"promo-server/internal/infrastructure/config"
	otelinfra "promo-server/internal/infrastructure/observability/otel"
	"promo-server/internal/infrastructure/persistence/mysql"
	"promo-server/internal/presentation/rest"
)

func main() {
	// 設定の読み込み
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// OpenTelemetryの初期化
	tracerShutdown, err := otelinfra.InitTracer(&cfg.OpenTelemetry)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerShutdown(ctx); err != nil {
			log.Printf("Failed to shutdown tracer: %v", err)
		}
	}()

	meterShutdown, err := otelinfra.InitMeter(&cfg.OpenTelemetry)
	if err != nil {
		log.Fatalf("Failed to initialize meter: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := meterShutdown(ctx); err != nil {
			log.Printf("Failed to shutdown meter: %v", err)
		}
	}()

	// ロガーとメトリクスの初期化
	tracer := otelinfra.Tracer("promo-server")
	logger := otelinfra.NewLogger(tracer)
	metrics, err := otelinfra.NewMetrics("promo-server")
	if err != nil {
		log.Fatalf("Failed to create metrics: %v", err)
	}

	// データベース接続の初期化
	db, err := mysql.NewDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// リポジトリの初期化
	promotionRepo := mysql.NewPromotionRepository(db)
	rateRepo := mysql.NewCommissionRateRepository(db)
	conversionRepo := mysql.NewConversionRepository(db)
	affiliateRepo := mysql.NewAffiliateRepository(db)

	// トランザクションマネージャーの初期化
	txManager := mysql.NewTransactionManager(db)

	// ドメインサービスの初期化
	rateResolver := service.NewRateResolver(rateRepo, cfg.Engine.RateCacheTTL)

	// アプリケーションサービスの初期化
	checkoutService := checkoutapp.NewCheckoutApplicationService(
		promotionRepo,
		txManager,
		logger,
		metrics,
	)

	settlementService := settlementapp.NewSettlementApplicationService(
		rateResolver,
		conversionRepo,
		logger,
		metrics,
	)

	referralService := referralapp.NewReferralApplicationService(
		affiliateRepo,
		logger,
		metrics,
	)

	// REST APIルーターの初期化
	router, err := rest.NewRouter(
		cfg,
		logger,
		metrics,
		checkoutService,
		settlementService,
		referralService,
		rateResolver,
	)
	if err != nil {
		log.Fatalf("Failed to create router: %v", err)
	}

	// サーバーアドレスの設定
	address := fmt.Sprintf(":%d", cfg.Server.Port)

	// グレースフルシャットダウンの設定
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// REST APIサーバーを別ゴルーチンで起動
	go func() {
		log.Printf("REST API server starting on %s", address)
		if err := router.Start(address); err != nil {
			log.Printf("REST API server error: %v", err)
		}
	}()

	// シグナルを待機
	<-quit
	log.Println("Shutting down server...")

	// グレースフルシャットダウン
	if err := router.Shutdown(); err != nil {
		log.Printf("Error shutting down REST API server: %v", err)
	}

	log.Println("Server stopped")
}
