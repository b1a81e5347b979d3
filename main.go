package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/COMS4153EcommerceProject/Composite-microservice/clients"
	"github.com/COMS4153EcommerceProject/Composite-microservice/config"
	"github.com/COMS4153EcommerceProject/Composite-microservice/controllers"
	"github.com/COMS4153EcommerceProject/Composite-microservice/executor"
	"github.com/COMS4153EcommerceProject/Composite-microservice/logger"
	"github.com/COMS4153EcommerceProject/Composite-microservice/middleware"
	"github.com/COMS4153EcommerceProject/Composite-microservice/routes"
	"github.com/COMS4153EcommerceProject/Composite-microservice/services"
)

func main() {
	cfg := config.Load()

	zapLogger := logger.Init(cfg.Env)
	defer zapLogger.Sync()

	userUpstream := clients.NewUpstream("User", cfg.UserServiceURL, cfg.RequestTimeout)
	productUpstream := clients.NewUpstream("Product", cfg.ProductServiceURL, cfg.RequestTimeout)
	orderUpstream := clients.NewUpstream("Order", cfg.OrderServiceURL, cfg.RequestTimeout)

	userClient := clients.NewUserClient(userUpstream)
	productClient := clients.NewProductClient(productUpstream)
	orderClient := clients.NewOrderClient(orderUpstream)

	pool := executor.New(cfg.WorkerPoolSize)

	// Redis is optional: it upgrades the operation registry to a store with
	// expiry and enables checkout idempotency keys.
	var operationStore services.OperationStore = services.NewMemoryStore()
	var idemStore services.IdempotencyStore
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		redisClient := redis.NewClient(opts)
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("failed to connect to Redis: %v", err)
		}
		operationStore = services.NewRedisStore(redisClient, cfg.OperationTTL)
		idemStore = services.NewRedisIdempotencyStore(redisClient, cfg.OperationTTL)
		zapLogger.Info("Connected to Redis", zap.Duration("operation_ttl", cfg.OperationTTL))
	}

	checkoutService := services.NewCheckoutService(userClient, productClient, orderClient)
	summaryService := services.NewSummaryService(userClient, productClient, orderClient, pool)
	reportService := services.NewReportService(operationStore, summaryService, pool)

	composite := controllers.NewCompositeController(checkoutService, summaryService, reportService, idemStore)
	proxy := controllers.NewProxyController(userUpstream, productUpstream, orderUpstream)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(zapLogger))

	routes.RegisterRoutes(r, composite, proxy)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zapLogger.Info("composite service listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("shutdown error", zap.Error(err))
	}
	// Let in-flight background reports finish before the process exits.
	pool.Wait()
}
