package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/wearapparel/admin-console/internal/auth"
	"github.com/wearapparel/admin-console/internal/config"
	"github.com/wearapparel/admin-console/internal/db"
	api "github.com/wearapparel/admin-console/internal/http"
	"github.com/wearapparel/admin-console/internal/http/handlers"
	rl "github.com/wearapparel/admin-console/internal/http/rate_limiter"
	"github.com/wearapparel/admin-console/internal/mailsvc"
	"github.com/wearapparel/admin-console/internal/repo"
)

// @title WEAR APPAREL Admin Console API
// @version 1.0
// @description REST API behind the staff console: orders, dashboard analytics, staff accounts.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or could not be loaded")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	auth.SetSecret(cfg.JWTSecret)

	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	defer rdb.Close()

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	defer database.Close()

	mailer := mailsvc.NewSMTPMailer(cfg.SMTP)
	mailsvc.SetRedis(rdb, ctx)
	api.SetAbuseReporting(rdb, ctx, mailer, cfg.AlertTo)

	handlers.SetOrderRepo(repo.NewPostgresOrderRepository(database))
	handlers.SetOrderItemRepo(repo.NewPostgresOrderItemRepository(database))
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))
	handlers.SetStatsRepo(repo.NewPostgresStatsRepository(database))
	handlers.SetTokenStore(auth.NewRedisTokenStore(rdb, ctx))
	handlers.SetMailer(mailer)
	handlers.SetResetURLBase(cfg.ResetURLBase)

	go rl.StartVisitorCleanupLoop()
	go mailsvc.StartDailyResetSummary(24*time.Hour, mailer, cfg.AlertTo)

	r := api.NewRouter()
	log.Println("✅ Server running on", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}
