package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"lostfound-api/internal/core/auth"
	"lostfound-api/internal/core/cache"
	"lostfound-api/internal/core/config"
	"lostfound-api/internal/core/database"
	"lostfound-api/internal/core/logger"
	"lostfound-api/internal/core/server"
	"lostfound-api/internal/domain"
	"lostfound-api/internal/identity"
	"lostfound-api/internal/repo"
	"lostfound-api/internal/service"
	"lostfound-api/internal/storage"
	"lostfound-api/internal/transport/http/handler"
	"lostfound-api/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(domain.All()...); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	jwter := &auth.JWTer{
		Secret:   []byte(cfg.JWT.Secret),
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
		TTL:      time.Duration(cfg.JWT.AccessTokenTTLHrs) * time.Hour,
	}

	images, err := storage.NewMinioStore(storage.MinioOpts{
		Endpoint:      cfg.Storage.Endpoint,
		AccessKey:     cfg.Storage.AccessKey,
		SecretKey:     cfg.Storage.SecretKey,
		Bucket:        cfg.Storage.Bucket,
		UseSSL:        cfg.Storage.UseSSL,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
	})
	if err != nil {
		log.Fatal("storage init failed", zap.Error(err))
	}
	if err := images.EnsureBucket(context.Background()); err != nil {
		log.Fatal("storage bucket check failed", zap.Error(err))
	}

	var c *cache.Cache
	if cfg.Redis.Enable {
		c = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		log.Info("redis cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	// Explicit wiring, no ambient registry.
	userRepo := repo.NewUserRepo(db)
	itemRepo := repo.NewItemRepo(db)
	reportRepo := repo.NewReportRepo(db)
	claimRepo := repo.NewClaimRepo(db)

	idStore := identity.NewStore(db, userRepo)
	if err := idStore.Seed(cfg.Seed.AdminEmail, cfg.Seed.AdminPassword); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}

	userSvc := service.NewUserService(idStore, userRepo, jwter, log)
	reportSvc := service.NewReportService(reportRepo, userRepo, images, c, log)
	itemSvc := service.NewItemService(itemRepo, log)
	claimSvc := service.NewClaimService(claimRepo, itemRepo, log)

	r := router.NewAPIEngine(log, jwter, router.Handlers{
		Auth:   handler.NewAuthHandler(userSvc, log),
		User:   handler.NewUserHandler(userSvc, log),
		Report: handler.NewReportHandler(reportSvc, log),
		Item:   handler.NewItemHandler(itemSvc, log),
		Claim:  handler.NewClaimHandler(claimSvc, log),
	})

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("api_v1", baseURL+"/api/v1"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api start FAILED", zap.Error(err))
		}
	}()
	log.Info("api started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
