package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/plantnet/plantnet-server/internal/api/http/router"
	httpServer "github.com/plantnet/plantnet-server/internal/api/http/server"
	"github.com/plantnet/plantnet-server/internal/config"
	"github.com/plantnet/plantnet-server/internal/logger"
	"github.com/plantnet/plantnet-server/internal/model"
	"github.com/plantnet/plantnet-server/internal/payment"
	"github.com/plantnet/plantnet-server/internal/repository/postgres"
	"github.com/plantnet/plantnet-server/internal/server"
	"github.com/plantnet/plantnet-server/internal/service"
	storage "github.com/plantnet/plantnet-server/internal/storage/minio"
	"github.com/plantnet/plantnet-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	plantRepo := postgres.NewPlantRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	tokenManager := token.NewJWT(cfg.JWT.Secret)

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	imageStore, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	payments := payment.New(cfg.Stripe.SecretKey)

	authService := service.NewAuth(userRepo, tokenManager, logger)
	catalogService := service.NewCatalog(plantRepo, imageStore, logger)
	checkoutService := service.NewCheckout(plantRepo, orderRepo, payments, cfg.Stripe.Currency, logger)

	r := router.New(
		authService,
		catalogService,
		checkoutService,
		tokenManager,
		cfg.CORS.AllowedOrigins,
		cfg.IsProduction(),
		logger,
	)
	srv := httpServer.NewHTTPServer(r.Handler(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
