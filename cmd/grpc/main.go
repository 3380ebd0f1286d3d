package main

import (
	"log"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/fekuna/omnipos-marketplace-service/config"
	"github.com/fekuna/omnipos-marketplace-service/internal/fixture"
	"github.com/fekuna/omnipos-marketplace-service/internal/format"
	"github.com/fekuna/omnipos-marketplace-service/internal/logger"
	"github.com/fekuna/omnipos-marketplace-service/internal/query"
	"github.com/fekuna/omnipos-marketplace-service/internal/rpc"
	"github.com/fekuna/omnipos-marketplace-service/internal/rpcctx"

	catH "github.com/fekuna/omnipos-marketplace-service/internal/category/handler"
	catRepoPkg "github.com/fekuna/omnipos-marketplace-service/internal/category/repository"
	catUCPkg "github.com/fekuna/omnipos-marketplace-service/internal/category/usecase"

	chatH "github.com/fekuna/omnipos-marketplace-service/internal/chat/handler"
	chatRepoPkg "github.com/fekuna/omnipos-marketplace-service/internal/chat/repository"
	chatUCPkg "github.com/fekuna/omnipos-marketplace-service/internal/chat/usecase"

	listH "github.com/fekuna/omnipos-marketplace-service/internal/listing/handler"
	listRepoPkg "github.com/fekuna/omnipos-marketplace-service/internal/listing/repository"
	listUCPkg "github.com/fekuna/omnipos-marketplace-service/internal/listing/usecase"

	statsH "github.com/fekuna/omnipos-marketplace-service/internal/stats/handler"
	statsRepoPkg "github.com/fekuna/omnipos-marketplace-service/internal/stats/repository"
	statsUCPkg "github.com/fekuna/omnipos-marketplace-service/internal/stats/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
		FilePath:          cfg.Logger.FilePath,
	}
	if cfg.Server.AppEnv == "development" || cfg.Server.AppEnv == "dev" {
		logConfig.IsDevelopment = true
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Load Catalog
	catalog, err := fixture.Load(cfg.Catalog.FixtureDir, time.Now())
	if err != nil {
		appLogger.Fatal("Could not load catalog fixtures", zap.String("dir", cfg.Catalog.FixtureDir), zap.Error(err))
	}
	appLogger.Info("Loaded catalog",
		zap.Int("businesses", len(catalog.Businesses)),
		zap.Int("products", len(catalog.Products)),
		zap.Int("conversations", len(catalog.Conversations)),
	)

	formatter := format.NewFormatter(cfg.Display.Locale)
	if _, err := formatter.FormatPrice(0, cfg.Display.Currency); err != nil {
		appLogger.Fatal("Unsupported display currency", zap.String("currency", cfg.Display.Currency), zap.Error(err))
	}

	// 4. Initialize Repositories
	listRepo := listRepoPkg.NewMemoryRepository(catalog)
	catRepo := catRepoPkg.NewMemoryRepository(catalog)
	chatRepo := chatRepoPkg.NewMemoryRepository(catalog)
	statsRepo := statsRepoPkg.NewMemoryRepository(catalog)

	// 5. Initialize UseCases
	listUC := listUCPkg.NewListingUseCase(listRepo, listUCPkg.Options{
		BusinessSort: query.SortKey(cfg.Display.DefaultBusinessSort),
		ProductSort:  query.SortKey(cfg.Display.DefaultProductSort),
		PriceRange:   &query.PriceRange{Min: cfg.Display.DefaultPriceMin, Max: cfg.Display.DefaultPriceMax},
	}, appLogger)
	catUC := catUCPkg.NewCategoryUseCase(catRepo, listRepo, appLogger)
	chatUC := chatUCPkg.NewChatUseCase(chatRepo, formatter, cfg.Display.ClockSkew, appLogger)
	statsUC := statsUCPkg.NewStatsUseCase(statsRepo, formatter, cfg.Display.AnimationFrames, appLogger)

	// 6. Initialize Handlers
	listHandler := listH.NewListingHandler(listUC, formatter, cfg.Display.Currency, appLogger)
	catHandler := catH.NewCategoryHandler(catUC, appLogger)
	chatHandler := chatH.NewChatHandler(chatUC, appLogger)
	statsHandler := statsH.NewStatsHandler(statsUC, appLogger)

	// 7. Start gRPC Server
	port := cfg.Server.GRPCPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	lis, err := net.Listen("tcp", port)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(rpcctx.ContextInterceptor(appLogger)),
	)

	// Register Services
	rpc.RegisterListingServiceServer(grpcServer, listHandler)
	rpc.RegisterCategoryServiceServer(grpcServer, catHandler)
	rpc.RegisterChatServiceServer(grpcServer, chatHandler)
	rpc.RegisterStatsServiceServer(grpcServer, statsHandler)

	// Register Reflection
	reflection.Register(grpcServer)

	appLogger.Info("Starting gRPC server",
		zap.String("port", port),
		zap.String("locale", formatter.Locale()),
	)

	// Graceful Shutdown
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	grpcServer.GracefulStop()
	appLogger.Info("Server stopped")
}
