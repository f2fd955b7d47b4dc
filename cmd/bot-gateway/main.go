package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/sfomin/gw-currency-rates/internal/facades"
	"github.com/sfomin/gw-currency-rates/internal/gateway"
	"github.com/sfomin/gw-currency-rates/internal/handlers"
	"github.com/sfomin/gw-currency-rates/internal/jwt"
	"github.com/sfomin/gw-currency-rates/internal/logger"
	"github.com/sfomin/gw-currency-rates/internal/middlewares"

	pb "github.com/sbilibin2017/proto-exchange/exchange"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sfomin/gw-currency-rates/docs"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title bot-gateway API
// @version 1.0.0
// @description Conversation gateway collecting multi-turn input into single currency store calls
// @host localhost:8080
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		manageURL, queryURL, storeTimeoutSecond,
		sessionTTLSecond, sessionSweepSecond, adminIDs,
		exchangeAddr,
		jwtSecretKey, jwtExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		manageURL, queryURL, storeTimeoutSecond,
		sessionTTLSecond, sessionSweepSecond, adminIDs,
		exchangeAddr,
		jwtSecretKey, jwtExpSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, store, session, gRPC and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	manageURL, queryURL string, storeTimeoutSecond int,
	sessionTTLSecond, sessionSweepSecond int, adminIDs []string,
	exchangeAddr string,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Store services
	manageURL = getEnv("CURRENCY_MANAGER_URL", "http://localhost:5001")
	queryURL = getEnv("DATA_MANAGER_URL", "http://localhost:5002")
	if storeTimeoutSecond, err = strconv.Atoi(getEnv("STORE_TIMEOUT_SECOND", "10")); err != nil {
		return
	}

	// Sessions
	if sessionTTLSecond, err = strconv.Atoi(getEnv("SESSION_TTL_SECOND", "300")); err != nil {
		return
	}
	if sessionSweepSecond, err = strconv.Atoi(getEnv("SESSION_SWEEP_SECOND", "60")); err != nil {
		return
	}
	if ids := getEnv("BOT_ADMIN_IDS", ""); ids != "" {
		adminIDs = strings.Split(ids, ",")
	}

	// External exchange service; empty disables market rate hints
	exchangeAddr = getEnv("EXCHANGE_GRPC_ADDR", "")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "60")); err != nil {
		return
	}

	return
}

// run initializes the logger, store client, session store, optional
// gRPC rate hinter and the HTTP server.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	manageURL, queryURL string, storeTimeoutSecond int,
	sessionTTLSecond, sessionSweepSecond int, adminIDs []string,
	exchangeAddr string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	logg, err := logger.Initialize(logLevel)
	if err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logg.Sync()
	logg.Infof("Logger initialized with level %s", logLevel)

	// Service tokens for mutation calls
	tokens := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Store client over both physical services
	store := facades.NewStoreClient(manageURL, queryURL,
		time.Duration(storeTimeoutSecond)*time.Second, tokens)

	// Optional market rate hinter over gRPC
	var hinter gateway.RateHinter
	if exchangeAddr != "" {
		conn, err := grpc.NewClient(exchangeAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			logg.Fatal("Failed to connect to gRPC service at", exchangeAddr, ":", err)
		}
		defer conn.Close()
		hinter = facades.NewMarketRateGRPCFacade(pb.NewExchangeServiceClient(conn))
	}

	// Sessions and orchestrator
	sessions := gateway.NewSessionStore(time.Duration(sessionTTLSecond) * time.Second)
	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go sessions.Run(sweepCtx, time.Duration(sessionSweepSecond)*time.Second)

	orchestrator := gateway.NewOrchestrator(sessions, store, hinter, adminIDs)

	// Initialize handlers
	turnHandler := handlers.NewTurnHandler(orchestrator)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logg))

	r.Post("/api/v1/turn", turnHandler)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logg.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logg.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Errorw("HTTP server shutdown error", "error", err)
	}

	logg.Info("HTTP server stopped gracefully")
	return nil
}
