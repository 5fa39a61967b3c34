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
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/qr-verification-service/internal/devices"
	"github.com/sbilibin2017/qr-verification-service/internal/handlers"
	"github.com/sbilibin2017/qr-verification-service/internal/jwt"
	"github.com/sbilibin2017/qr-verification-service/internal/logger"
	"github.com/sbilibin2017/qr-verification-service/internal/middlewares"
	"github.com/sbilibin2017/qr-verification-service/internal/repositories"
	"github.com/sbilibin2017/qr-verification-service/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/qr-verification-service/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title qr-verification-service API
// @version 1.0.0
// @description Service for issuing, verifying and analyzing QR codes
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, baseURL,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, redisExpSecond,
		kafkaBrokers, kafkaTopic,
		logLevel,
		jwtSecret, jwtExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, baseURL,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, redisExpSecond,
		kafkaBrokers, kafkaTopic,
		logLevel,
		jwtSecret, jwtExpSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, baseURL string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string, redisExpSecond int,
	kafkaBrokers, kafkaTopic string,
	logLevel string,
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
	baseURL = getEnv("APP_BASE_URL", fmt.Sprintf("http://%s:%s", appHost, appPort))
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisExpSecond, err = strconv.Atoi(getEnv("REDIS_EXP_SECOND", "300")); err != nil {
		return
	}

	// Kafka config. An empty broker list disables event publishing.
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "qr-scan-events")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka writer, and HTTP
// server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort, baseURL string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string, redisExpSecond int,
	kafkaBrokers, kafkaTopic string,
	logLevel string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", pgHost, pgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka writer for scan events. Optional: left nil when no brokers
	// are configured.
	var kafkaWriter *kafka.Writer
	if kafkaBrokers != "" {
		kafkaWriter = &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(kafkaBrokers, ",")...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kafkaWriter.Close()
	}

	// Initialize JWT service
	jwtSvc := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	qrReadRepo := repositories.NewQRCodeReadRepository(db)
	qrWriteRepo := repositories.NewQRCodeWriteRepository(db, middlewares.GetTxFromContext)
	verificationReadRepo := repositories.NewVerificationReadRepository(db)
	verificationWriteRepo := repositories.NewVerificationWriteRepository(db, middlewares.GetTxFromContext)
	analyticsCacheRepo := repositories.NewAnalyticsCacheRepository(rdb, time.Duration(redisExpSecond)*time.Second)

	// Initialize services
	registry := services.NewCodeRegistry(qrReadRepo, baseURL)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc)
	qrService := services.NewQRCodeService(qrReadRepo, qrWriteRepo, registry, verificationReadRepo)
	verificationService := services.NewVerificationService(qrReadRepo, verificationWriteRepo, qrWriteRepo, kafkaWriterOrNil(kafkaWriter))
	analyticsService := services.NewAnalyticsService(qrReadRepo, verificationReadRepo, analyticsCacheRepo, devices.NewFixedRatioClassifier())
	exportService := services.NewExportService(analyticsService, verificationReadRepo)

	// Initialize handlers and router
	r := newRouter(routerConfig{
		health:   handlers.NewHealthHandler(db),
		register: handlers.NewRegisterHandler(authService),
		login:    handlers.NewLoginHandler(authService),
		profile:  handlers.NewProfileHandler(),
		logout:   handlers.NewLogoutHandler(),

		createQR: handlers.NewCreateQRCodeHandler(qrService),
		listQR:   handlers.NewListQRCodesHandler(qrService),
		getQR:    handlers.NewGetQRCodeHandler(qrService),
		updateQR: handlers.NewUpdateQRCodeHandler(qrService),
		deleteQR: handlers.NewDeleteQRCodeHandler(qrService),

		verify:    handlers.NewVerifyHandler(verificationService),
		stats:     handlers.NewStatsHandler(analyticsService),
		analytics: handlers.NewAnalyticsHandler(analyticsService),
		export:    handlers.NewExportHandler(exportService),

		logging: middlewares.LoggingMiddleware(logger.Log),
		auth:    middlewares.AuthMiddleware(jwtSvc, userReadRepo),
		admin:   middlewares.AdminMiddleware(),
		tx:      middlewares.TxMiddleware(db),

		swaggerURL: fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort),
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// routerConfig carries the endpoint handlers and middleware wired into
// the HTTP router.
type routerConfig struct {
	health   http.HandlerFunc
	register http.HandlerFunc
	login    http.HandlerFunc
	profile  http.HandlerFunc
	logout   http.HandlerFunc

	createQR http.HandlerFunc
	listQR   http.HandlerFunc
	getQR    http.HandlerFunc
	updateQR http.HandlerFunc
	deleteQR http.HandlerFunc

	verify    http.HandlerFunc
	stats     http.HandlerFunc
	analytics http.HandlerFunc
	export    http.HandlerFunc

	logging func(http.Handler) http.Handler
	auth    func(http.Handler) http.Handler
	admin   func(http.Handler) http.Handler
	tx      func(http.Handler) http.Handler

	swaggerURL string
}

func newRouter(cfg routerConfig) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(cfg.logging)

	// Public routes
	r.Get("/health", cfg.health)
	r.Post("/api/auth/register", cfg.register)
	r.Post("/api/auth/login", cfg.login)

	// The verify route writes the scan event and the counter bump in one
	// transaction.
	r.Group(func(r chi.Router) {
		r.Use(cfg.tx)
		r.Get("/api/qrcode/verify/{code}", cfg.verify)
	})

	// Protected admin routes
	r.Group(func(r chi.Router) {
		r.Use(cfg.auth)

		r.Get("/api/auth/profile", cfg.profile)
		r.Post("/api/auth/logout", cfg.logout)

		r.Group(func(r chi.Router) {
			r.Use(cfg.admin)

			// Static segments first so they are not captured by /{id}.
			r.Get("/api/qrcode/stats", cfg.stats)
			r.Get("/api/qrcode/analytics", cfg.analytics)
			r.Get("/api/qrcode/export", cfg.export)

			r.Group(func(r chi.Router) {
				r.Use(cfg.tx)
				r.Post("/api/qrcode", cfg.createQR)
				r.Put("/api/qrcode/{id}", cfg.updateQR)
				r.Delete("/api/qrcode/{id}", cfg.deleteQR)
			})

			r.Get("/api/qrcode", cfg.listQR)
			r.Get("/api/qrcode/{id}", cfg.getQR)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(cfg.swaggerURL),
	))

	return r
}

// kafkaWriterOrNil keeps a typed nil *kafka.Writer from becoming a
// non-nil services.KafkaWriter interface value.
func kafkaWriterOrNil(w *kafka.Writer) services.KafkaWriter {
	if w == nil {
		return nil
	}
	return w
}
