package main

import (
	"context"
	"crypto/rand"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/idir2023/argan-project/internal/advisor"
	"github.com/idir2023/argan-project/internal/auth"
	"github.com/idir2023/argan-project/internal/cart"
	"github.com/idir2023/argan-project/internal/catalog"
	"github.com/idir2023/argan-project/internal/checkout"
	"github.com/idir2023/argan-project/internal/httpapi"
	"github.com/idir2023/argan-project/internal/notify"
	"github.com/idir2023/argan-project/internal/orders"
	"github.com/idir2023/argan-project/internal/storage"
)

type Config struct {
	HTTPPort        string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration

	StorageEngine string
	SQLitePath    string
	MigrationsDir string

	PostgresHost     string
	PostgresPort     int
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	MongoURI string
	MongoDB  string

	RedisAddr    string
	KafkaBrokers string

	JWTSecret     string
	SessionTTL    time.Duration
	AdminHash     string
	GeminiAPIKey  string
	WhatsAppPhone string
	OrderEmail    string
}

func loadConfig() *Config {
	pgPort, _ := strconv.Atoi(getEnv("POSTGRES_PORT", "5432"))
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,

		StorageEngine: getEnv("STORAGE_ENGINE", "sqlite"),
		SQLitePath:    getEnv("SQLITE_PATH", "./storefront.db"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "./internal/storage/migrations"),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     pgPort,
		PostgresUser:     getEnv("POSTGRES_USER", "postgres"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getEnv("POSTGRES_DB", "storefront"),

		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "storefront"),

		RedisAddr:    getEnv("REDIS_ADDR", ""),
		KafkaBrokers: getEnv("KAFKA_BROKERS", ""),

		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change-me"),
		SessionTTL:    24 * time.Hour,
		AdminHash:     getEnv("ADMIN_PASSWORD_HASH", ""),
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		WhatsAppPhone: getEnv("WHATSAPP_PHONE", "212681736149"),
		OrderEmail:    getEnv("ORDER_EMAIL", "orders@argania.example"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func openStore(cfg *Config) (storage.Store, error) {
	switch cfg.StorageEngine {
	case "memory":
		return storage.NewMemoryStore(), nil

	case "sqlite":
		store, err := storage.NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := store.RunMigrations(cfg.MigrationsDir + "/sqlite"); err != nil {
			return nil, err
		}
		return store, nil

	case "postgres":
		cred := &storage.Credentials{
			Host:              cfg.PostgresHost,
			Port:              cfg.PostgresPort,
			User:              cfg.PostgresUser,
			Password:          cfg.PostgresPassword,
			DBName:            cfg.PostgresDB,
			MigrationsDirPath: cfg.MigrationsDir + "/postgres",
		}
		store, err := storage.NewPostgresStore(cred)
		if err != nil {
			return nil, err
		}
		if err := store.RunMigrations(cred); err != nil {
			return nil, err
		}
		return store, nil

	case "mongo":
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		db, err := storage.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, err
		}
		return storage.NewMongoStore(db), nil

	default:
		return nil, errors.New("unknown storage engine: " + cfg.StorageEngine)
	}
}

func main() {
	log.Println("Storefront server started")

	cfg := loadConfig()

	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	// Catalog with optional Redis listing cache
	var cache catalog.Cache = catalog.NopCache{}
	if cfg.RedisAddr != "" {
		cache = catalog.NewRedisCache(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	}
	catalogRepo := catalog.NewStoreRepository(store)
	catalogService := catalog.NewService(catalogRepo, cache)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := catalogService.Initialize(ctx); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	ordersRepo := orders.NewStoreRepository(store)
	carts := cart.NewManager()
	checkoutService := checkout.NewService(carts, ordersRepo)

	tokens := auth.NewTokenManager([]byte(cfg.JWTSecret), cfg.SessionTTL)
	adminHash := cfg.AdminHash
	if adminHash == "" {
		// No credential configured: generate a throwaway hash so the
		// admin panel stays locked instead of open.
		generated, errHash := auth.HashSecret(string(mustRandomSecret()))
		if errHash != nil {
			log.Fatalf("Failed to provision admin credential: %v", errHash)
		}
		adminHash = generated
		log.Println("ADMIN_PASSWORD_HASH not set, admin panel disabled")
	}
	verifier := auth.NewBcryptVerifier(adminHash)
	signupFlow := auth.NewSignupFlow()

	advisorClient := advisor.NewGeminiClient(cfg.GeminiAPIKey)

	// Order confirmation outbox, only when brokers are configured
	if cfg.KafkaBrokers != "" {
		publisher := notify.NewOutboxPublisher(ordersRepo, strings.Split(cfg.KafkaBrokers, ",")...)
		defer publisher.Close()
		go publisher.Run(ctx)
	}

	handlers := httpapi.Handlers{
		Products:  httpapi.NewProductHandler(catalogService),
		Cart:      httpapi.NewCartHandler(carts, catalogService),
		Checkout:  httpapi.NewCheckoutHandler(checkoutService, cfg.WhatsAppPhone, cfg.OrderEmail),
		Orders:    httpapi.NewOrdersHandler(ordersRepo),
		FastOrder: httpapi.NewFastOrderHandler(catalogService, ordersRepo, cfg.WhatsAppPhone, cfg.OrderEmail),
		Auth:      httpapi.NewAuthHandler(tokens, verifier, signupFlow),
		Advisor:   httpapi.NewAdvisorHandler(advisorClient, catalogService),
	}

	router := httpapi.NewRouter(handlers, tokens, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(router, "storefront"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Storefront API listening on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}

func mustRandomSecret() []byte {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatalf("Failed to generate secret: %v", err)
	}
	return b
}
