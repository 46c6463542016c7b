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

	"github.com/sbilibin2017/gw-review-platform/internal/confirmation"
	"github.com/sbilibin2017/gw-review-platform/internal/handlers"
	"github.com/sbilibin2017/gw-review-platform/internal/jwt"
	"github.com/sbilibin2017/gw-review-platform/internal/logger"
	"github.com/sbilibin2017/gw-review-platform/internal/mailer"
	"github.com/sbilibin2017/gw-review-platform/internal/middlewares"
	"github.com/sbilibin2017/gw-review-platform/internal/models"
	"github.com/sbilibin2017/gw-review-platform/internal/policies"
	"github.com/sbilibin2017/gw-review-platform/internal/repositories"
	"github.com/sbilibin2017/gw-review-platform/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/gw-review-platform/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-review-platform API
// @version 1.0.0
// @description Service for rating titles, posting reviews and commenting on them
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
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

// config holds application, database, Redis, Kafka, SMTP, and token
// configuration.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int
	ratingTTLSecond   int

	kafkaBrokers string
	kafkaTopic   string

	smtpHost     string
	smtpPort     int
	smtpUsername string
	smtpPassword string
	smtpFrom     string

	jwtSecretKey string
	jwtExpSecond int

	confirmationSecretKey string
}

// parseConfig loads environment variables from a file and returns the
// full application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "database")
	if cfg.pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	if cfg.ratingTTLSecond, err = strconv.Atoi(getEnv("RATING_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}

	// Kafka config; empty broker list disables event publishing
	cfg.kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "review-platform-events")

	// SMTP config
	cfg.smtpHost = getEnv("SMTP_HOST", "localhost")
	if cfg.smtpPort, err = strconv.Atoi(getEnv("SMTP_PORT", "587")); err != nil {
		return
	}
	cfg.smtpUsername = getEnv("SMTP_USERNAME", "")
	cfg.smtpPassword = getEnv("SMTP_PASSWORD", "")
	cfg.smtpFrom = getEnv("SMTP_FROM", "noreply@localhost")

	// Token config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}
	cfg.confirmationSecretKey = getEnv("CONFIRMATION_SECRET_KEY", "my_super_secret_key")

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", cfg.pgHost, cfg.pgPort, cfg.pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for domain events; left nil when no brokers are
	// configured, which downgrades publishing to a logged no-op.
	var kafkaWriter services.KafkaWriter
	if cfg.kafkaBrokers != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(cfg.kafkaBrokers, ",")...),
			Topic:    cfg.kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Initialize token and email services
	jwtSvc := jwt.New(cfg.jwtSecretKey, time.Duration(cfg.jwtExpSecond)*time.Second)
	codes := confirmation.New(cfg.confirmationSecretKey)
	mail := mailer.New(cfg.smtpHost, cfg.smtpPort, cfg.smtpUsername, cfg.smtpPassword, cfg.smtpFrom)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	genreRepo := repositories.NewGenreRepository(db)
	titleReadRepo := repositories.NewTitleReadRepository(db)
	titleWriteRepo := repositories.NewTitleWriteRepository(db)
	reviewReadRepo := repositories.NewReviewReadRepository(db)
	reviewWriteRepo := repositories.NewReviewWriteRepository(db)
	commentReadRepo := repositories.NewCommentReadRepository(db)
	commentWriteRepo := repositories.NewCommentWriteRepository(db)
	ratingCacheRepo := repositories.NewRatingCacheRepository(rdb, time.Duration(cfg.ratingTTLSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, codes, mail, jwtSvc, kafkaWriter)
	usersService := services.NewUsersService(userReadRepo, userWriteRepo)
	categoriesService := services.NewCategoriesService(categoryRepo)
	genresService := services.NewGenresService(genreRepo)
	titlesService := services.NewTitlesService(titleReadRepo, titleWriteRepo, categoryRepo, genreRepo, reviewReadRepo, ratingCacheRepo)
	reviewsService := services.NewReviewsService(titleReadRepo, reviewReadRepo, reviewWriteRepo, ratingCacheRepo, kafkaWriter)
	commentsService := services.NewCommentsService(reviewReadRepo, commentReadRepo, commentWriteRepo, kafkaWriter)

	// Collection-level policy rules
	adminOnly := func(actor *models.UserDB, _ string) policies.Decision {
		return policies.AdminOnly(actor)
	}
	selfOnly := func(actor *models.UserDB, _ string) policies.Decision {
		return policies.SelfOrAuthenticated(actor)
	}

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.ActorMiddleware(jwtSvc, userReadRepo))

	r.Route("/api/v1", func(r chi.Router) {
		// Public auth routes
		r.Post("/auth/signup", handlers.NewSignupHandler(authService))
		r.Post("/auth/token", handlers.NewTokenHandler(authService))

		// Catalog: anyone reads, admins mutate
		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequirePolicy(policies.ReadOnlyOrAdmin))

			r.Get("/categories", handlers.NewListCategoriesHandler(categoriesService))
			r.Post("/categories", handlers.NewCreateCategoryHandler(categoriesService))
			r.Delete("/categories/{slug}", handlers.NewDeleteCategoryHandler(categoriesService))

			r.Get("/genres", handlers.NewListGenresHandler(genresService))
			r.Post("/genres", handlers.NewCreateGenreHandler(genresService))
			r.Delete("/genres/{slug}", handlers.NewDeleteGenreHandler(genresService))

			r.Get("/titles", handlers.NewListTitlesHandler(titlesService))
			r.Post("/titles", handlers.NewCreateTitleHandler(titlesService))
			r.Get("/titles/{title_id}", handlers.NewGetTitleHandler(titlesService))
			r.Patch("/titles/{title_id}", handlers.NewUpdateTitleHandler(titlesService))
			r.Delete("/titles/{title_id}", handlers.NewDeleteTitleHandler(titlesService))
		})

		// Content: anyone reads, authenticated users write, authorship
		// is judged per object in the services
		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequirePolicy(policies.ContentModerationRequest))

			r.Route("/titles/{title_id}/reviews", func(r chi.Router) {
				r.Get("/", handlers.NewListReviewsHandler(reviewsService))
				r.Post("/", handlers.NewCreateReviewHandler(reviewsService))
				r.Get("/{review_id}", handlers.NewGetReviewHandler(reviewsService))
				r.Patch("/{review_id}", handlers.NewUpdateReviewHandler(reviewsService))
				r.Delete("/{review_id}", handlers.NewDeleteReviewHandler(reviewsService))

				r.Route("/{review_id}/comments", func(r chi.Router) {
					r.Get("/", handlers.NewListCommentsHandler(commentsService))
					r.Post("/", handlers.NewCreateCommentHandler(commentsService))
					r.Get("/{comment_id}", handlers.NewGetCommentHandler(commentsService))
					r.Patch("/{comment_id}", handlers.NewUpdateCommentHandler(commentsService))
					r.Delete("/{comment_id}", handlers.NewDeleteCommentHandler(commentsService))
				})
			})
		})

		// Account management
		r.Route("/users", func(r chi.Router) {
			r.Route("/me", func(r chi.Router) {
				r.Use(middlewares.RequirePolicy(selfOnly))
				r.Get("/", handlers.NewGetMeHandler())
				r.Patch("/", handlers.NewUpdateMeHandler(usersService))
			})

			r.Group(func(r chi.Router) {
				r.Use(middlewares.RequirePolicy(adminOnly))
				r.Get("/", handlers.NewListUsersHandler(usersService))
				r.Post("/", handlers.NewCreateUserHandler(usersService))
				r.Get("/{username}", handlers.NewGetUserHandler(usersService))
				r.Patch("/{username}", handlers.NewUpdateUserHandler(usersService))
				r.Delete("/{username}", handlers.NewDeleteUserHandler(usersService))
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
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
