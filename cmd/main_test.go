package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-08-30"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	if !contains(output, "version v1.0.0") ||
		!contains(output, "commit abcd1234") ||
		!contains(output, "build 2026-08-30") {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

// Helper function to check substring
func contains(s, substr string) bool {
	return bytes.Contains([]byte(s), []byte(substr))
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	// Application
	if cfg.appHost != "localhost" || cfg.appPort != "8080" || cfg.logLevel != "info" {
		t.Errorf("unexpected app config: %v/%v/%v", cfg.appHost, cfg.appPort, cfg.logLevel)
	}

	// PostgreSQL
	if cfg.pgHost != "localhost" || cfg.pgPort != 5432 || cfg.pgUser != "user" || cfg.pgPassword != "password" || cfg.pgDB != "database" ||
		cfg.pgMaxOpenConns != 16 || cfg.pgMaxIdleConns != 8 {
		t.Errorf("unexpected postgres config")
	}

	// Redis
	if cfg.redisHost != "localhost" || cfg.redisPort != 6379 || cfg.redisDB != 0 || cfg.redisPassword != "" ||
		cfg.redisPoolSize != 10 || cfg.redisMinIdleConns != 2 || cfg.ratingTTLSecond != 300 {
		t.Errorf("unexpected redis config")
	}

	// Kafka disabled by default
	if cfg.kafkaBrokers != "" || cfg.kafkaTopic != "review-platform-events" {
		t.Errorf("unexpected kafka config")
	}

	// SMTP
	if cfg.smtpHost != "localhost" || cfg.smtpPort != 587 || cfg.smtpFrom != "noreply@localhost" {
		t.Errorf("unexpected smtp config")
	}

	// Tokens
	if cfg.jwtSecretKey != "my_super_secret_key" || cfg.jwtExpSecond != 86400 {
		t.Errorf("unexpected jwt config")
	}
	if cfg.confirmationSecretKey != "my_super_secret_key" {
		t.Errorf("unexpected confirmation config")
	}
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")

	os.Setenv("POSTGRES_HOST", "pg.example.com")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("POSTGRES_USER", "admin")
	os.Setenv("POSTGRES_PASSWORD", "secret")
	os.Setenv("POSTGRES_DB", "mydb")
	os.Setenv("POSTGRES_MAX_OPEN_CONNS", "20")
	os.Setenv("POSTGRES_MAX_IDLE_CONNS", "10")

	os.Setenv("REDIS_HOST", "redis.example.com")
	os.Setenv("REDIS_PORT", "6380")
	os.Setenv("REDIS_DB", "2")
	os.Setenv("REDIS_PASSWORD", "redispass")
	os.Setenv("REDIS_POOL_SIZE", "15")
	os.Setenv("REDIS_MIN_IDLE_CONNS", "5")
	os.Setenv("RATING_CACHE_TTL_SECOND", "120")

	os.Setenv("KAFKA_BROKERS", "kafka1:9092,kafka2:9092")
	os.Setenv("KAFKA_TOPIC", "events")

	os.Setenv("SMTP_HOST", "smtp.example.com")
	os.Setenv("SMTP_PORT", "465")
	os.Setenv("SMTP_USERNAME", "mailer")
	os.Setenv("SMTP_PASSWORD", "mailpass")
	os.Setenv("SMTP_FROM", "noreply@example.com")

	os.Setenv("JWT_SECRET_KEY", "supersecret")
	os.Setenv("JWT_EXP_SECOND", "300")
	os.Setenv("CONFIRMATION_SECRET_KEY", "confirmsecret")

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	if cfg.appHost != "127.0.0.1" || cfg.appPort != "9090" || cfg.logLevel != "debug" {
		t.Errorf("unexpected app config")
	}
	if cfg.pgHost != "pg.example.com" || cfg.pgPort != 5433 || cfg.pgUser != "admin" || cfg.pgPassword != "secret" || cfg.pgDB != "mydb" ||
		cfg.pgMaxOpenConns != 20 || cfg.pgMaxIdleConns != 10 {
		t.Errorf("unexpected postgres config")
	}
	if cfg.redisHost != "redis.example.com" || cfg.redisPort != 6380 || cfg.redisDB != 2 || cfg.redisPassword != "redispass" ||
		cfg.redisPoolSize != 15 || cfg.redisMinIdleConns != 5 || cfg.ratingTTLSecond != 120 {
		t.Errorf("unexpected redis config")
	}
	if cfg.kafkaBrokers != "kafka1:9092,kafka2:9092" || cfg.kafkaTopic != "events" {
		t.Errorf("unexpected kafka config")
	}
	if cfg.smtpHost != "smtp.example.com" || cfg.smtpPort != 465 || cfg.smtpUsername != "mailer" ||
		cfg.smtpPassword != "mailpass" || cfg.smtpFrom != "noreply@example.com" {
		t.Errorf("unexpected smtp config")
	}
	if cfg.jwtSecretKey != "supersecret" || cfg.jwtExpSecond != 300 || cfg.confirmationSecretKey != "confirmsecret" {
		t.Errorf("unexpected token config")
	}
}

// ------------------ Full integration test ------------------
func TestRun_Success(t *testing.T) {
	ctx := context.Background()

	// ------------------ Postgres container ------------------
	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	// ------------------ Redis container ------------------
	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	// ------------------ Run ------------------
	testCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cfg := config{
		appHost:  "127.0.0.1",
		appPort:  "8086",
		logLevel: "debug",

		pgHost:         pgHost,
		pgPort:         pgPort.Int(),
		pgUser:         "user",
		pgPassword:     "password",
		pgDB:           "testdb",
		pgMaxOpenConns: 5,
		pgMaxIdleConns: 2,

		redisHost:         redisHost,
		redisPort:         redisPort.Int(),
		redisPoolSize:     10,
		redisMinIdleConns: 2,
		ratingTTLSecond:   60,

		// no kafka brokers: event publishing disabled
		kafkaTopic: "review-platform-events",

		smtpHost: "localhost",
		smtpPort: 587,
		smtpFrom: "noreply@localhost",

		jwtSecretKey:          "testsecret",
		jwtExpSecond:          60,
		confirmationSecretKey: "testsecret",
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	select {
	case <-time.After(11 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		if err != nil {
			t.Fatalf("expected run to succeed, got error: %v", err)
		}
		t.Log("run completed successfully")
	}
}
