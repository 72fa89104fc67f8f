package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"sokoni/cmd"
	"sokoni/internal/adapters/out/kafka"
	"sokoni/internal/adapters/out/postgres/deliveryrepo"
	"sokoni/internal/adapters/out/postgres/orderrepo"
	"sokoni/internal/adapters/out/postgres/outboxrepo"
	"sokoni/internal/adapters/out/postgres/productrepo"
	"sokoni/internal/adapters/out/postgres/riderrepo"
	"sokoni/internal/adapters/out/postgres/shoprepo"

	httpin "sokoni/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	createDbIfNotExists(configs)
	gormDB := mustConnectDb(configs)
	mustMigrateDb(gormDB)

	redisClient := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})

	publisher := kafka.NewPublisher(
		strings.Split(configs.KafkaBrokers, ","),
		kafka.Topics{
			Orders:     configs.KafkaOrdersTopic,
			Deliveries: configs.KafkaDeliveriesTopic,
		},
	)
	defer publisher.Close()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	app := cmd.NewCompositionRoot(configs, gormDB, redisClient, publisher, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:            goDotEnvVariable("REDIS_ADDR"),
		KafkaBrokers:         goDotEnvVariable("KAFKA_BROKERS"),
		KafkaOrdersTopic:     goDotEnvVariable("KAFKA_ORDERS_TOPIC"),
		KafkaDeliveriesTopic: goDotEnvVariable("KAFKA_DELIVERIES_TOPIC"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// createDbIfNotExists connects to the maintenance database and creates the
// application database when it does not exist yet.
func createDbIfNotExists(configs cmd.Config) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBSslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to connect to postgres: %v", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", configs.DBName).Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check database existence: %v", err)
	}

	if !exists {
		if _, err = db.Exec(fmt.Sprintf("CREATE DATABASE %q", configs.DBName)); err != nil {
			log.Fatalf("Failed to create database %s: %v", configs.DBName, err)
		}
	}
}

func mustConnectDb(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDb(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&deliveryrepo.DeliveryDTO{},
		&riderrepo.RiderDTO{},
		&productrepo.ProductDTO{},
		&shoprepo.ShopDTO{},
		&outboxrepo.NotificationDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err = gormDB.Exec(deliveryrepo.RiderActiveIndexSQL()).Error; err != nil {
		log.Fatalf("Failed to create rider active delivery index: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Logger.SetLevel(log.INFO)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	validator, err := httpin.NewOpenAPIValidator()
	if err != nil {
		e.Logger.Fatal(err)
	}

	server := app.CreateHTTPServer()
	server.RegisterRoutes(e, validator)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
