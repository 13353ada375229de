package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"storefront/cmd"
	"storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/catalog"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDatabase(configs)

	menuCatalog, err := catalog.NewEmbeddedMenuCatalog()
	if err != nil {
		log.Fatalf("Error loading menu catalog: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, menuCatalog)

	jobManager := jobs.NewJobManager(
		app.CreateGetStalePendingOrdersQueryHandler(),
		configs.PendingReminderAge,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		OperatorToken:      goDotEnvVariable("OPERATOR_TOKEN"),
		PendingReminderAge: pendingReminderAge(),
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

func pendingReminderAge() time.Duration {
	raw := goDotEnvVariable("PENDING_REMINDER_AGE")
	if raw == "" {
		return 10 * time.Minute
	}

	age, err := time.ParseDuration(raw)
	if err != nil || age <= 0 {
		log.Fatalf("Invalid PENDING_REMINDER_AGE: %s", raw)
	}
	return age
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()

	server := http.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateListOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetMenuQueryHandler(),
	)
	http.RegisterRoutes(e, server, configs.OperatorToken)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
