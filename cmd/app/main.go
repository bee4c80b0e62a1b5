package main

import (
	"fmt"
	nethttp "net/http"
	"os"

	"courierdocs/cmd"
	"courierdocs/internal/adapters/in/http"
	"courierdocs/internal/adapters/out/postgres/jobrepo"
	"courierdocs/internal/adapters/out/postgres/noterepo"
	"courierdocs/internal/adapters/out/postgres/sequencerepo"
	"courierdocs/internal/adapters/out/postgres/settingsrepo"
	"courierdocs/internal/adapters/out/postgres/shipmentrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)
	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.ElementDTO{},
		&noterepo.DeliveryNoteDTO{},
		&noterepo.ItemDTO{},
		&jobrepo.JobDTO{},
		&sequencerepo.CounterDTO{},
		&settingsrepo.SettingDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Validator = http.NewRequestValidator()

	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server := http.NewServer(
		app.CreateCreateShipmentCommandHandler(),
		app.CreateUpdateShipmentCommandHandler(),
		app.CreateMarkShipmentCollectedCommandHandler(),
		app.CreateCreateDeliveryNoteCommandHandler(),
		app.CreateUpsertSettingCommandHandler(),
		app.CreateGetShipmentQueryHandler(),
		app.CreateGetUncollectedShipmentsQueryHandler(),
		app.CreateGetDeliveryNoteQueryHandler(),
		app.CreateGenerateWaybillDocumentQueryHandler(),
		app.CreateGenerateDeliveryNoteDocumentQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
