package main

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"

	"warehouse/cmd"
	httpin "warehouse/internal/adapters/in/http"
	"warehouse/internal/adapters/out/memory"
	"warehouse/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	store := memory.NewStore()
	seed, err := cmd.SeedWarehouse(context.Background(), configs, store)
	if err != nil {
		log.Fatalf("Error seeding warehouse: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, store, seed.WarehouseID)
	if err != nil {
		log.Fatalf("Error building composition root: %v", err)
	}

	scenario, err := cmd.NewScenario(configs, seed)
	if err != nil {
		log.Fatalf("Error parsing scenario: %v", err)
	}
	if err = scenario.Run(context.Background(), &app, logger); err != nil {
		log.Fatalf("Error running scenario: %v", err)
	}

	// Without an HTTP port the process is a one-shot scenario replay.
	if configs.HTTPPort == "" {
		return
	}

	if configs.AutoCycle == "true" {
		jobManager := jobs.NewJobManager(
			seed.WarehouseID,
			app.CreateRunFulfillmentCycleCommandHandler(),
			logger,
		)
		if err = jobManager.StartAll(); err != nil {
			log.Fatalf("Error starting jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:  goDotEnvVariable("HTTP_PORT"),
		AutoCycle: goDotEnvVariable("AUTO_CYCLE"),

		WarehouseX: goDotEnvVariable("WAREHOUSE_X"),
		WarehouseY: goDotEnvVariable("WAREHOUSE_Y"),
		ClockStart: goDotEnvVariable("CLOCK_START"),

		ProductName:  goDotEnvVariable("PRODUCT_NAME"),
		ProductPrice: goDotEnvVariable("PRODUCT_PRICE"),

		SupplierName: goDotEnvVariable("SUPPLIER_NAME"),
		SupplierCap:  goDotEnvVariable("SUPPLIER_CAP"),

		PickerShiftStart:  goDotEnvVariable("PICKER_SHIFT_START"),
		PickerShiftEnd:    goDotEnvVariable("PICKER_SHIFT_END"),
		CourierShiftStart: goDotEnvVariable("COURIER_SHIFT_START"),
		CourierShiftEnd:   goDotEnvVariable("COURIER_SHIFT_END"),

		CustomerX:     goDotEnvVariable("CUSTOMER_X"),
		CustomerY:     goDotEnvVariable("CUSTOMER_Y"),
		OrderUnits:    goDotEnvVariable("ORDER_UNITS"),
		OrderSubmitAt: goDotEnvVariable("ORDER_SUBMIT_AT"),

		SupplyAmount: goDotEnvVariable("SUPPLY_AMOUNT"),
		SupplyAt:     goDotEnvVariable("SUPPLY_AT"),

		CycleTimes: goDotEnvVariable("CYCLE_TIMES"),
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

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	getStockHandler, err := app.CreateGetStockQueryHandler()
	if err != nil {
		log.Fatalf("Error building stock query handler: %v", err)
	}
	getPendingOrdersHandler, err := app.CreateGetPendingOrdersQueryHandler()
	if err != nil {
		log.Fatalf("Error building pending orders query handler: %v", err)
	}

	server := httpin.NewServer(
		app.WarehouseID(),
		app.CreateSubmitOrderCommandHandler(),
		app.CreateDeliverSupplyCommandHandler(),
		getStockHandler,
		getPendingOrdersHandler,
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
