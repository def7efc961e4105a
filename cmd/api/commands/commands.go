package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/zarinpos/core/internal/adapters/repository"
	"github.com/zarinpos/core/internal/application/services"
	"github.com/zarinpos/core/internal/domain/entities"
	"github.com/zarinpos/core/internal/infrastructure/cache"
	"github.com/zarinpos/core/internal/infrastructure/config"
	"github.com/zarinpos/core/internal/infrastructure/database"
	"github.com/zarinpos/core/internal/infrastructure/logger"
	"github.com/zarinpos/core/internal/infrastructure/server"
	"github.com/zarinpos/core/internal/ports"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the ZarinPOS Core API server",
		Long:  "Start the ZarinPOS Core API server with all configured routes and middleware",
		Run: func(cmd *cobra.Command, args []string) {
			runServer()
		},
	}
}

// NewMigrateCommand creates the migrate command with subcommands
func NewMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration commands",
		Long:  "Manage database migrations (up, down, version)",
	}

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Run all up migrations",
		Run: func(cmd *cobra.Command, args []string) {
			runMigration("up", 0)
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Run all down migrations",
		Run: func(cmd *cobra.Command, args []string) {
			runMigration("down", 0)
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print current migration version",
		Run: func(cmd *cobra.Command, args []string) {
			showMigrationVersion()
		},
	})

	return migrateCmd
}

// NewTerminalCommand creates the terminal management command
func NewTerminalCommand() *cobra.Command {
	terminalCmd := &cobra.Command{
		Use:   "terminal",
		Short: "Terminal management commands",
		Long:  "Register and manage POS terminals",
	}

	createTerminalCmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new terminal and print its API key",
		Run: func(cmd *cobra.Command, args []string) {
			tenant, _ := cmd.Flags().GetString("tenant")
			name, _ := cmd.Flags().GetString("name")
			role, _ := cmd.Flags().GetString("role")

			if tenant == "" || name == "" {
				log.Fatal("Tenant and name are required")
			}

			createTerminal(tenant, name, role)
		},
	}

	createTerminalCmd.Flags().String("tenant", "", "Tenant ID (required)")
	createTerminalCmd.Flags().String("name", "", "Terminal name (required)")
	createTerminalCmd.Flags().String("role", "terminal", "Terminal role (admin, terminal)")

	terminalCmd.AddCommand(createTerminalCmd)
	return terminalCmd
}

// NewRatesCommand creates the gold rate management command
func NewRatesCommand() *cobra.Command {
	ratesCmd := &cobra.Command{
		Use:   "rates",
		Short: "Gold rate management commands",
		Long:  "Record and inspect daily gold rates",
	}

	setRateCmd := &cobra.Command{
		Use:   "set",
		Short: "Record the per-gram gold price for a day",
		Run: func(cmd *cobra.Command, args []string) {
			price, _ := cmd.Flags().GetInt64("price")
			date, _ := cmd.Flags().GetString("date")
			source, _ := cmd.Flags().GetString("source")

			if price <= 0 {
				log.Fatal("Price must be a positive toman amount")
			}

			setRate(price, date, source)
		},
	}

	setRateCmd.Flags().Int64("price", 0, "Price per gram in toman (required)")
	setRateCmd.Flags().String("date", "", "Jalali date, defaults to today")
	setRateCmd.Flags().String("source", "manual", "Rate source")

	ratesCmd.AddCommand(setRateCmd)
	return ratesCmd
}

// NewHolidaysCommand creates the holiday calendar command
func NewHolidaysCommand() *cobra.Command {
	holidaysCmd := &cobra.Command{
		Use:   "holidays",
		Short: "Holiday calendar commands",
		Long:  "Import and manage the shared holiday calendar",
	}

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import holidays from a JSON file",
		Run: func(cmd *cobra.Command, args []string) {
			file, _ := cmd.Flags().GetString("file")
			if file == "" {
				log.Fatal("File is required")
			}

			importHolidays(file)
		},
	}

	importCmd.Flags().String("file", "", "Path to a JSON file of holidays (required)")

	holidaysCmd.AddCommand(importCmd)
	return holidaysCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print ZarinPOS Core version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("ZarinPOS Core v1.0.0")
			fmt.Println("Build Date: 2024-01-01")
			fmt.Println("Git Commit: development")
		},
	}
}

func runServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	db, err := database.New(cfg.Database)
	if err != nil {
		appLogger.Fatalw("Failed to connect to database", "error", err)
	}
	defer db.Close()

	cacheClient, err := cache.New(cfg.Redis, appLogger)
	if err != nil {
		appLogger.Fatalw("Failed to connect to Redis", "error", err)
	}
	if cacheClient != nil {
		defer cacheClient.Close()
	}

	srv, err := server.New(cfg, db, cacheClient, appLogger)
	if err != nil {
		appLogger.Fatalw("Failed to initialize server", "error", err)
	}

	// Start server in a goroutine so shutdown signals can be handled
	go func() {
		appLogger.Infow("Starting ZarinPOS Core API server",
			"port", cfg.Server.Port,
			"environment", cfg.App.Environment,
		)

		if err := srv.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalw("Server failed to start", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Infow("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatalw("Server forced to shutdown", "error", err)
	}

	appLogger.Infow("Server exited gracefully")
}

func runMigration(direction string, steps int) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db.DB.DB, &postgres.Config{})
	if err != nil {
		log.Fatalf("Failed to create migration driver: %v", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		log.Fatalf("Failed to create migration instance: %v", err)
	}

	switch direction {
	case "up":
		if steps > 0 {
			err = m.Steps(steps)
		} else {
			err = m.Up()
		}
	case "down":
		if steps > 0 {
			err = m.Steps(-steps)
		} else {
			err = m.Down()
		}
	}

	if err != nil && err != migrate.ErrNoChange {
		log.Fatalf("Migration failed: %v", err)
	}

	if err == migrate.ErrNoChange {
		fmt.Println("No migrations to run")
	} else {
		fmt.Printf("Migration %s completed successfully\n", direction)
	}
}

func showMigrationVersion() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db.DB.DB, &postgres.Config{})
	if err != nil {
		log.Fatalf("Failed to create migration driver: %v", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		log.Fatalf("Failed to create migration instance: %v", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		log.Fatalf("Failed to get migration version: %v", err)
	}

	fmt.Printf("Current migration version: %d\n", version)
	fmt.Printf("Dirty: %t\n", dirty)
}

func createTerminal(tenant, name, role string) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	db, err := database.New(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	tenantID, err := uuid.Parse(tenant)
	if err != nil {
		log.Fatalf("Invalid tenant ID: %v", err)
	}

	// Going through the auth service keeps the API key format in one place.
	terminalRepo := repository.NewTerminalRepository(db.DB, nil)
	authService := services.NewAuthService(terminalRepo, cfg.JWT, appLogger, nil)

	credentials, err := authService.CreateTerminal(context.Background(), ports.CreateTerminalRequest{
		TenantID: tenantID,
		Name:     name,
		Role:     entities.TerminalRole(role),
	})
	if err != nil {
		log.Fatalf("Failed to create terminal: %v", err)
	}

	fmt.Printf("Terminal created successfully:\n")
	fmt.Printf("  ID: %s\n", credentials.Terminal.ID)
	fmt.Printf("  Tenant: %s\n", credentials.Terminal.TenantID)
	fmt.Printf("  Name: %s\n", credentials.Terminal.Name)
	fmt.Printf("  Role: %s\n", credentials.Terminal.Role)
	fmt.Printf("  API Key: %s\n", credentials.APIKey)
	fmt.Println("Store the API key now, it is not shown again.")
}

func setRate(price int64, date, source string) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	db, err := database.New(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	rateRepo := repository.NewRateRepository(db.DB, nil)
	clock := services.NewSystemClock(cfg.Calendar, appLogger)
	rateService := services.NewRateService(rateRepo, clock, nil, appLogger, nil)

	response, err := rateService.SetRate(context.Background(), ports.SetRateRequest{
		Date:         date,
		PricePerGram: price,
		Source:       source,
	})
	if err != nil {
		log.Fatalf("Failed to set rate: %v", err)
	}

	fmt.Printf("Rate recorded:\n")
	fmt.Printf("  Date: %s\n", response.DatePersian)
	fmt.Printf("  Price: %s\n", response.Formatted)
	fmt.Printf("  Source: %s\n", response.Source)
}

func importHolidays(file string) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	db, err := database.New(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	data, err := os.ReadFile(file)
	if err != nil {
		log.Fatalf("Failed to read file: %v", err)
	}

	var rows []ports.CreateHolidayRequest
	if err := json.Unmarshal(data, &rows); err != nil {
		log.Fatalf("Failed to parse file: %v", err)
	}

	holidayRepo := repository.NewHolidayRepository(db.DB, nil)
	holidayService := services.NewHolidayService(holidayRepo, nil, appLogger, nil)

	imported, skipped := 0, 0
	for _, row := range rows {
		if _, err := holidayService.AddHoliday(context.Background(), row); err != nil {
			if errors.Is(err, entities.ErrHolidayExists) {
				skipped++
				continue
			}
			log.Fatalf("Failed to import holiday %q on %s: %v", row.Title, row.Date, err)
		}
		imported++
	}

	fmt.Printf("Imported %d holidays, skipped %d duplicates\n", imported, skipped)
}
