package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/zarinpos/core/cmd/api/commands"
)

// @title ZarinPOS Core API
// @version 1.0
// @description Multi-tenant point of sale core for Iranian jewellery shops

// @contact.name ZarinPOS Support
// @contact.url https://github.com/zarinpos/core
// @contact.email support@zarinpos.ir

// @license.name MIT
// @license.url https://github.com/zarinpos/core/blob/main/LICENSE

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	rootCmd := &cobra.Command{
		Use:   "zarinpos",
		Short: "ZarinPOS Core API Server",
		Long:  `ZarinPOS Core is the shared backend of the ZarinPOS point of sale, serving Jalali calendar operations, daily gold rates and sale price quotes to shop terminals.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewTerminalCommand())
	rootCmd.AddCommand(commands.NewRatesCommand())
	rootCmd.AddCommand(commands.NewHolidaysCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
