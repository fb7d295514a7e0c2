package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/pablopalop/SyEI/internal/config"
	"github.com/pablopalop/SyEI/internal/database"
	"github.com/pablopalop/SyEI/internal/seed"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "syei",
	Short: "Manage the SyEI medical center database schema",
	Long: `syei materializes, migrates, drops and seeds the SyEI medical center
database schema. The target database is selected through DB_* environment
variables (optionally loaded from a .env file).`,
	SilenceUsage: true,
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create all tables (fails if any table already exists)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *gorm.DB) error {
			if err := database.CreateTables(db); err != nil {
				return err
			}
			log.Println("Schema created")
			return nil
		})
	},
}

var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Drop all tables (no-op for tables that do not exist)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *gorm.DB) error {
			if err := database.DropTables(db); err != nil {
				return err
			}
			log.Println("Schema dropped")
			return nil
		})
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Auto-migrate the schema, creating or altering tables in place",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *gorm.DB) error {
			if err := database.AutoMigrate(db); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			log.Println("Schema migrated")
			return nil
		})
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the development sample data",
	Long: `Insert the development sample users and sub-profiles. Seeding a
database that already holds the sample accounts fails on the unique email
constraint; that failure is the expected signal, not a bug.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(seed.CreateSampleData)
	},
}

// withDB loads configuration, opens the connection, runs fn and always
// returns the connection to the pool.
func withDB(fn func(*gorm.DB) error) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("failed to load environment file %s: %w", envFile, err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	return fn(db)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&envFile, "env-file", "f", "", "path to a .env file with DB_* variables")
	rootCmd.AddCommand(createCmd, dropCmd, migrateCmd, seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
