// connection.go
//
// Database connection and table lifecycle management for the SyEI medical
// center persistence layer.

package database

import (
	"fmt"
	"log"

	"github.com/pablopalop/SyEI/internal/config"
	"github.com/pablopalop/SyEI/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// allModels lists every model in foreign-key dependency order: parents
// before children, so CreateTables can declare constraints as it goes.
func allModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Specialist{},
		&models.Patient{},
		&models.FamilyMember{},
		&models.Appointment{},
		&models.AvailabilityBlock{},
		&models.MedicalRecord{},
		&models.Template{},
		&models.EducationalMaterial{},
		&models.PatientMaterialAssignment{},
		&models.Notification{},
		&models.AuditLog{},
	}
}

// Connect establishes a database connection based on the configured DB_TYPE
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DBType {
	case "mysql", "mariadb":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBDatabase,
		)
		dialector = mysql.Open(dsn)

	case "postgres", "postgresql":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.DBHost,
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBDatabase,
			cfg.DBPort,
		)
		dialector = postgres.Open(dsn)

	case "sqlite":
		// For SQLite, DBDatabase is the file path
		dialector = sqlite.Open(cfg.DBDatabase)

	case "sqlserver", "mssql":
		dsn := fmt.Sprintf("sqlserver://%s:%s@%s:%s?database=%s",
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBDatabase,
		)
		dialector = sqlserver.Open(dsn)

	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.DBType)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB for connection pool configuration
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxOpenConns(cfg.DBConnectionLimit)
	sqlDB.SetMaxIdleConns(cfg.DBConnectionLimit / 2)

	log.Printf("Connected to %s database: %s", cfg.DBType, cfg.DBDatabase)

	return db, nil
}

// CreateTables materializes the full schema. It fails if any table already
// exists; a populated database is never silently altered.
func CreateTables(db *gorm.DB) error {
	if err := db.Migrator().CreateTable(allModels()...); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

// DropTables removes the full schema. Tables that are already absent are
// skipped (DROP TABLE IF EXISTS). The migrator walks the list back to
// front, so children go before the tables they reference.
func DropTables(db *gorm.DB) error {
	if err := db.Migrator().DropTable(allModels()...); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	return nil
}

// AutoMigrate runs automatic migrations for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(allModels()...)
}

// Close closes the database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
