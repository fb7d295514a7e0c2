// Integration test against a real MariaDB server in a container.
// Requires a local Docker daemon; skipped in -short mode.

package database_test

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/pablopalop/SyEI/data"
	"github.com/pablopalop/SyEI/internal/config"
	"github.com/pablopalop/SyEI/internal/database"
	"github.com/pablopalop/SyEI/internal/models"
	"github.com/pablopalop/SyEI/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	mariadbImage    = "mariadb:11"
	mariadbPort     = "3306/tcp"
	appUser         = "syei_app"
	appPassword     = "syei_app_password"
	appDatabase     = "syei"
	startupDeadline = 2 * time.Minute
)

func startMariaDB(t *testing.T) (host string, port string) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        mariadbImage,
		ExposedPorts: []string{mariadbPort},
		Env: map[string]string{
			"MARIADB_ROOT_PASSWORD": "root",
		},
		Files: []testcontainers.ContainerFile{
			{
				Reader:            strings.NewReader(data.InitdbMariaDBBootstrap),
				ContainerFilePath: "/docker-entrypoint-initdb.d/001-create-database.sql",
				FileMode:          0o644,
			},
		},
		// The image restarts once while applying initdb scripts.
		WaitingFor: wait.ForLog("ready for connections").
			WithOccurrence(2).
			WithStartupTimeout(startupDeadline),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start MariaDB container")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Failed to terminate MariaDB: %v", err)
		}
	})

	host, err = container.Host(ctx)
	require.NoError(t, err)
	mapped, err := container.MappedPort(ctx, nat.Port(mariadbPort))
	require.NoError(t, err)

	return host, mapped.Port()
}

// waitForPing confirms the app user can reach the bootstrapped database
// through the raw driver before GORM takes over.
func waitForPing(t *testing.T, host, port string) {
	t.Helper()

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", appUser, appPassword, host, port, appDatabase)
	sqlDB, err := sql.Open("mysql", dsn)
	require.NoError(t, err)
	defer sqlDB.Close()

	deadline := time.Now().Add(startupDeadline)
	for {
		if err = sqlDB.Ping(); err == nil {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("MariaDB never became reachable: %v", err)
		}
		time.Sleep(time.Second)
	}
}

func TestMariaDBLifecycleAndSeed(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed integration test in short mode")
	}

	host, port := startMariaDB(t)
	waitForPing(t, host, port)

	cfg := &config.Config{
		DBType:            "mariadb",
		DBHost:            host,
		DBPort:            port,
		DBDatabase:        appDatabase,
		DBUser:            appUser,
		DBPassword:        appPassword,
		DBConnectionLimit: 5,
	}

	db, err := database.Connect(cfg)
	require.NoError(t, err)
	defer database.Close(db)

	require.NoError(t, database.CreateTables(db))
	assert.Error(t, database.CreateTables(db), "second create must fail on existing tables")

	require.NoError(t, seed.CreateSampleData(db))
	assert.Error(t, seed.CreateSampleData(db), "reseeding must hit the unique email constraint")

	// Constraints hold on a real backend, not just sqlite.
	bad := models.User{
		FirstName:    "Bad",
		LastName:     "Role",
		Email:        "bad.role@medicalcenter.com",
		PasswordHash: "x",
		Role:         "Doctor",
	}
	assert.Error(t, db.Create(&bad).Error)

	var patient models.Patient
	require.NoError(t, db.First(&patient).Error)
	require.NoError(t, db.Delete(&models.User{}, "id = ?", patient.UserID).Error)
	var count int64
	require.NoError(t, db.Model(&models.Patient{}).Count(&count).Error)
	assert.Zero(t, count, "user delete cascades to the patient profile")

	require.NoError(t, database.DropTables(db))
	require.NoError(t, database.DropTables(db), "dropping an absent schema is a no-op")
}
