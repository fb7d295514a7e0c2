package main

import (
	"fmt"
	"log"

	"github.com/glebarez/sqlite"
	"github.com/pablopalop/SyEI/internal/database"
	"gorm.io/gorm"
)

func main() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		log.Fatal(err)
	}

	// Materialize the schema to see what GORM creates
	if err := database.CreateTables(db); err != nil {
		log.Fatal(err)
	}

	// Get the schema
	var tables []string
	db.Raw("SELECT name FROM sqlite_master WHERE type='table'").Scan(&tables)

	for _, table := range tables {
		fmt.Printf("\n=== Table: %s ===\n", table)
		var schema string
		db.Raw(fmt.Sprintf("SELECT sql FROM sqlite_master WHERE name='%s'", table)).Scan(&schema)
		fmt.Println(schema)
	}
}
