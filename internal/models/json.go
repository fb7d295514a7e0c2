package models

import (
	"database/sql/driver"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// JSON is a wrapper around gorm.io/datatypes.JSON used for the schema's
// free-form document columns (medical record attachments, audit snapshots).
// No sub-schema is enforced on the stored value.
type JSON struct {
	datatypes.JSON
}

// Value promotes the embedded JSON's Value method
func (j JSON) Value() (driver.Value, error) {
	return j.JSON.Value()
}

// Scan promotes the embedded JSON's Scan method
func (j *JSON) Scan(value interface{}) error {
	return j.JSON.Scan(value)
}

// GormDBDataType picks the column type per database driver. Postgres gets
// JSONB, MSSQL has no json type and falls back to NVARCHAR(MAX).
func (JSON) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql":
		return "JSON"
	case "postgres":
		return "JSONB"
	case "sqlserver", "mssql":
		return "NVARCHAR(MAX)"
	case "sqlite":
		return "JSON"
	}
	return "TEXT"
}
