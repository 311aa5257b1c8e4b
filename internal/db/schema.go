package db

import "gorm.io/gorm"

// EnsureSchema creates the named postgres schema if it does not exist yet.
// All votify tables live under one schema so a shared database stays tidy.
func EnsureSchema(d *gorm.DB, schema string) error {
	return d.Exec(`CREATE SCHEMA IF NOT EXISTS "` + schema + `"`).Error
}
