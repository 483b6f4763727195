package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nikhildhanda04/vmatch/db/model"
)

// Open connects to Postgres and migrates the schema. The returned handle
// wraps a single connection pool shared by every component; main owns its
// lifecycle and must Close it on shutdown.
func Open(conn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(conn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := gdb.AutoMigrate(
		&model.User{},
		&model.Like{},
		&model.Match{},
		&model.Message{},
	); err != nil {
		return nil, err
	}
	return gdb, nil
}

func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
