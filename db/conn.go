// Package db handles the database connection and schema migrations
package db

import (
	"bitwise74/linkboard-api/internal/model"
	"fmt"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func New() (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch viper.GetString("storage.type") {
	case "postgres":
		dialector = postgres.Open(viper.GetString("storage.dsn"))
	default:
		dialector = sqlite.Open(viper.GetString("storage.path"))
	}

	db, err := gorm.Open(dialector)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	err = db.AutoMigrate(model.User{}, model.Link{})
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return db, nil
}
