package db

import (
	"fmt"
	"log"

	"github.com/linweiyu/bugtrack-go/internal/config"
	"github.com/linweiyu/bugtrack-go/internal/domain/analysis"
	"github.com/linweiyu/bugtrack-go/internal/domain/bug"
	"github.com/linweiyu/bugtrack-go/internal/domain/history"
	"github.com/linweiyu/bugtrack-go/internal/domain/project"
	"github.com/linweiyu/bugtrack-go/internal/domain/user"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

// Migrate applies the schema. Shared with the test harnesses so every
// database sees the same table shapes.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&user.User{},
		&project.Project{},
		&project.Version{},
		&bug.Bug{},
		&bug.Comment{},
		&bug.Attachment{},
		&history.Entry{},
		&analysis.Request{},
	)
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
