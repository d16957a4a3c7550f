package config

import (
	"log"
	"time"

	"authorshaven/global"
	"authorshaven/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func initDB() {
	// TranslateError turns driver duplicate-key errors into
	// gorm.ErrDuplicatedKey, which services map to a Conflict.
	db, err := gorm.Open(mysql.Open(AppConfig.Database.Dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to configure database: %v", err)
	}
	sqlDB.SetMaxIdleConns(AppConfig.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(AppConfig.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Article{},
		&models.Rating{},
		&models.Like{},
		&models.Comment{},
		&models.FavoriteArticle{},
		&models.Bookmark{},
		&models.ReportedArticle{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	global.Db = db
}
