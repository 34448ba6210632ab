// Package database manages the sqlite database lifecycle: opening,
// idempotent schema migration and the reserved admin bootstrap.
package database

import (
	"io/fs"
	"log"
	"os"
	"path"

	"github.com/nurcom/crm/config"
	"github.com/nurcom/crm/database/model"
	"github.com/nurcom/crm/util/crypto"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

func initModels() error {
	models := []any{
		&model.Account{},
		&model.ServiceRequest{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			log.Printf("Error auto migrating model: %v", err)
			return err
		}
	}
	return nil
}

// initAdmin creates the reserved admin account if it does not exist yet.
// Safe to run on every start.
func initAdmin() error {
	adminEmail := config.GetAdminEmail()

	var count int64
	err := db.Model(model.Account{}).
		Where("email = ?", adminEmail).
		Count(&count).
		Error
	if err != nil {
		log.Printf("Error checking for admin account: %v", err)
		return err
	}
	if count > 0 {
		return nil
	}

	hashedPassword, err := crypto.HashPasswordAsBcrypt(config.GetAdminBootstrapPassword())
	if err != nil {
		return err
	}
	admin := &model.Account{
		Email:    adminEmail,
		Password: hashedPassword,
		Role:     model.RoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}
	log.Printf("admin account %s created", adminEmail)
	return nil
}

func InitDB(dbPath string) error {
	dir := path.Dir(dbPath)
	err := os.MkdirAll(dir, fs.ModePerm)
	if err != nil {
		return err
	}

	var gormLogger logger.Interface

	if config.IsDebug() {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}

	dsn := dbPath + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
	db, err = gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	_, err = sqlDB.Exec("PRAGMA cache_size = -64000;")
	if err != nil {
		return err
	}
	_, err = sqlDB.Exec("PRAGMA temp_store = MEMORY;")
	if err != nil {
		return err
	}
	_, err = sqlDB.Exec("PRAGMA foreign_keys = ON;")
	if err != nil {
		return err
	}

	if err := initModels(); err != nil {
		return err
	}
	if err := initAdmin(); err != nil {
		return err
	}

	return nil
}

func CloseDB() error {
	if db != nil {
		if err := Checkpoint(); err != nil {
			log.Printf("error executing checkpoint: %v", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

func GetDB() *gorm.DB {
	return db
}

func IsNotFound(err error) bool {
	return err == gorm.ErrRecordNotFound
}

func Checkpoint() error {
	// Flush the WAL into the main database file
	return db.Exec("PRAGMA wal_checkpoint;").Error
}
