package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"beamtime-api/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

var DB *gorm.DB

// InitDB opens the database selected by DB_DRIVER and stores it in DB.
func InitDB() {
	driver := strings.ToLower(Getenv("DB_DRIVER", "sqlite"))

	dialector, err := dialectorFor(driver)
	if err != nil {
		Log.WithError(err).Fatal("Invalid database configuration")
	}

	DB, err = gorm.Open(dialector, GormConfig())
	if err != nil {
		Log.WithError(err).Fatal("Failed to connect to database")
	}

	if autoMigrateEnabled(driver) {
		if err := Migrate(DB); err != nil {
			Log.WithError(err).Fatal("Failed to migrate database schema")
		}
	}

	Log.WithField("driver", driver).Info("Database connected successfully")
}

func dialectorFor(driver string) (gorm.Dialector, error) {
	switch driver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			os.Getenv("DB_USERNAME"),
			os.Getenv("DB_PASSWORD"),
			Getenv("DB_HOST", "127.0.0.1"),
			Getenv("DB_PORT", "3306"),
			os.Getenv("DB_DATABASE"),
		)
		return mysql.Open(dsn), nil
	case "sqlite":
		return SQLiteDialector(Getenv("SQLITE_PATH", "beamtime.db")), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want mysql or sqlite)", driver)
	}
}

// SQLiteDialector opens path with the pure Go sqlite driver and foreign keys on.
func SQLiteDialector(path string) gorm.Dialector {
	return sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite",
	}
}

// GormConfig returns the shared gorm settings. Timestamps are always UTC and
// driver errors are translated so constraint violations can be detected.
func GormConfig() *gorm.Config {
	environment := strings.ToLower(os.Getenv("ENVIRONMENT"))
	debugSQL := strings.ToLower(os.Getenv("DEBUG_SQL"))

	// In production, suppress SQL logs unless explicitly re-enabled via DEBUG_SQL=true.
	logLevel := logger.Info
	if environment == "production" && debugSQL != "true" {
		logLevel = logger.Warn
	}

	return &gorm.Config{
		Logger: logger.New(
			log.New(LogWriter, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  logLevel,
				IgnoreRecordNotFoundError: true,
			},
		),
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	}
}

// Migrate creates or updates the five beamtime tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.ResearchProject{},
		&models.BeamtimeRequest{},
		&models.Allocation{},
		&models.Approval{},
	)
}

func autoMigrateEnabled(driver string) bool {
	switch strings.ToLower(os.Getenv("DB_AUTO_MIGRATE")) {
	case "true", "1":
		return true
	case "false", "0":
		return false
	}
	return driver == "sqlite"
}

// Getenv returns the environment value for key or def when unset.
func Getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
