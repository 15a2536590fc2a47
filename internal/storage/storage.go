package storage

import (
	"sync"

	"taskhive/internal/config"
	"taskhive/internal/util/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

var (
	once sync.Once
	db   *gorm.DB
)

func GetDb() *gorm.DB {
	once.Do(func() {
		connection, err := Open(config.GetEnv().DatabaseDsn)
		if err != nil {
			logger.GetLogger().Error("Failed to connect to database", "error", err)
			panic(err)
		}

		db = connection
	})

	return db
}

// Open dials a separate connection outside the process-wide handle.
// Repositories receive their *gorm.DB at construction, so tests can
// swap in an isolated connection.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gorm_logger.Silent),
	})
}
