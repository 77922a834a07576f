package postgres

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/andrewshostak/esports-notifier/config"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func DSN(cfg config.PG) string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s port=%s database=%s sslmode=disable",
		cfg.Host,
		cfg.User,
		cfg.Password,
		cfg.Port,
		cfg.Database,
	)
}

// EstablishDatabaseConnection opens a gorm connection. Slow queries and errors are written to out.
func EstablishDatabaseConnection(cfg config.PG, out io.Writer) (*gorm.DB, error) {
	customLogger := logger.New(
		log.New(out, "", 0),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
		},
	)

	db, err := gorm.Open(postgres.Open(DSN(cfg)), &gorm.Config{
		Logger: customLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	return db, nil
}
