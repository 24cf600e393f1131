// Package database opens the configured document store and the optional
// Redis connection.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/pageza/portfolio/backend/config"
	"github.com/pageza/portfolio/backend/internal/store"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const connectTimeout = 10 * time.Second

// Open connects to the store selected by cfg.StoreDriver and verifies it
// responds.
func Open(ctx context.Context, cfg *config.Config) (*store.Backend, error) {
	var (
		backend *store.Backend
		err     error
	)

	switch cfg.StoreDriver {
	case store.DriverPostgres:
		backend, err = openGorm(store.DriverPostgres, postgres.Open(cfg.DatabaseURL))
	case store.DriverSQLite:
		backend, err = openGorm(store.DriverSQLite, sqlite.Open(cfg.SQLitePath))
	case store.DriverMongo:
		backend, err = OpenMongo(cfg.MongoURL, cfg.DBName)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := backend.Ping(pingCtx); err != nil {
		_ = backend.Close(context.Background())
		return nil, fmt.Errorf("error connecting to the %s store: %w", cfg.StoreDriver, err)
	}

	logrus.WithField("driver", cfg.StoreDriver).Info("Successfully connected to store")
	return backend, nil
}

func openGorm(driver string, dialector gorm.Dialector) (*store.Backend, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("error opening %s database: %w", driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting %s connection pool: %w", driver, err)
	}

	// Set connection pool settings
	if driver == store.DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(25)
	}
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return store.NewGormBackend(driver, db), nil
}

// OpenMongo connects to a MongoDB deployment and selects the named database.
func OpenMongo(uri, dbName string) (*store.Backend, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri).SetConnectTimeout(connectTimeout))
	if err != nil {
		return nil, fmt.Errorf("error opening mongo client: %w", err)
	}
	return store.NewMongoBackend(client.Database(dbName)), nil
}
