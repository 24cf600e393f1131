package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"gorm.io/gorm"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMongo    = "mongo"
)

// Backend is an open connection to one of the supported stores. Exactly one
// of DB or Mongo is set.
type Backend struct {
	Driver string
	DB     *gorm.DB
	Mongo  *mongo.Database
}

// NewGormBackend wraps an open gorm connection.
func NewGormBackend(driver string, db *gorm.DB) *Backend {
	return &Backend{Driver: driver, DB: db}
}

// NewMongoBackend wraps an open mongo database.
func NewMongoBackend(db *mongo.Database) *Backend {
	return &Backend{Driver: DriverMongo, Mongo: db}
}

// Open returns the collection holding documents of type T.
func Open[T any](b *Backend, name string) (Collection[T], error) {
	if b.Mongo != nil {
		return NewMongoCollection[T](b.Mongo, name), nil
	}
	if b.DB == nil {
		return nil, fmt.Errorf("store backend %q is not connected", b.Driver)
	}
	c, err := NewGormCollection[T](b.DB)
	if err != nil {
		return nil, err
	}
	if c.Name() != name {
		return nil, fmt.Errorf("model table %s does not match collection %s", c.Name(), name)
	}
	return c, nil
}

// Ping checks the store is reachable.
func (b *Backend) Ping(ctx context.Context) error {
	if b.Mongo != nil {
		return b.Mongo.Client().Ping(ctx, readpref.Primary())
	}
	sqlDB, err := b.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection.
func (b *Backend) Close(ctx context.Context) error {
	if b.Mongo != nil {
		return b.Mongo.Client().Disconnect(ctx)
	}
	sqlDB, err := b.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
