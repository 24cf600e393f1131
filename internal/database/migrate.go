package database

import (
	"context"
	"fmt"

	"github.com/pageza/portfolio/backend/internal/models"
	"github.com/pageza/portfolio/backend/internal/store"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// naturalSortKeys is the key each collection is listed by.
var naturalSortKeys = map[string]string{
	models.CollectionProfiles: "createdAt",
	models.CollectionProjects: "order",
	models.CollectionSkills:   "order",
	models.CollectionAbout:    "createdAt",
	models.CollectionContacts: "createdAt",
	models.CollectionSettings: "createdAt",
}

// Migrate prepares the schema. Gorm backends get their tables auto-migrated;
// mongo collections get an id index and an index on their sort key.
func Migrate(ctx context.Context, b *store.Backend) error {
	if b.Mongo != nil {
		return migrateMongo(ctx, b.Mongo)
	}

	logrus.WithField("driver", b.Driver).Info("Running GORM auto-migration")
	return b.DB.WithContext(ctx).AutoMigrate(
		&models.Profile{},
		&models.Project{},
		&models.Skill{},
		&models.About{},
		&models.Contact{},
		&models.Settings{},
	)
}

func migrateMongo(ctx context.Context, db *mongo.Database) error {
	for name, sortKey := range naturalSortKeys {
		indexes := []mongo.IndexModel{
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: sortKey, Value: 1}}},
		}
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", name, err)
		}
	}
	logrus.Info("Ensured mongo indexes")
	return nil
}
