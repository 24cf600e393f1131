package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

// GormCollection stores documents of type T in the table named by T's
// TableName. Document keys are translated to column names through the
// model's json tags.
type GormCollection[T any] struct {
	db      *gorm.DB
	name    string
	columns map[string]string
}

// NewGormCollection parses the schema of T and returns a collection bound to
// its table.
func NewGormCollection[T any](db *gorm.DB) (*GormCollection[T], error) {
	var model T
	s, err := schema.Parse(&model, &sync.Map{}, db.NamingStrategy)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema for %T: %w", model, err)
	}

	columns := make(map[string]string, len(s.Fields))
	for _, f := range s.Fields {
		if f.DBName == "" {
			continue
		}
		key, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if key == "" || key == "-" {
			key = f.DBName
		}
		columns[key] = f.DBName
	}

	return &GormCollection[T]{db: db, name: s.Table, columns: columns}, nil
}

func (c *GormCollection[T]) Name() string {
	return c.name
}

func (c *GormCollection[T]) column(key string) (string, error) {
	col, ok := c.columns[key]
	if !ok {
		return "", fmt.Errorf("unknown field %q in collection %s", key, c.name)
	}
	return col, nil
}

func (c *GormCollection[T]) table(ctx context.Context) *gorm.DB {
	return c.db.WithContext(ctx).Table(c.name)
}

func (c *GormCollection[T]) where(tx *gorm.DB, filter Fields) (*gorm.DB, error) {
	if len(filter) == 0 {
		return tx, nil
	}
	exprs := make([]clause.Expression, 0, len(filter))
	for key, value := range filter {
		col, err := c.column(key)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, clause.Eq{Column: clause.Column{Name: col}, Value: value})
	}
	return tx.Clauses(clause.Where{Exprs: exprs}), nil
}

func (c *GormCollection[T]) Insert(ctx context.Context, doc *T) error {
	if err := c.table(ctx).Create(doc).Error; err != nil {
		return fmt.Errorf("failed to insert into %s: %w", c.name, err)
	}
	return nil
}

func (c *GormCollection[T]) FindOne(ctx context.Context, filter Fields) (*T, error) {
	tx, err := c.where(c.table(ctx), filter)
	if err != nil {
		return nil, err
	}

	var docs []T
	if err := tx.Limit(1).Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", c.name, err)
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	return &docs[0], nil
}

func (c *GormCollection[T]) Find(ctx context.Context, q Query) ([]T, error) {
	tx, err := c.where(c.table(ctx), q.Filter)
	if err != nil {
		return nil, err
	}

	for _, s := range q.Sort {
		col, err := c.column(s.Key)
		if err != nil {
			return nil, err
		}
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: s.Descending})
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	docs := []T{}
	if err := tx.Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", c.name, err)
	}
	return docs, nil
}

func (c *GormCollection[T]) UpdateByID(ctx context.Context, id string, set Fields) error {
	values := make(map[string]interface{}, len(set))
	for key, value := range set {
		col, err := c.column(key)
		if err != nil {
			return err
		}
		values[col] = value
	}
	if len(values) == 0 {
		return nil
	}

	result := c.table(ctx).Where(clause.Eq{Column: clause.Column{Name: c.columns["id"]}, Value: id}).Updates(values)
	if result.Error != nil {
		return fmt.Errorf("failed to update %s: %w", c.name, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *GormCollection[T]) DeleteByID(ctx context.Context, id string) error {
	var model T
	result := c.table(ctx).Where(clause.Eq{Column: clause.Column{Name: c.columns["id"]}, Value: id}).Delete(&model)
	if result.Error != nil {
		return fmt.Errorf("failed to delete from %s: %w", c.name, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
