package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Criteria is a column -> value filter. Keys are database column names.
type Criteria map[string]any

// Query bundles the options accepted by FindAndCountAll.
type Query struct {
	Criteria Criteria
	Limit    int
	Offset   int
	// Fields optionally projects the selected columns; empty selects all.
	Fields []string
}

// Repository exposes the small CRUD vocabulary every domain operation is
// built from, bound to one record kind at compile time. It performs no
// retries, no error translation and no field validation; persistence errors
// surface unchanged.
type Repository[M any] struct {
	db *gorm.DB
}

// New binds a repository to a record kind.
func New[M any](db *gorm.DB) *Repository[M] {
	return &Repository[M]{db: db}
}

// FindOneByField returns the first record matching criteria, or nil when
// there is none.
func (r *Repository[M]) FindOneByField(ctx context.Context, criteria Criteria) (*M, error) {
	var record M
	err := r.db.WithContext(ctx).Where(map[string]any(criteria)).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// FindAll returns every record matching criteria, empty slice included.
func (r *Repository[M]) FindAll(ctx context.Context, criteria Criteria) ([]M, error) {
	var records []M
	err := r.db.WithContext(ctx).Where(map[string]any(criteria)).Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// FindAndCountAll returns the total count matching the criteria together
// with the limited/offset slice of rows. The count ignores limit and offset,
// it feeds pagination metadata.
func (r *Repository[M]) FindAndCountAll(ctx context.Context, q Query) (int64, []M, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(new(M)).Where(map[string]any(q.Criteria))
	if err := tx.Count(&count).Error; err != nil {
		return 0, nil, err
	}

	rows := r.db.WithContext(ctx).Where(map[string]any(q.Criteria))
	if len(q.Fields) > 0 {
		rows = rows.Select(q.Fields)
	}
	var records []M
	if err := rows.Limit(q.Limit).Offset(q.Offset).Find(&records).Error; err != nil {
		return 0, nil, err
	}
	return count, records, nil
}

// FindAndInclude returns records matching criteria with the named
// association populated. relatedCriteria, when non-nil, additionally filters
// the joined records.
func (r *Repository[M]) FindAndInclude(ctx context.Context, criteria Criteria, alias string, relatedCriteria Criteria) ([]M, error) {
	tx := r.db.WithContext(ctx).Where(map[string]any(criteria))
	if len(relatedCriteria) > 0 {
		tx = tx.Preload(alias, func(db *gorm.DB) *gorm.DB {
			return db.Where(map[string]any(relatedCriteria))
		})
	} else {
		tx = tx.Preload(alias)
	}
	var records []M
	if err := tx.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindOrCreate returns the record matching lookup, creating it from defaults
// when absent. The second return reports whether a row was created.
// Uniqueness under concurrent calls is delegated to the unique indexes the
// record kinds declare; the losing insert returns a constraint error.
func (r *Repository[M]) FindOrCreate(ctx context.Context, lookup Criteria, defaults M) (*M, bool, error) {
	var record M
	result := r.db.WithContext(ctx).Where(map[string]any(lookup)).Attrs(defaults).FirstOrCreate(&record)
	if result.Error != nil {
		return nil, false, result.Error
	}
	return &record, result.RowsAffected > 0, nil
}

// Create persists the record and returns it with generated fields filled.
func (r *Repository[M]) Create(ctx context.Context, record *M) (*M, error) {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// Update applies fields to every row matching criteria and returns the
// number of rows affected; 0 signals no matching row.
func (r *Repository[M]) Update(ctx context.Context, fields Criteria, criteria Criteria) (int64, error) {
	result := r.db.WithContext(ctx).Model(new(M)).Where(map[string]any(criteria)).Updates(map[string]any(fields))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Remove deletes every row matching criteria and returns the number removed.
func (r *Repository[M]) Remove(ctx context.Context, criteria Criteria) (int64, error) {
	var record M
	result := r.db.WithContext(ctx).Where(map[string]any(criteria)).Delete(&record)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
