package catalog

import (
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/links"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// family is the shared CRUD for plan-like rows that carry a feature set.
type family[T any, PT interface {
	*T
	links.Holder
}, L any] struct {
	db       *gorm.DB
	parent   string
	table    links.Table
	link     func(parentID, featureID uint) L
	order    string
	query    func(*gorm.DB) *gorm.DB
	notFound string
}

func (f *family[T, PT, L]) base() *gorm.DB {
	q := f.db.Model(new(T))
	if f.query != nil {
		q = f.query(q)
	}
	return q
}

func (f *family[T, PT, L]) List(scopes ...func(*gorm.DB) *gorm.DB) ([]T, error) {
	rows := []T{}
	if err := f.base().Scopes(scopes...).Order(f.order).Find(&rows).Error; err != nil {
		return nil, err
	}
	if err := links.Attach[T, PT](f.db, f.table, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (f *family[T, PT, L]) Get(id uint) (*T, error) {
	rows := []T{}
	if err := f.base().Where(f.parent+".id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperr.NotFound(f.notFound)
	}
	if err := links.Attach[T, PT](f.db, f.table, rows); err != nil {
		return nil, err
	}
	return &rows[0], nil
}

// Create inserts row and its links in one transaction.
func (f *family[T, PT, L]) Create(row *T, featureIDs []uint) (uint, error) {
	err := f.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(row).Error; err != nil {
			return err
		}
		return links.Insert(tx, PT(row).LinkID(), featureIDs, f.link)
	})
	if err != nil {
		return 0, err
	}
	return PT(row).LinkID(), nil
}

// Update writes values and fully replaces the feature set.
func (f *family[T, PT, L]) Update(id uint, values map[string]interface{}, featureIDs []uint) error {
	return f.db.Transaction(func(tx *gorm.DB) error {
		if err := exists(tx, new(T), id, f.notFound); err != nil {
			return err
		}
		if err := tx.Model(new(T)).Where("id = ?", id).Updates(values).Error; err != nil {
			return err
		}
		return links.Replace(tx, f.table, id, featureIDs, f.link)
	})
}

// ReplaceFeatures swaps the feature set without touching the parent row.
func (f *family[T, PT, L]) ReplaceFeatures(id uint, featureIDs []uint) error {
	return f.db.Transaction(func(tx *gorm.DB) error {
		if err := exists(tx, new(T), id, f.notFound); err != nil {
			return err
		}
		return links.Replace(tx, f.table, id, featureIDs, f.link)
	})
}

// Delete removes the links and then the parent.
func (f *family[T, PT, L]) Delete(id uint) error {
	return f.db.Transaction(func(tx *gorm.DB) error {
		if err := links.DeleteAll[L](tx, f.table, id); err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(new(T))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperr.NotFound(f.notFound)
		}
		return nil
	})
}

func exists(tx *gorm.DB, model interface{}, id uint, notFound string) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return apperr.NotFound(notFound)
	}
	return nil
}
