package links

import (
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/models"
	"gorm.io/gorm"
)

// Holder is a row that can receive its linked features.
type Holder interface {
	LinkID() uint
	SetFeatures([]models.Feature)
}

type linkedFeature struct {
	ParentID uint
	ID       uint
	Name     string
}

// Load fetches the features of every parent in one query, grouped by parent.
func Load(db *gorm.DB, t Table, parentIDs []uint) (map[uint][]models.Feature, error) {
	grouped := make(map[uint][]models.Feature, len(parentIDs))
	if len(parentIDs) == 0 {
		return grouped, nil
	}

	var rows []linkedFeature
	err := db.Table(t.Name+" AS l").
		Select("l."+t.ParentColumn+" AS parent_id, f.id AS id, f.name AS name").
		Joins("JOIN "+t.FeatureTable+" f ON f.id = l."+t.FeatureColumn).
		Where("l."+t.ParentColumn+" IN ?", parentIDs).
		Order("f.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		grouped[r.ParentID] = append(grouped[r.ParentID], models.Feature{ID: r.ID, Name: r.Name})
	}
	return grouped, nil
}

// Names is Load flattened to feature names.
func Names(db *gorm.DB, t Table, parentIDs []uint) (map[uint][]string, error) {
	grouped, err := Load(db, t, parentIDs)
	if err != nil {
		return nil, err
	}
	names := make(map[uint][]string, len(grouped))
	for id, fs := range grouped {
		for _, f := range fs {
			names[id] = append(names[id], f.Name)
		}
	}
	return names, nil
}

// Attach loads and sets features on every row with one batched query.
// Rows without links get an empty, non-nil slice.
func Attach[T any, PT interface {
	*T
	Holder
}](db *gorm.DB, t Table, rows []T) error {
	ids := make([]uint, 0, len(rows))
	for i := range rows {
		ids = append(ids, PT(&rows[i]).LinkID())
	}

	grouped, err := Load(db, t, ids)
	if err != nil {
		return err
	}

	for i := range rows {
		row := PT(&rows[i])
		fs := grouped[row.LinkID()]
		if fs == nil {
			fs = []models.Feature{}
		}
		row.SetFeatures(fs)
	}
	return nil
}
