package catalog

import (
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/links"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/models"
	"gorm.io/gorm"
)

// LookupService manages one name-only feature table.
type LookupService struct {
	db    *gorm.DB
	table string
}

func NewLookupService(db *gorm.DB, table string) *LookupService {
	return &LookupService{db: db, table: table}
}

func (s *LookupService) List() ([]models.Feature, error) {
	rows := []models.Feature{}
	err := s.db.Table(s.table).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (s *LookupService) Create(name string) (*models.Feature, error) {
	row := models.Feature{Name: name}
	if err := s.db.Table(s.table).Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *LookupService) Rename(id uint, name string) error {
	result := s.db.Table(s.table).Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("Feature not found")
	}
	return nil
}

// Delete removes the feature and every link that references it.
func (s *LookupService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := links.DetachFeature(tx, s.table, id); err != nil {
			return err
		}
		result := tx.Table(s.table).Where("id = ?", id).Delete(&models.Feature{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperr.NotFound("Feature not found")
		}
		return nil
	})
}

// ForMobileType lists the distinct mobile features linked to plans of one type.
func (s *LookupService) ForMobileType(planType string) ([]models.Feature, error) {
	rows := []models.Feature{}
	err := s.db.Table(models.TableMobileFeatures+" AS mf").
		Distinct("mf.id", "mf.name").
		Joins("JOIN mobile_plan_features mpf ON mf.id = mpf.feature_id").
		Joins("JOIN mobile_plans mp ON mp.id = mpf.mobile_plan_id").
		Where("mp.type = ?", planType).
		Order("mf.id ASC").
		Scan(&rows).Error
	return rows, err
}
