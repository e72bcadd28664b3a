package notifications

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/identity"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrNotificationNotFound = apperr.NotFound("Notification not found")
	ErrUserNotFound         = apperr.NotFound("User not found")
)

type CreateRequest struct {
	UserID  uint   `json:"user_id"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns all notifications to admins and the caller's own otherwise.
func (s *Service) List(ident identity.Identity) ([]models.Notification, error) {
	rows := []models.Notification{}
	err := s.db.Scopes(identity.VisibleTo(ident, "user_id")).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error
	return rows, err
}

func (s *Service) Create(req CreateRequest) (*models.Notification, error) {
	var missing []string
	if req.UserID == 0 {
		missing = append(missing, "user_id")
	}
	if req.Title == "" {
		missing = append(missing, "title")
	}
	if req.Message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return nil, apperr.MissingFields(missing...)
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("id = ?", req.UserID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrUserNotFound
	}

	n := models.Notification{UserID: req.UserID, Title: req.Title, Message: req.Message}
	if err := s.db.Create(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *Service) MarkRead(ident identity.Identity, id uint) error {
	var n models.Notification
	if err := s.db.Scopes(identity.OwnedBy(ident, "user_id")).First(&n, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}
	return s.db.Model(&n).Update("is_read", true).Error
}

func (s *Service) Delete(ident identity.Identity, id uint) error {
	res := s.db.Scopes(identity.OwnedBy(ident, "user_id")).Delete(&models.Notification{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
