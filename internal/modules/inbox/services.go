package inbox

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/identity"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrMessageNotFound  = apperr.NotFound("Message not found")
	ErrReceiverNotFound = apperr.NotFound("Receiver not found")
)

// Message is an inbox row with the sender's first name.
type Message struct {
	models.InboxMessage
	SenderName *string `json:"sender_name"`
}

type SendRequest struct {
	ReceiverID uint   `json:"receiver_id"`
	Subject    string `json:"subject"`
	Message    string `json:"message"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns every message for admins and the caller's received messages
// for everyone else, newest first.
func (s *Service) List(ident identity.Identity) ([]Message, error) {
	var rows []Message
	err := s.db.Table("inbox").
		Select("inbox.*, sender.first_name AS sender_name").
		Joins("LEFT JOIN users AS sender ON sender.id = inbox.sender_id").
		Scopes(identity.VisibleTo(ident, "inbox.receiver_id")).
		Order("inbox.created_at DESC").
		Order("inbox.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []Message{}
	}
	return rows, nil
}

func (s *Service) Send(senderID uint, req SendRequest) (*models.InboxMessage, error) {
	var missing []string
	if req.ReceiverID == 0 {
		missing = append(missing, "receiver_id")
	}
	if req.Message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return nil, apperr.MissingFields(missing...)
	}

	var receiver models.User
	if err := s.db.Select("id").First(&receiver, req.ReceiverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReceiverNotFound
		}
		return nil, err
	}

	msg := models.InboxMessage{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Subject:    req.Subject,
		Message:    req.Message,
	}
	if err := s.db.Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// MarkRead flags one of the caller's received messages as read.
func (s *Service) MarkRead(ident identity.Identity, id uint) error {
	var msg models.InboxMessage
	if err := s.db.Scopes(identity.OwnedBy(ident, "receiver_id")).First(&msg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMessageNotFound
		}
		return err
	}
	return s.db.Model(&msg).Update("is_read", true).Error
}

// Delete removes one of the caller's received messages.
func (s *Service) Delete(ident identity.Identity, id uint) error {
	res := s.db.Scopes(identity.OwnedBy(ident, "receiver_id")).Delete(&models.InboxMessage{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}
