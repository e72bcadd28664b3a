package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/identity"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 10

var (
	ErrEmailTaken         = apperr.Conflict("البريد مستخدم مسبقًا")
	ErrUserExists         = apperr.Conflict("User already exists")
	ErrUnknownEmail       = apperr.Unauthorized("البريد غير موجود")
	ErrInvalidCredentials = apperr.Unauthorized("كلمة المرور غير صحيحة")
	ErrUserNotFound       = apperr.NotFound("المستخدم غير موجود")
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
	now func() time.Time
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg, now: time.Now}
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownEmail
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.IssueToken(&user)
	if err != nil {
		return nil, err
	}
	s.touch(user.ID)

	return &dto.LoginResponse{
		Message: "تم تسجيل الدخول بنجاح!",
		User: dto.LoginUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
		Token: token,
	}, nil
}

// Register creates a regular account. A taken email fails before any insert.
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	name := req.Name
	if name == "" {
		name = strings.TrimSpace(req.FirstName + " " + req.LastName)
	}
	if name == "" || req.Email == "" || req.Phone == "" || req.Password == "" {
		return nil, apperr.Validation("جميع الحقول مطلوبة.")
	}

	taken, err := s.emailTaken(req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	user := models.User{
		Name:       name,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		FullName:   name,
		Email:      req.Email,
		Phone:      req.Phone,
		Password:   hash,
		Role:       models.RoleUser,
		Avatar:     models.DefaultAvatar,
		City:       req.City,
		Country:    req.Country,
		LastOnline: &now,
	}
	if err := s.insertUser(&user, ErrEmailTaken); err != nil {
		return nil, err
	}

	token, err := s.IssueToken(&user)
	if err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{
		Message: "✅ تم إنشاء الحساب بنجاح!",
		User: dto.RegisteredUser{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			Phone:     user.Phone,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			City:      user.City,
			Country:   user.Country,
		},
		Token: token,
	}, nil
}

// CreateUser is the admin path: any role, default avatar, no token issued.
func (s *AuthService) CreateUser(req *dto.CreateUserRequest) (*models.User, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperr.Validation("Email and password required")
	}

	taken, err := s.emailTaken(req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUserExists
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	avatar := req.Avatar
	if avatar == "" {
		avatar = models.DefaultAvatar
	}

	now := s.now()
	user := models.User{
		Name:       req.Name,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		FullName:   strings.TrimSpace(req.FirstName + " " + req.LastName),
		Email:      req.Email,
		Phone:      req.Phone,
		Password:   hash,
		Role:       role,
		Avatar:     avatar,
		LastOnline: &now,
	}
	if err := s.insertUser(&user, ErrUserExists); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetMe returns the caller's profile and records activity.
func (s *AuthService) GetMe(userID uint) (*dto.MeResponse, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	s.touch(user.ID)

	return &dto.MeResponse{
		ID:        user.ID,
		Email:     user.Email,
		Phone:     user.Phone,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Country:   user.Country,
		City:      user.City,
	}, nil
}

func (s *AuthService) UpdateMe(userID uint, req *dto.UpdateMeRequest) error {
	result := s.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"first_name": req.FirstName,
		"last_name":  req.LastName,
		"phone":      req.Phone,
		"city":       req.City,
		"country":    req.Country,
		"updated_at": s.now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// IssueToken signs {id, role} with HS256 for the configured lifetime.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	now := s.now()
	claims := identity.Claims(user.ID, user.Role)
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(s.cfg.JWTExpiry).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// HashPassword applies the account bcrypt cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (s *AuthService) emailTaken(email string) (bool, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// insertUser returns conflict when a concurrent signup wins the unique email index.
func (s *AuthService) insertUser(user *models.User, conflict error) error {
	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return conflict
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *AuthService) touch(userID uint) {
	err := s.db.Model(&models.User{}).Where("id = ?", userID).UpdateColumn("last_online", s.now()).Error
	if err != nil {
		slog.Warn("failed to record last_online", "user_id", userID, "error", err)
	}
}
