package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ems_backend/internals/configs"
	"ems_backend/internals/constants"
	dto "ems_backend/internals/features/users/dto"
	model "ems_backend/internals/features/users/model"
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// Register creates a student account. Staff accounts are provisioned through
// tutor management, not self-registration.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*model.UserModel, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing model.UserModel
	err := s.DB.WithContext(ctx).Where("user_email = ?", email).First(&existing).Error
	if err == nil {
		return nil, fiber.NewError(fiber.StatusConflict, "Email is already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := model.UserModel{
		UserEmail:     email,
		UserPassword:  string(hash),
		UserFirstName: req.FirstName,
		UserLastName:  req.LastName,
	}
	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Login checks credentials and issues the access/refresh token pair. The
// session role is resolved from the user's grants in the requested tenant.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user model.UserModel
	err := s.DB.WithContext(ctx).
		Where("user_email = ? AND user_is_active = ?", email, true).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)) != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	role, err := s.sessionRoleFor(ctx, user.UserID, req.CompanyID)
	if err != nil {
		return nil, err
	}

	access, err := issueToken(user.UserID, req.CompanyID, role, configs.JWTSecret, 24*time.Hour)
	if err != nil {
		return nil, err
	}
	refresh, err := issueToken(user.UserID, req.CompanyID, role, configs.JWTRefreshSecret, 7*24*time.Hour)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		UserID:       user.UserID,
		Role:         role,
	}, nil
}

// sessionRoleFor maps the strongest grant in the tenant onto a session role.
// No grant means a plain student session.
func (s *AuthService) sessionRoleFor(ctx context.Context, userID, companyID uuid.UUID) (string, error) {
	var names []string
	err := s.DB.WithContext(ctx).
		Table("user_roles").
		Joins("JOIN roles ON roles.role_id = user_roles.user_role_role_id").
		Where("user_roles.user_role_user_id = ? AND user_roles.user_role_company_id = ?", userID, companyID).
		Pluck("roles.role_name", &names).Error
	if err != nil {
		return "", err
	}

	has := make(map[string]bool, len(names))
	for _, n := range names {
		has[n] = true
	}

	switch {
	case has[constants.RoleNameOwner]:
		return constants.RoleOwner, nil
	case has[constants.RoleNameAdmin]:
		return constants.RoleAdmin, nil
	case has[constants.RoleNameManager], has[constants.RoleNameAcademicManager]:
		return constants.RoleManager, nil
	case has[constants.RoleNameTutor]:
		return constants.RoleTutor, nil
	default:
		return constants.RoleStudent, nil
	}
}

func issueToken(userID, companyID uuid.UUID, role, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":         userID.String(),
		"company_id": companyID.String(),
		"role":       role,
		"iat":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
