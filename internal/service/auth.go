package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/cat_finder_system/internal/models"
	"github.com/shenikar/cat_finder_system/pkg/token"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository определяет контракт для работы с бд пользователей
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

// RegisterInput - данные для регистрации пользователя
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

// UpdateProfileInput - данные для частичного обновления профиля
type UpdateProfileInput struct {
	Name            string
	Phone           string
	CurrentPassword string
	NewPassword     string
}

// Profile - профиль пользователя вместе с его котами и репортами
type Profile struct {
	User    *models.User
	Cats    []*models.Cat
	Reports []*models.Report
}

// AuthService определяет контракт для бизнес-логики аутентификации
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*models.User, error)
}

type authService struct {
	users   UserRepository
	cats    CatRepository
	reports ReportRepository
	tokens  *token.Manager
	logger  *logrus.Logger
}

func NewAuthService(users UserRepository, cats CatRepository, reports ReportRepository, tokens *token.Manager, logger *logrus.Logger) AuthService {
	return &authService{
		users:   users,
		cats:    cats,
		reports: reports,
		tokens:  tokens,
		logger:  logger,
	}
}

// Register создает пользователя с захэшированным паролем и выдает токен
func (s *authService) Register(ctx context.Context, input RegisterInput) (*models.User, string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Register",
		"email":   input.Email,
	})
	log.Info("Attempting to register a new user")

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return nil, "", fmt.Errorf("service: could not hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: string(hash),
		Name:         input.Name,
		Phone:        input.Phone,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			log.Warn("Email is already registered")
			return nil, "", ErrEmailTaken
		}
		log.WithError(err).Error("Failed to create user in repository")
		return nil, "", fmt.Errorf("service: could not create user: %w", err)
	}

	signed, err := s.tokens.Generate(user.ID)
	if err != nil {
		log.WithError(err).Error("Failed to generate token")
		return nil, "", fmt.Errorf("service: could not generate token: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User registered successfully")
	return user, signed, nil
}

// Login проверяет учетные данные и выдает токен
func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Login",
		"email":   email,
	})
	log.Info("Attempting to log in")

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Login attempt for unknown email")
			return nil, "", ErrInvalidCredentials
		}
		log.WithError(err).Error("Failed to get user from repository")
		return nil, "", fmt.Errorf("service: could not get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn("Login attempt with wrong password")
		return nil, "", ErrInvalidCredentials
	}

	signed, err := s.tokens.Generate(user.ID)
	if err != nil {
		log.WithError(err).Error("Failed to generate token")
		return nil, "", fmt.Errorf("service: could not generate token: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User logged in successfully")
	return user, signed, nil
}

// GetProfile возвращает пользователя вместе с его котами и репортами
func (s *authService) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "GetProfile",
		"user_id": userID,
	})
	log.Info("Fetching user profile")

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		log.WithError(err).Error("Failed to get user from repository")
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}

	cats, err := s.cats.ListByOwner(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to list user cats")
		return nil, fmt.Errorf("service: could not list user cats: %w", err)
	}

	reports, err := s.reports.ListByReporter(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to list user reports")
		return nil, fmt.Errorf("service: could not list user reports: %w", err)
	}

	log.Info("Profile fetched successfully")
	return &Profile{User: user, Cats: cats, Reports: reports}, nil
}

// UpdateProfile обновляет имя/телефон и, при совпадении текущего пароля, пароль
func (s *authService) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "UpdateProfile",
		"user_id": userID,
	})
	log.Info("Attempting to update user profile")

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		log.WithError(err).Error("Failed to get user from repository")
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}

	// Пароль меняется только при переданной паре текущий/новый
	if input.CurrentPassword != "" && input.NewPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)); err != nil {
			log.Warn("Profile update with wrong current password")
			return nil, ErrWrongPassword
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			log.WithError(err).Error("Failed to hash new password")
			return nil, fmt.Errorf("service: could not hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.users.Update(ctx, user); err != nil {
		log.WithError(err).Error("Failed to update user in repository")
		return nil, fmt.Errorf("service: could not update user: %w", err)
	}

	log.Info("Profile updated successfully")
	return user, nil
}
