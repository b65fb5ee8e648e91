package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Freeeeeet/meeting_bot/internal/apiclient"
	"github.com/Freeeeeet/meeting_bot/internal/model"
)

var validate = validator.New()

// AuthResult — ответ API на логин/регистрацию
type AuthResult struct {
	UserID  string       `json:"user_id"`
	Name    string       `json:"name"`
	Token   string       `json:"token"`
	Roles   []model.Role `json:"roles"`
	Message string       `json:"message"`
}

// PrimaryRole — роль из первого элемента списка, по умолчанию Student
func (r *AuthResult) PrimaryRole() model.Role {
	if len(r.Roles) > 0 && r.Roles[0].Valid() {
		return r.Roles[0]
	}
	return model.RoleStudent
}

type credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registration struct {
	Name     string       `json:"name" validate:"required"`
	Username string       `json:"username" validate:"required"`
	Email    string       `json:"email" validate:"required,email"`
	Password string       `json:"password" validate:"required,min=4"`
	Roles    []model.Role `json:"roles"`
}

type AuthService struct {
	api    *apiclient.Client
	logger *zap.Logger
}

func NewAuthService(api *apiclient.Client, logger *zap.Logger) *AuthService {
	return &AuthService{
		api:    api,
		logger: logger,
	}
}

// Login аутентифицирует пользователя по email и паролю.
// Ответ без user_id — это отказ, сессию трогать нельзя.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	payload := credentials{Email: email, Password: password}
	if err := validate.Struct(payload); err != nil {
		return nil, fmt.Errorf("validate credentials: %w", err)
	}

	var result AuthResult
	if err := s.api.SendJSON(ctx, "", http.MethodPost, "/users/login", payload, &result); err != nil {
		return nil, fmt.Errorf("login request: %w", err)
	}

	if result.UserID == "" {
		return nil, fmt.Errorf("login response has no user_id")
	}

	s.logger.Info("User logged in",
		zap.String("user_id", result.UserID),
		zap.String("email", email),
	)

	return &result, nil
}

// Register создаёт пользователя и сразу логинит его
func (s *AuthService) Register(ctx context.Context, name, username, email, password string, role model.Role) (*AuthResult, error) {
	payload := registration{
		Name:     name,
		Username: username,
		Email:    email,
		Password: password,
		Roles:    []model.Role{role},
	}
	if err := validate.Struct(payload); err != nil {
		return nil, fmt.Errorf("validate registration: %w", err)
	}

	var result AuthResult
	if err := s.api.SendJSON(ctx, "", http.MethodPost, "/users", payload, &result); err != nil {
		return nil, fmt.Errorf("register request: %w", err)
	}

	if result.UserID == "" {
		return nil, fmt.Errorf("register response has no user_id")
	}

	s.logger.Info("New user registered",
		zap.String("user_id", result.UserID),
		zap.String("email", email),
		zap.String("role", string(role)),
	)

	// Автоматический логин после регистрации
	login, err := s.Login(ctx, email, password)
	if err != nil {
		// Пользователь создан, но залогинить не удалось — отдаём результат регистрации
		s.logger.Warn("Auto-login after registration failed",
			zap.String("user_id", result.UserID),
			zap.Error(err),
		)
		return &result, nil
	}

	return login, nil
}

// GetUser получает пользователя по ID
func (s *AuthService) GetUser(ctx context.Context, token, userID string) (*model.User, error) {
	var user model.User
	if err := s.api.GetJSON(ctx, token, "/users/id/"+userID, &user); err != nil {
		return nil, fmt.Errorf("get user %s: %w", userID, err)
	}
	return &user, nil
}
