package services

import (
	"bonsaigallery/internal/logger"
	"bonsaigallery/internal/models"
	"bonsaigallery/internal/utils"
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// ErrInvalidCredentials — единый отказ логина. Неизвестный email и неверный
// пароль для вызывающего неразличимы, чтобы по логину нельзя было
// перебирать адреса.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	repo AdminUserRepo
}

func NewAuthService(repo AdminUserRepo) *AuthService {
	return &AuthService{repo: repo}
}

type AdminUserRepo interface {
	GetByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	GetByID(ctx context.Context, id string) (*models.AdminUser, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

// Verify проверяет пару email/пароль по сохранённому хешу.
// Побочных эффектов нет: ни счётчика блокировок, ни аудита.
func (s *AuthService) Verify(ctx context.Context, email, password string) (*models.AdminUser, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Warn("Администратор не найден (service)", zap.Error(err))
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		logger.Log.Warn("Неверный пароль администратора (service)", zap.String("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Login — проверка учётных данных плюс выпуск токена сессии.
// Токен самодостаточный: серверной таблицы сессий нет, logout — no-op
// на клиенте, отзыва до истечения TTL не существует.
func (s *AuthService) Login(ctx context.Context, email, password, jwtSecret string, ttl time.Duration) (string, *models.AdminUser, error) {
	logger.Log.Info("Попытка входа администратора (service)")

	user, err := s.Verify(ctx, email, password)
	if err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateSessionToken(jwtSecret, user.ID, user.Email, ttl)
	if err != nil {
		logger.Log.Error("Ошибка генерации токена сессии", zap.Error(err))
		return "", nil, err
	}

	logger.Log.Info("Вход администратора выполнен (service)", zap.String("user_id", user.ID))
	return token, user, nil
}

// VerifySessionToken возвращает субъект токена; любая причина отказа —
// utils.ErrInvalidToken, наружу различий нет.
func (s *AuthService) VerifySessionToken(jwtSecret, token string) (models.AdminUserPublic, error) {
	userID, email, err := utils.ParseSessionToken(jwtSecret, token)
	if err != nil {
		return models.AdminUserPublic{}, err
	}
	return models.AdminUserPublic{ID: userID, Email: email}, nil
}
