package services

import (
	"bonsaigallery/internal/logger"
	"bonsaigallery/internal/models"
	"bonsaigallery/internal/utils"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	ErrInvalidResetToken        = errors.New("invalid or expired reset token")
	ErrPasswordTooShort         = errors.New("password too short")
	ErrCurrentPasswordIncorrect = errors.New("current password is incorrect")
	ErrUserNotFound             = errors.New("user not found")
)

type PasswordService struct {
	userRepo    AdminUserRepo
	resetRepo   PasswordResetRepo
	emailSender EmailSender
	siteURL     string // фронтовый URL: ссылка вида /admin/reset-password?token=...
	tokenTTL    time.Duration
}

type PasswordResetRepo interface {
	CreateInvalidatingPrior(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error
	GetByHash(ctx context.Context, tokenHash string) (*models.PasswordResetToken, error)
	MarkUsed(ctx context.Context, id int64) error
	MarkAllUsedForUser(ctx context.Context, userID string) error
}

type EmailSender interface {
	SendPasswordReset(ctx context.Context, to, resetLink string) error
}

func NewPasswordService(userRepo AdminUserRepo, resetRepo PasswordResetRepo, emailSender EmailSender, siteURL string, tokenTTL time.Duration) *PasswordService {
	return &PasswordService{
		userRepo:    userRepo,
		resetRepo:   resetRepo,
		emailSender: emailSender,
		siteURL:     siteURL,
		tokenTTL:    tokenTTL,
	}
}

// RequestReset выписывает одноразовый токен и отправляет письмо со ссылкой.
// Возвращает nil ВСЕГДА: ни существование почты, ни внутренние сбои наружу
// не просачиваются — ответ вызывающему один и тот же.
func (s *PasswordService) RequestReset(ctx context.Context, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	logger.Log.Info("Запрос на сброс пароля администратора")

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Не раскрываем наличие почты, но логируем для себя
		logger.Log.Warn("Администратор по email не найден при запросе сброса", zap.Error(err))
		return nil
	}

	token, err := utils.GenerateResetToken()
	if err != nil {
		logger.Log.Error("Ошибка генерации токена сброса", zap.Error(err), zap.String("user_id", user.ID))
		return nil
	}
	tokenHash := utils.HashResetToken(token)

	expires := time.Now().Add(s.tokenTTL)
	if err := s.resetRepo.CreateInvalidatingPrior(ctx, user.ID, tokenHash, expires); err != nil {
		logger.Log.Error("Ошибка сохранения токена сброса пароля", zap.String("user_id", user.ID), zap.Error(err))
		return nil
	}

	// В ссылку уходит сырой секрет, в базе остался только хеш
	resetLink := fmt.Sprintf("%s/admin/reset-password?token=%s", s.siteURL, token)
	if err := s.emailSender.SendPasswordReset(ctx, user.Email, resetLink); err != nil {
		logger.Log.Error("Ошибка отправки письма для сброса пароля",
			zap.String("user_id", user.ID),
			zap.Error(err),
		)
		// Не фейлим намеренно — ответ одинаков и при сбое доставки
	}

	logger.Log.Info("Письмо со ссылкой на сброс пароля отправлено",
		zap.String("user_id", user.ID),
		zap.Time("expires_at", expires),
	)
	return nil
}

// ValidateToken — read-only проверка перед показом формы сброса.
// Этот путь информативнее, чем RequestReset: сам сырой токен уже
// подтверждает владение письмом, скрывать причину незачем.
func (s *PasswordService) ValidateToken(ctx context.Context, rawToken string) (bool, string) {
	tokenHash := utils.HashResetToken(rawToken)

	rec, err := s.resetRepo.GetByHash(ctx, tokenHash)
	if err != nil {
		return false, "Invalid reset token"
	}
	if rec.Used {
		return false, "This reset link has already been used"
	}
	if rec.Expired(time.Now()) {
		return false, "This reset link has expired"
	}
	return true, "Token is valid"
}

// ResetPassword подтверждает токен и устанавливает новый пароль.
// Любое нарушение по токену — ErrInvalidResetToken, без уточнений.
func (s *PasswordService) ResetPassword(ctx context.Context, rawToken, newPassword string) error {
	logger.Log.Info("Попытка сброса пароля по токену")

	if len(newPassword) < 8 {
		logger.Log.Warn("Слишком короткий новый пароль")
		return ErrPasswordTooShort
	}

	tokenHash := utils.HashResetToken(rawToken)

	rec, err := s.resetRepo.GetByHash(ctx, tokenHash)
	if err != nil || rec.Used || rec.Expired(time.Now()) {
		logger.Log.Warn("Неверный или просроченный токен при сбросе пароля", zap.Error(err))
		return ErrInvalidResetToken
	}

	pwHash, err := utils.HashPassword(newPassword)
	if err != nil {
		logger.Log.Error("Ошибка генерации хеша пароля", zap.Error(err), zap.String("user_id", rec.UserID))
		return err
	}

	if err := s.userRepo.UpdatePassword(ctx, rec.UserID, pwHash); err != nil {
		logger.Log.Error("Ошибка обновления пароля администратора",
			zap.String("user_id", rec.UserID),
			zap.Error(err),
		)
		return err
	}

	if err := s.resetRepo.MarkUsed(ctx, rec.ID); err != nil {
		logger.Log.Warn("Не удалось пометить токен сброса использованным",
			zap.Error(err),
			zap.Int64("token_id", rec.ID),
		)
	}

	// Гасим и все прочие живые токены пользователя: защита от
	// параллельно выписанных
	if err := s.resetRepo.MarkAllUsedForUser(ctx, rec.UserID); err != nil {
		logger.Log.Warn("Не удалось погасить остальные токены пользователя",
			zap.Error(err),
			zap.String("user_id", rec.UserID),
		)
	}

	logger.Log.Info("Пароль успешно сброшен", zap.String("user_id", rec.UserID))
	return nil
}

// ChangePassword меняет пароль авторизованного администратора по текущему
// паролю. Выданные ранее токены сессии продолжают жить до своего exp.
func (s *PasswordService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	logger.Log.Info("Смена пароля (авторизованный администратор)", zap.String("user_id", userID))

	if len(newPassword) < 8 {
		logger.Log.Warn("Слишком короткий новый пароль", zap.String("user_id", userID))
		return ErrPasswordTooShort
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Warn("Администратор не найден при смене пароля", zap.String("user_id", userID), zap.Error(err))
		return ErrUserNotFound
	}

	if !utils.CheckPasswordHash(currentPassword, user.PasswordHash) {
		logger.Log.Warn("Текущий пароль не совпадает", zap.String("user_id", userID))
		return ErrCurrentPasswordIncorrect
	}

	newHash, err := utils.HashPassword(newPassword)
	if err != nil {
		logger.Log.Error("Ошибка генерации нового хеша пароля", zap.Error(err), zap.String("user_id", userID))
		return err
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, newHash); err != nil {
		logger.Log.Error("Ошибка обновления пароля администратора",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Info("Пароль успешно изменён", zap.String("user_id", userID))
	return nil
}
