package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"bonsaigallery/internal/config"
	"bonsaigallery/internal/logger"
	"bonsaigallery/internal/services"
	"bonsaigallery/internal/utils"
	helpers "bonsaigallery/internal/utils/helpers"

	"go.uber.org/zap"
)

type PasswordHandler struct {
	svc *services.PasswordService
	cfg *config.Config
}

func NewPasswordHandler(svc *services.PasswordService, cfg *config.Config) *PasswordHandler {
	return &PasswordHandler{svc: svc, cfg: cfg}
}

type forgotRequest struct {
	Email string `json:"email"`
}

type validateResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

type resetRequest struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type changeRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// forgotAck — единый ответ forgot-password: одинаковый и для существующей
// почты, и для неизвестной, и при внутренних сбоях.
var forgotAck = messageResponse{
	Success: true,
	Message: "If an account with that email exists, a reset link has been sent.",
}

// Forgot godoc
// @Summary Запрос восстановления пароля
// @Description Отправляет письмо со ссылкой для сброса. Ответ всегда одинаковый, даже если e-mail не найден.
// @Tags admin-auth
// @Accept json
// @Produce json
// @Param input body forgotRequest true "Email администратора"
// @Success 200 {object} messageResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Router /api/admin/auth/forgot-password [post]
func (h *PasswordHandler) Forgot(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req forgotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		log.Warn("Невалидный payload в Forgot")
		helpers.Error(w, http.StatusBadRequest, "Email is required")
		return
	}

	// RequestReset глотает все внутренние ошибки сам; ответ один
	_ = h.svc.RequestReset(r.Context(), req.Email)

	helpers.JSON(w, http.StatusOK, forgotAck)
}

// ValidateResetToken godoc
// @Summary Проверка токена сброса
// @Description Read-only проверка перед показом формы. Причина отказа сообщается: сам токен уже подтверждает владение письмом.
// @Tags admin-auth
// @Produce json
// @Param token query string true "Токен из письма"
// @Success 200 {object} validateResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Router /api/admin/auth/validate-reset-token [get]
func (h *PasswordHandler) ValidateResetToken(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	token := strings.TrimSpace(r.URL.Query().Get("token"))
	if token == "" {
		log.Warn("ValidateResetToken: пустой токен")
		helpers.Error(w, http.StatusBadRequest, "Token is required")
		return
	}

	valid, message := h.svc.ValidateToken(r.Context(), token)
	helpers.JSON(w, http.StatusOK, validateResponse{Valid: valid, Message: message})
}

// Reset godoc
// @Summary Сброс пароля по токену
// @Description Устанавливает новый пароль по токену из письма. Токен одноразовый.
// @Tags admin-auth
// @Accept json
// @Produce json
// @Param input body resetRequest true "Токен и новый пароль"
// @Success 200 {object} messageResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Router /api/admin/auth/reset-password [post]
func (h *PasswordHandler) Reset(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req resetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный payload в Reset")
		helpers.Error(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Проверки по порядку, каждая со своим сообщением
	if req.Token == "" || req.Password == "" || req.ConfirmPassword == "" {
		helpers.Error(w, http.StatusBadRequest, "Token, password, and password confirmation are required")
		return
	}
	if req.Password != req.ConfirmPassword {
		helpers.Error(w, http.StatusBadRequest, "Passwords do not match")
		return
	}
	if len(req.Password) < 8 {
		helpers.Error(w, http.StatusBadRequest, "Password must be at least 8 characters")
		return
	}

	if err := h.svc.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
		switch err {
		case services.ErrInvalidResetToken, services.ErrPasswordTooShort:
			log.Warn("Не удалось сбросить пароль по токену", zap.Error(err))
			helpers.Error(w, http.StatusBadRequest, "Invalid or expired reset token")
		default:
			log.Error("Внутренняя ошибка при сбросе пароля", zap.Error(err))
			helpers.Error(w, http.StatusInternalServerError, "Failed to update password")
		}
		return
	}

	log.Info("Пароль успешно сброшен")
	helpers.JSON(w, http.StatusOK, messageResponse{
		Success: true,
		Message: "Password has been reset successfully",
	})
}

// Change godoc
// @Summary Смена пароля (авторизованный администратор)
// @Description Смена пароля по текущему паролю. Требуется bearer-токен; тело запроса проверяется раньше токена.
// @Tags admin-auth
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body changeRequest true "Текущий и новый пароль"
// @Success 200 {object} messageResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Router /api/admin/auth/change-password [post]
func (h *PasswordHandler) Change(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req changeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный payload в Change")
		helpers.Error(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Сначала тело запроса, и только потом токен: запрос с битым токеном и
	// пустыми полями получает 400, не 401
	if req.CurrentPassword == "" || req.NewPassword == "" || req.ConfirmPassword == "" {
		helpers.Error(w, http.StatusBadRequest, "All fields are required")
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		helpers.Error(w, http.StatusBadRequest, "New passwords do not match")
		return
	}
	if len(req.NewPassword) < 8 {
		helpers.Error(w, http.StatusBadRequest, "New password must be at least 8 characters")
		return
	}
	if req.CurrentPassword == req.NewPassword {
		helpers.Error(w, http.StatusBadRequest, "New password must be different from current password")
		return
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		log.Warn("Change: отсутствует bearer-токен")
		helpers.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	userID, _, err := utils.ParseSessionToken(h.cfg.JWTSecret, strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		log.Warn("Change: неверный или просроченный токен")
		helpers.Error(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	if err := h.svc.ChangePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		switch err {
		case services.ErrUserNotFound:
			helpers.Error(w, http.StatusUnauthorized, "User not found")
		case services.ErrCurrentPasswordIncorrect:
			helpers.Error(w, http.StatusBadRequest, "Current password is incorrect")
		case services.ErrPasswordTooShort:
			helpers.Error(w, http.StatusBadRequest, "New password must be at least 8 characters")
		default:
			log.Error("Внутренняя ошибка при смене пароля", zap.String("user_id", userID), zap.Error(err))
			helpers.Error(w, http.StatusInternalServerError, "Failed to update password")
		}
		return
	}

	log.Info("Пароль изменён", zap.String("user_id", userID))
	helpers.JSON(w, http.StatusOK, messageResponse{
		Success: true,
		Message: "Password changed successfully",
	})
}
