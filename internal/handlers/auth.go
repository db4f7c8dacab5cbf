package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"bonsaigallery/internal/config"
	"bonsaigallery/internal/logger"
	"bonsaigallery/internal/models"
	"bonsaigallery/internal/services"
	helpers "bonsaigallery/internal/utils/helpers"

	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool                   `json:"success"`
	User    models.AdminUserPublic `json:"user"`
	Token   string                 `json:"token"`
}

type verifyResponse struct {
	Success bool                   `json:"success"`
	User    models.AdminUserPublic `json:"user"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Login godoc
// @Summary Вход администратора
// @Description Проверяет email/пароль и выдаёт bearer-токен на 7 суток.
// @Tags admin-auth
// @Accept json
// @Produce json
// @Param input body loginRequest true "Учётные данные"
// @Success 200 {object} loginResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Router /api/admin/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Ошибка декодирования JSON в Login", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Email == "" || req.Password == "" {
		log.Warn("Login: не заполнены обязательные поля")
		helpers.Error(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	token, user, err := h.authService.Login(r.Context(), req.Email, req.Password, h.cfg.JWTSecret, h.cfg.SessionTTL())
	if err != nil {
		if err == services.ErrInvalidCredentials {
			// Неизвестный email и неверный пароль отвечают одинаково
			helpers.Error(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Error("Внутренняя ошибка при входе", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	helpers.JSON(w, http.StatusOK, loginResponse{
		Success: true,
		User:    user.Public(),
		Token:   token,
	})
}

// Logout godoc
// @Summary Выход администратора
// @Description Серверных сессий нет: клиент просто выбрасывает токен. Всегда успех.
// @Tags admin-auth
// @Produce json
// @Success 200 {object} messageResponse
// @Router /api/admin/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	// Токен не в блоклисте и продолжает жить до exp — принятая особенность
	helpers.JSON(w, http.StatusOK, messageResponse{
		Success: true,
		Message: "Logged out successfully",
	})
}

// Verify godoc
// @Summary Проверка токена сессии
// @Tags admin-auth
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} verifyResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Router /api/admin/auth/verify [get]
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		log.Warn("Verify: отсутствует bearer-токен")
		helpers.Error(w, http.StatusUnauthorized, "No token provided")
		return
	}

	user, err := h.authService.VerifySessionToken(h.cfg.JWTSecret, strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		log.Warn("Verify: неверный или просроченный токен")
		helpers.Error(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	helpers.JSON(w, http.StatusOK, verifyResponse{
		Success: true,
		User:    user,
	})
}
