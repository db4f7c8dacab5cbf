package app

import (
	"bonsaigallery/internal/config"
	"bonsaigallery/internal/db"
	"bonsaigallery/internal/handlers"
	"bonsaigallery/internal/repository"
	"bonsaigallery/internal/routes"
	"bonsaigallery/internal/services"

	"github.com/gorilla/mux"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, err
	}

	// Репозитории
	userRepo := repository.NewAdminUserRepository(conn)
	resetRepo := repository.NewPasswordResetRepository(conn)
	treeRepo := repository.NewTreeRepository(conn)

	// Сервисы
	authService := services.NewAuthService(userRepo)
	emailService := services.NewEmailService(cfg)
	passwordService := services.NewPasswordService(userRepo, resetRepo, emailService, cfg.SiteURL, cfg.ResetTTL())
	treeService := services.NewTreeService(treeRepo)

	// Хендлеры
	authHandler := handlers.NewAuthHandler(authService, cfg)
	passwordHandler := handlers.NewPasswordHandler(passwordService, cfg)
	treeHandler := handlers.NewTreeHandler(treeService)
	logsHandler := handlers.NewAdminLogsHandler()

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, cfg.JWTSecret, authHandler, passwordHandler, treeHandler, logsHandler)

	return router, nil
}
