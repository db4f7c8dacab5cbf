package routes

import (
	"net/http"

	"bonsaigallery/internal/handlers"
	"bonsaigallery/internal/middleware"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	passwordHandler *handlers.PasswordHandler,
	treeHandler *handlers.TreeHandler,
	logsHandler *handlers.AdminLogsHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging)
	router.Use(middleware.Recoverer)

	api := router.PathPrefix("/api").Subrouter()

	// --- Публичные маршруты ---
	adminAuth := api.PathPrefix("/admin/auth").Subrouter()
	adminAuth.HandleFunc("/login", authHandler.Login).Methods("POST")
	adminAuth.HandleFunc("/logout", authHandler.Logout).Methods("POST")
	adminAuth.HandleFunc("/verify", authHandler.Verify).Methods("GET")
	adminAuth.HandleFunc("/forgot-password", passwordHandler.Forgot).Methods("POST")
	adminAuth.HandleFunc("/validate-reset-token", passwordHandler.ValidateResetToken).Methods("GET")
	adminAuth.HandleFunc("/reset-password", passwordHandler.Reset).Methods("POST")
	// Токен проверяется внутри хендлера после валидации тела, поэтому
	// маршрут вне JWT-middleware
	adminAuth.HandleFunc("/change-password", passwordHandler.Change).Methods("POST")

	api.HandleFunc("/trees", treeHandler.List).Methods("GET")
	api.HandleFunc("/trees/featured", treeHandler.Featured).Methods("GET")
	api.HandleFunc("/trees/filter-options", treeHandler.FilterOptions).Methods("GET")
	api.HandleFunc("/trees/slug/{slug}", treeHandler.GetBySlug).Methods("GET")
	api.HandleFunc("/trees/{id}", treeHandler.GetByID).Methods("GET")

	// --- Защищённые JWT ---
	protected := api.PathPrefix("").Subrouter()
	protected.Use(func(next http.Handler) http.Handler {
		return middleware.JWTAuth(jwtSecret, next)
	})

	protected.HandleFunc("/admin/trees", treeHandler.Create).Methods("POST")
	protected.HandleFunc("/admin/trees/{id}", treeHandler.Update).Methods("PUT")
	protected.HandleFunc("/admin/trees/{id}", treeHandler.Delete).Methods("DELETE")

	protected.HandleFunc("/admin/stats", treeHandler.Stats).Methods("GET")

	protected.HandleFunc("/admin/logs", logsHandler.GetLogs).Methods("GET")
	protected.HandleFunc("/admin/logs/days", logsHandler.ListDays).Methods("GET")
	protected.HandleFunc("/admin/logs/download", logsHandler.DownloadRaw).Methods("GET")
}
