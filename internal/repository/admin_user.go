package repository

import (
	"bonsaigallery/internal/logger"
	"bonsaigallery/internal/models"
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type AdminUserRepository struct {
	db *pgxpool.Pool
}

func NewAdminUserRepository(db *pgxpool.Pool) *AdminUserRepository {
	return &AdminUserRepository{db: db}
}

func (r *AdminUserRepository) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	logger.Log.Debug("Получение администратора по email (repo)")
	query := `SELECT id, email, password_hash, last_password_change, created_at
	FROM admin_users
	WHERE email = $1`

	var user models.AdminUser
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.LastPasswordChange,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *AdminUserRepository) GetByID(ctx context.Context, id string) (*models.AdminUser, error) {
	logger.Log.Debug("Получение администратора по ID (repo)", zap.String("user_id", id))
	query := `SELECT id, email, password_hash, last_password_change, created_at
	FROM admin_users
	WHERE id = $1`

	var user models.AdminUser
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.LastPasswordChange,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePassword сохраняет новый хеш и штампует last_password_change.
func (r *AdminUserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE admin_users SET password_hash = $1, last_password_change = now() WHERE id = $2`,
		passwordHash, userID,
	)
	if err != nil {
		logger.Log.Error("Ошибка обновления пароля администратора (repo)", zap.Error(err), zap.String("user_id", userID))
	}
	return err
}
