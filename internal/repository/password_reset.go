package repository

import (
	"bonsaigallery/internal/logger"
	"bonsaigallery/internal/models"
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type PasswordResetRepository struct {
	db *pgxpool.Pool
}

func NewPasswordResetRepository(db *pgxpool.Pool) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

// CreateInvalidatingPrior гасит все неиспользованные токены пользователя и
// вставляет новый одной транзакцией. Инвариант: не больше одного живого
// токена на пользователя, без окна между гашением и вставкой.
func (r *PasswordResetRepository) CreateInvalidatingPrior(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		logger.Log.Error("Не удалось открыть транзакцию для токена сброса (repo)", zap.Error(err), zap.String("user_id", userID))
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`UPDATE password_reset_tokens SET used = true WHERE user_id = $1 AND used = false`,
		userID,
	); err != nil {
		logger.Log.Error("Ошибка гашения прежних токенов сброса (repo)", zap.Error(err), zap.String("user_id", userID))
		return err
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO password_reset_tokens (user_id, token_hash, expires_at) VALUES ($1, $2, $3)`,
		userID, tokenHash, expiresAt,
	); err != nil {
		logger.Log.Error("Ошибка сохранения токена сброса (repo)", zap.Error(err), zap.String("user_id", userID))
		return err
	}

	return tx.Commit(ctx)
}

// GetByHash возвращает токен в любом состоянии: validate-путь различает
// «нет такого», «уже использован» и «просрочен».
func (r *PasswordResetRepository) GetByHash(ctx context.Context, tokenHash string) (*models.PasswordResetToken, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, token_hash, expires_at, used, created_at
		FROM password_reset_tokens
		WHERE token_hash = $1
	`, tokenHash)

	var t models.PasswordResetToken
	if err := row.Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.Used, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PasswordResetRepository) MarkUsed(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `UPDATE password_reset_tokens SET used = true WHERE id = $1`, id)
	if err != nil {
		logger.Log.Error("Не удалось пометить токен сброса использованным (repo)", zap.Error(err), zap.Int64("token_id", id))
	}
	return err
}

// MarkAllUsedForUser гасит все неиспользованные токены пользователя —
// защита от параллельно выписанных токенов при успешном сбросе.
func (r *PasswordResetRepository) MarkAllUsedForUser(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `UPDATE password_reset_tokens SET used = true WHERE user_id = $1 AND used = false`, userID)
	if err != nil {
		logger.Log.Error("Не удалось погасить токены пользователя (repo)", zap.Error(err), zap.String("user_id", userID))
	}
	return err
}
