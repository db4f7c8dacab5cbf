package db

import (
	"context"
	"time"

	"bonsaigallery/internal/config"
	"bonsaigallery/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// NewPostgresConnection открывает пул к базе галереи (каталог деревьев,
// администраторы, токены сброса) и проверяет его пингом. Нагрузка у витрины
// читающая и небольшая, десяти соединений достаточно.
func NewPostgresConnection(cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		logger.Log.Error("Невалидная DSN базы галереи", zap.String("dsn", cfg.GetDSNSafe()), zap.Error(err))
		return nil, err
	}
	poolCfg.MaxConns = 10

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Log.Error("Не удалось открыть пул к базе галереи", zap.String("dsn", cfg.GetDSNSafe()), zap.Error(err))
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		logger.Log.Error("База галереи не отвечает на ping", zap.String("dsn", cfg.GetDSNSafe()), zap.Error(err))
		return nil, err
	}

	return pool, nil
}
