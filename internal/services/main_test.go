package services

import (
	"os"
	"testing"

	"bonsaigallery/internal/logger"

	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	// Глобальный логгер в тестах — заглушка
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}
