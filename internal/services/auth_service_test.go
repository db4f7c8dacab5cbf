package services

import (
	"bonsaigallery/internal/models"
	"bonsaigallery/internal/utils"
	"context"
	"errors"
	"testing"
	"time"
)

// Мок-репозиторий администраторов (заглушка)
type mockUserRepo struct {
	users map[string]*models.AdminUser // ключ — email
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*models.AdminUser, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*models.AdminUser, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errors.New("not found")
}

func (m *mockUserRepo) UpdatePassword(_ context.Context, userID, passwordHash string) error {
	for _, u := range m.users {
		if u.ID == userID {
			u.PasswordHash = passwordHash
			now := time.Now()
			u.LastPasswordChange = &now
			return nil
		}
	}
	return errors.New("not found")
}

func newRepoWithAdmin(t *testing.T, email, password string) *mockUserRepo {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("не удалось захешировать пароль: %v", err)
	}
	return &mockUserRepo{users: map[string]*models.AdminUser{
		email: {ID: "admin-1", Email: email, PasswordHash: hashed},
	}}
}

func TestVerify_Success(t *testing.T) {
	repo := newRepoWithAdmin(t, "admin@bonsai.test", "secret123")
	service := NewAuthService(repo)

	user, err := service.Verify(context.Background(), "admin@bonsai.test", "secret123")
	if err != nil {
		t.Fatalf("ожидался успешный вход: %v", err)
	}
	if user.ID != "admin-1" {
		t.Fatalf("вернулся не тот пользователь: %s", user.ID)
	}
}

// Неверный пароль и неизвестный email должны быть неразличимы для вызывающего.
func TestVerify_FailuresIndistinguishable(t *testing.T) {
	repo := newRepoWithAdmin(t, "admin@bonsai.test", "secret123")
	service := NewAuthService(repo)

	_, errWrongPassword := service.Verify(context.Background(), "admin@bonsai.test", "wrong-pass")
	_, errUnknownEmail := service.Verify(context.Background(), "ghost@bonsai.test", "secret123")

	if errWrongPassword == nil || errUnknownEmail == nil {
		t.Fatal("оба варианта должны отказывать")
	}
	if !errors.Is(errWrongPassword, ErrInvalidCredentials) || !errors.Is(errUnknownEmail, ErrInvalidCredentials) {
		t.Fatal("оба отказа должны быть ErrInvalidCredentials")
	}
	if errWrongPassword.Error() != errUnknownEmail.Error() {
		t.Fatalf("сообщения различаются: %q vs %q", errWrongPassword, errUnknownEmail)
	}
}

func TestLogin_TokenRoundTrip(t *testing.T) {
	repo := newRepoWithAdmin(t, "admin@bonsai.test", "secret123")
	service := NewAuthService(repo)

	token, user, err := service.Login(context.Background(), "admin@bonsai.test", "secret123", "test-secret", 7*24*time.Hour)
	if err != nil {
		t.Fatalf("ошибка логина: %v", err)
	}
	if token == "" {
		t.Fatal("токен не сгенерирован")
	}

	subject, err := service.VerifySessionToken("test-secret", token)
	if err != nil {
		t.Fatalf("только что выданный токен не прошёл проверку: %v", err)
	}
	if subject.ID != user.ID || subject.Email != user.Email {
		t.Fatalf("субъект токена не совпадает: %+v", subject)
	}
}

func TestVerifySessionToken_Expired(t *testing.T) {
	repo := newRepoWithAdmin(t, "admin@bonsai.test", "secret123")
	service := NewAuthService(repo)

	// TTL в прошлом — токен родился просроченным
	token, err := utils.GenerateSessionToken("test-secret", "admin-1", "admin@bonsai.test", -time.Second)
	if err != nil {
		t.Fatalf("ошибка генерации токена: %v", err)
	}

	if _, err := service.VerifySessionToken("test-secret", token); err == nil {
		t.Fatal("просроченный токен должен отклоняться")
	}
}

func TestVerifySessionToken_WrongSecret(t *testing.T) {
	repo := newRepoWithAdmin(t, "admin@bonsai.test", "secret123")
	service := NewAuthService(repo)

	token, _ := utils.GenerateSessionToken("test-secret", "admin-1", "admin@bonsai.test", time.Hour)

	if _, err := service.VerifySessionToken("other-secret", token); !errors.Is(err, utils.ErrInvalidToken) {
		t.Fatalf("подмена секрета должна давать ErrInvalidToken, получено: %v", err)
	}
}
