package usecase

import (
	"context"
	"testing"

	"vehicle-rental/internal/dto/request"
	"vehicle-rental/pkg/utils"

	"go.uber.org/zap"
)

func newAuthService(t *testing.T) AuthService {
	t.Helper()
	config := &utils.Config{Session: utils.SessionConfig{ExpiryHours: 24}}
	return NewAuthService(newTestRepo(), config, zap.NewNop())
}

func TestRegisterLoginLogout(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, &request.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "password123",
	}, "go-test", "127.0.0.1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if registered.Token == "" {
		t.Error("expected a session token after register")
	}
	if registered.Role != "user" {
		t.Errorf("role = %s, want user", registered.Role)
	}

	loggedIn, err := svc.Login(ctx, &request.LoginRequest{
		Email:    "asha@example.com",
		Password: "password123",
	}, "go-test", "127.0.0.1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if loggedIn.Token == "" {
		t.Fatal("expected a session token after login")
	}

	if err := svc.Logout(ctx, loggedIn.Token); err != nil {
		t.Fatalf("logout: %v", err)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	req := &request.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "password123",
	}
	if _, err := svc.Register(ctx, req, "", ""); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(ctx, req, "", ""); err == nil {
		t.Fatal("expected error for duplicate email")
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, &request.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "password123",
	}, "", ""); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login(ctx, &request.LoginRequest{
		Email:    "asha@example.com",
		Password: "wrongpass",
	}, "", ""); err == nil {
		t.Fatal("expected error for wrong password")
	}
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	svc := newAuthService(t)

	if _, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	}, "", ""); err == nil {
		t.Fatal("expected error for unknown email")
	}
}
