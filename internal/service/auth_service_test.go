package service

import (
	"context"
	"testing"
	"time"

	"github.com/orbita/challenger-backend/internal/config"
	"golang.org/x/crypto/bcrypt"
)

type fakeSessions struct {
	active map[string]bool
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{active: make(map[string]bool)}
}

func (f *fakeSessions) Save(_ context.Context, jti string, _ time.Duration) error {
	f.active[jti] = true
	return nil
}

func (f *fakeSessions) Exists(_ context.Context, jti string) (bool, error) {
	return f.active[jti], nil
}

func (f *fakeSessions) Delete(_ context.Context, jti string) error {
	delete(f.active, jti)
	return nil
}

func newTestAuthService(t *testing.T) (*AuthService, *fakeSessions) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTExpiry:        time.Hour,
		AuthUsername:     "admin",
		AuthPasswordHash: string(hash),
	}
	sessions := newFakeSessions()
	return NewAuthService(cfg, sessions), sessions
}

func TestLoginAndValidate(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	token, err := svc.Login(ctx, "admin", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	claims, err := svc.ValidateToken(ctx, token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("username = %q", claims.Username)
	}
	if claims.ID == "" {
		t.Error("empty JTI")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Login(ctx, "admin", "wrong"); err != ErrInvalidCredentials {
		t.Errorf("wrong password: err = %v", err)
	}
	if _, err := svc.Login(ctx, "intruder", "s3cret"); err != ErrInvalidCredentials {
		t.Errorf("wrong username: err = %v", err)
	}
}

func TestLoginRejectsWhenUnconfigured(t *testing.T) {
	svc := NewAuthService(&config.Config{JWTSecret: "x", JWTExpiry: time.Hour}, newFakeSessions())

	if _, err := svc.Login(context.Background(), "admin", "anything"); err != ErrInvalidCredentials {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogoutInvalidatesToken(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	token, err := svc.Login(ctx, "admin", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims, err := svc.ValidateToken(ctx, token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}

	if err := svc.Logout(ctx, claims.ID); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	if _, err := svc.ValidateToken(ctx, token); err == nil {
		t.Fatal("token still valid after logout")
	}
}

func TestValidateRejectsForeignToken(t *testing.T) {
	svc, _ := newTestAuthService(t)

	if _, err := svc.ValidateToken(context.Background(), "not.a.token"); err == nil {
		t.Fatal("garbage token accepted")
	}
}
