package service

import (
	"errors"
	"testing"

	"github.com/bookstore-next/internal/config"
	"github.com/bookstore-next/internal/models"
	"github.com/bookstore-next/internal/repository"

	"gorm.io/gorm"
)

func setupUserAuthServiceTest(t *testing.T) (*UserAuthService, *gorm.DB) {
	t.Helper()
	db := setupServiceDB(t)

	cfg := &config.Config{}
	cfg.UserJWT.SecretKey = "test-user-secret-key-0123456789abcdef"
	cfg.UserJWT.ExpireHours = 24
	cfg.Security.PasswordPolicy = config.PasswordPolicyConfig{
		MinLength:     8,
		RequireUpper:  true,
		RequireLower:  true,
		RequireNumber: true,
	}

	svc := NewUserAuthService(cfg, repository.NewUserRepository(db), repository.NewCartRepository(db))
	return svc, db
}

func TestRegisterCreatesUserWithCart(t *testing.T) {
	svc, db := setupUserAuthServiceTest(t)

	user, token, expiresAt, err := svc.Register(RegisterInput{
		Email:     "  Reader@Example.COM ",
		Password:  "Sup3rSecret",
		FirstName: " Ada ",
		LastName:  "Lovelace",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Email != "reader@example.com" {
		t.Fatalf("email should be normalized, got %q", user.Email)
	}
	if user.FirstName != "Ada" {
		t.Fatalf("first name should be trimmed, got %q", user.FirstName)
	}
	if token == "" || expiresAt.IsZero() {
		t.Fatalf("expected token with expiry")
	}

	// 注册即建车，一人一车
	var cart models.ShoppingCart
	if err := db.Where("user_id = ?", user.ID).First(&cart).Error; err != nil {
		t.Fatalf("cart should exist after register: %v", err)
	}

	claims, err := svc.ParseUserJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)

	if _, _, _, err := svc.Register(RegisterInput{Email: "reader@example.com", Password: "Sup3rSecret"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, _, _, err := svc.Register(RegisterInput{Email: "READER@example.com", Password: "An0therSecret"})
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("want ErrEmailExists, got %v", err)
	}
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)

	_, _, _, err := svc.Register(RegisterInput{Email: "reader@example.com", Password: "short"})
	if !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("want ErrWeakPassword, got %v", err)
	}
	_, _, _, err = svc.Register(RegisterInput{Email: "reader@example.com", Password: "alllowercase1"})
	if !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("want ErrWeakPassword for missing uppercase, got %v", err)
	}
}

func TestRegisterRejectsInvalidEmail(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)

	_, _, _, err := svc.Register(RegisterInput{Email: "not-an-email", Password: "Sup3rSecret"})
	if !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("want ErrInvalidEmail, got %v", err)
	}
}

func TestLoginFlow(t *testing.T) {
	svc, db := setupUserAuthServiceTest(t)

	registered, _, _, err := svc.Register(RegisterInput{Email: "reader@example.com", Password: "Sup3rSecret"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, token, _, err := svc.Login("reader@example.com", "Sup3rSecret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != registered.ID || token == "" {
		t.Fatalf("login should return the registered user with a token")
	}

	if _, _, _, err := svc.Login("reader@example.com", "WrongSecret1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}
	if _, _, _, err := svc.Login("nobody@example.com", "Sup3rSecret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials for unknown user, got %v", err)
	}

	if err := db.Model(&models.User{}).Where("id = ?", registered.ID).Update("status", "disabled").Error; err != nil {
		t.Fatalf("disable user failed: %v", err)
	}
	if _, _, _, err := svc.Login("reader@example.com", "Sup3rSecret"); !errors.Is(err, ErrUserDisabled) {
		t.Fatalf("want ErrUserDisabled, got %v", err)
	}
}

func TestChangePasswordBumpsTokenVersion(t *testing.T) {
	svc, db := setupUserAuthServiceTest(t)

	user, _, _, err := svc.Register(RegisterInput{Email: "reader@example.com", Password: "Sup3rSecret"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.ChangePassword(user.ID, "WrongSecret1", "N3wSecretPw"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("want ErrInvalidPassword, got %v", err)
	}
	if err := svc.ChangePassword(user.ID, "Sup3rSecret", "weak"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("want ErrWeakPassword, got %v", err)
	}
	if err := svc.ChangePassword(user.ID, "Sup3rSecret", "N3wSecretPw"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}

	var reloaded models.User
	if err := db.First(&reloaded, user.ID).Error; err != nil {
		t.Fatalf("reload user failed: %v", err)
	}
	if reloaded.TokenVersion != user.TokenVersion+1 {
		t.Fatalf("token version should bump, got %d", reloaded.TokenVersion)
	}
	if reloaded.TokenInvalidBefore == nil {
		t.Fatalf("token invalid before should be set")
	}

	if _, _, _, err := svc.Login("reader@example.com", "N3wSecretPw"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)

	user, _, _, err := svc.Register(RegisterInput{Email: "reader@example.com", Password: "Sup3rSecret", FirstName: "Ada"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	addr := " 1 Library Lane "
	updated, err := svc.UpdateProfile(user.ID, ProfileInput{ShippingAddress: &addr})
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	if updated.ShippingAddress != "1 Library Lane" {
		t.Fatalf("address should be trimmed, got %q", updated.ShippingAddress)
	}
	if updated.FirstName != "Ada" {
		t.Fatalf("untouched fields should remain, got %q", updated.FirstName)
	}

	if _, err := svc.UpdateProfile(user.ID, ProfileInput{}); !errors.Is(err, ErrProfileEmpty) {
		t.Fatalf("want ErrProfileEmpty, got %v", err)
	}
}
