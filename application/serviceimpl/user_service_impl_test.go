package serviceimpl

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/AkshatShukla22/task-management/domain/apperrors"
	"github.com/AkshatShukla22/task-management/domain/dto"
	"github.com/AkshatShukla22/task-management/pkg/utils"
)

const userTestSecret = "user-test-secret"

func newUserService() (*UserServiceImpl, *fakeUserRepo) {
	repo := newFakeUserRepo()
	svc := &UserServiceImpl{
		userRepo:  repo,
		jwtSecret: userTestSecret,
	}
	return svc, repo
}

func registerTestUser(t *testing.T, svc *UserServiceImpl) string {
	t.Helper()

	_, user, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "secret-pass",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	return user.ID.String()
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newUserService()

	token, user, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "secret-pass",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.Role != "user" || !user.IsActive {
		t.Errorf("new user role = %q, active = %v, want user/true", user.Role, user.IsActive)
	}
	if user.Password == "secret-pass" {
		t.Error("password stored in plain text")
	}

	ctx, err := utils.ValidateToken(token, userTestSecret)
	if err != nil {
		t.Fatalf("registration token invalid: %v", err)
	}
	if ctx.ID != user.ID {
		t.Errorf("token user = %v, want %v", ctx.ID, user.ID)
	}

	if _, _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret-pass",
	}); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newUserService()
	registerTestUser(t, svc)

	_, _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "alice@example.com",
		Username: "someone-else",
		Password: "secret-pass",
	})
	if !errors.Is(err, apperrors.ErrEmailTaken) {
		t.Fatalf("Register() error = %v, want %v", err, apperrors.ErrEmailTaken)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newUserService()
	registerTestUser(t, svc)

	_, _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "other@example.com",
		Username: "alice",
		Password: "secret-pass",
	})
	if !errors.Is(err, apperrors.ErrUsernameTaken) {
		t.Fatalf("Register() error = %v, want %v", err, apperrors.ErrUsernameTaken)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newUserService()
	registerTestUser(t, svc)

	_, _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-pass",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("Login() error = %v, want %v", err, apperrors.ErrInvalidCredentials)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newUserService()

	_, _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret-pass",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("Login() error = %v, want %v", err, apperrors.ErrInvalidCredentials)
	}
}

func TestLoginDeactivatedAccount(t *testing.T) {
	svc, repo := newUserService()
	registerTestUser(t, svc)

	user, err := repo.GetByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}

	if err := svc.Deactivate(context.Background(), user.ID); err != nil {
		t.Fatalf("Deactivate() error = %v", err)
	}

	_, _, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret-pass",
	})
	if !errors.Is(err, apperrors.ErrAccountDisabled) {
		t.Fatalf("Login() error = %v, want %v", err, apperrors.ErrAccountDisabled)
	}
}

func TestChangePassword(t *testing.T) {
	svc, repo := newUserService()
	registerTestUser(t, svc)

	user, err := repo.GetByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}

	err = svc.ChangePassword(context.Background(), user.ID, &dto.ChangePasswordRequest{
		CurrentPassword: "wrong-pass",
		NewPassword:     "new-pass",
		ConfirmPassword: "new-pass",
	})
	if !apperrors.IsValidation(err) {
		t.Fatalf("ChangePassword() with wrong current error = %v, want validation error", err)
	}

	err = svc.ChangePassword(context.Background(), user.ID, &dto.ChangePasswordRequest{
		CurrentPassword: "secret-pass",
		NewPassword:     "new-pass",
		ConfirmPassword: "new-pass",
	})
	if err != nil {
		t.Fatalf("ChangePassword() error = %v", err)
	}

	updated, _ := repo.GetByID(context.Background(), user.ID)
	if err := bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("new-pass")); err != nil {
		t.Errorf("stored hash does not match new password: %v", err)
	}
}
