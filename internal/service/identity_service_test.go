package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Leganyst/booking-platform/internal/model"
	"github.com/Leganyst/booking-platform/internal/repository"
)

func newIdentityService(db *gorm.DB) *IdentityService {
	return NewIdentityService(
		repository.NewGormUserRepository(db),
		repository.NewGormEventRepository(db),
	)
}

func validSignup() SignupInput {
	return SignupInput{
		Username:      "pudding",
		Email:         "pudding@example.com",
		DisplayName:   "Pudding Camp",
		Password:      "secret-password-1",
		PasswordAgain: "secret-password-1",
	}
}

func TestIdentityService_Signup_OK(t *testing.T) {
	db := newTestDB(t)
	svc := newIdentityService(db)

	user, err := svc.Signup(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if user.Username != "pudding" || user.Email != "pudding@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.IsHost {
		t.Errorf("new user must not be a host by default")
	}
	if user.PasswordHash == "secret-password-1" {
		t.Errorf("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret-password-1")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}

	var events int64
	if err := db.Model(&model.Event{}).
		Where("event_type = ?", model.EventTypeUserRegistered).
		Count(&events).Error; err != nil {
		t.Fatalf("count events: %v", err)
	}
	if events != 1 {
		t.Errorf("audit events = %d, want 1", events)
	}
}

func TestIdentityService_Signup_GeneratedDisplayName(t *testing.T) {
	db := newTestDB(t)
	svc := newIdentityService(db)

	in := validSignup()
	in.DisplayName = ""

	user, err := svc.Signup(context.Background(), in)
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if len(user.DisplayName) != 8 {
		t.Fatalf("generated display name %q, want 8 characters", user.DisplayName)
	}
}

func TestIdentityService_Signup_Validation(t *testing.T) {
	db := newTestDB(t)
	svc := newIdentityService(db)

	cases := []struct {
		name    string
		mutate  func(*SignupInput)
		wantErr error
	}{
		{"short username", func(in *SignupInput) { in.Username = "x" }, ErrInvalidUsername},
		{"long username", func(in *SignupInput) {
			in.Username = "puddingcamppuddingcamppuddingcamppuddingcamp"
		}, ErrInvalidUsername},
		{"bad email", func(in *SignupInput) { in.Email = "not-an-email" }, ErrInvalidEmail},
		{"short display name", func(in *SignupInput) { in.DisplayName = "ab" }, ErrInvalidDisplayName},
		{"long display name", func(in *SignupInput) {
			in.DisplayName = strings.Repeat("x", 41)
		}, ErrInvalidDisplayName},
		{"short password", func(in *SignupInput) { in.Password, in.PasswordAgain = "short", "short" }, ErrInvalidPassword},
		{"password mismatch", func(in *SignupInput) { in.PasswordAgain = "different-password" }, ErrPasswordsNotEqual},
	}

	for _, tc := range cases {
		in := validSignup()
		tc.mutate(&in)
		if _, err := svc.Signup(context.Background(), in); !errors.Is(err, tc.wantErr) {
			t.Errorf("%s: error = %v, want %v", tc.name, err, tc.wantErr)
		}
	}

	var users int64
	if err := db.Model(&model.User{}).Count(&users).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if users != 0 {
		t.Fatalf("users created on invalid input: %d", users)
	}
}

func TestIdentityService_Signup_Duplicates(t *testing.T) {
	db := newTestDB(t)
	svc := newIdentityService(db)

	if _, err := svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("first Signup: %v", err)
	}

	dup := validSignup()
	dup.Email = "other@example.com"
	if _, err := svc.Signup(context.Background(), dup); !errors.Is(err, ErrDuplicatedUsername) {
		t.Fatalf("error = %v, want ErrDuplicatedUsername", err)
	}

	dup = validSignup()
	dup.Username = "pudding2"
	if _, err := svc.Signup(context.Background(), dup); !errors.Is(err, ErrDuplicatedEmail) {
		t.Fatalf("error = %v, want ErrDuplicatedEmail", err)
	}
}

func TestIdentityService_Login(t *testing.T) {
	db := newTestDB(t)
	svc := newIdentityService(db)

	if _, err := svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	user, err := svc.Login(context.Background(), "pudding", "secret-password-1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Username != "pudding" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.Login(context.Background(), "pudding", "wrong-password"); !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("error = %v, want ErrPasswordMismatch", err)
	}
	if _, err := svc.Login(context.Background(), "nobody", "secret-password-1"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("error = %v, want ErrUserNotFound", err)
	}
}

func TestIdentityService_UserDetail(t *testing.T) {
	db := newTestDB(t)
	svc := newIdentityService(db)

	if _, err := svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	user, err := svc.UserDetail(context.Background(), "pudding")
	if err != nil {
		t.Fatalf("UserDetail: %v", err)
	}
	if user.Email != "pudding@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.UserDetail(context.Background(), "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("error = %v, want ErrUserNotFound", err)
	}
}

func TestIdentityService_UpdateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newIdentityService(db)

	user, err := svc.Signup(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}

	updated, err := svc.UpdateProfile(context.Background(), user.ID, "New Name", "new@example.com")
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.DisplayName != "New Name" || updated.Email != "new@example.com" {
		t.Fatalf("unexpected profile: %+v", updated)
	}

	if _, err := svc.UpdateProfile(context.Background(), user.ID, "", "not-an-email"); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("error = %v, want ErrInvalidEmail", err)
	}
}
