package service

import (
	"context"
	"errors"
	"log"
	"math/rand/v2"
	"net/mail"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Leganyst/booking-platform/internal/model"
	"github.com/Leganyst/booking-platform/internal/repository"
	"github.com/google/uuid"
)

// IdentityService реализует регистрацию, вход и профиль пользователя.
type IdentityService struct {
	userRepo  repository.UserRepository
	eventRepo repository.EventRepository
}

func NewIdentityService(userRepo repository.UserRepository, eventRepo repository.EventRepository) *IdentityService {
	return &IdentityService{userRepo: userRepo, eventRepo: eventRepo}
}

// SignupInput — команда регистрации, уже разобранная на границе из JSON.
type SignupInput struct {
	Username      string
	Email         string
	DisplayName   string
	Password      string
	PasswordAgain string
	IsHost        bool
}

const displayNameChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// randomDisplayName генерирует имя из 8 случайных символов —
// запасной вариант, когда пользователь не указал display_name.
func randomDisplayName() string {
	b := make([]byte, 8)
	for i := range b {
		b[i] = displayNameChars[rand.IntN(len(displayNameChars))]
	}
	return string(b)
}

func validateSignup(in *SignupInput) error {
	if len(in.Username) < 4 || len(in.Username) > 40 {
		return ErrInvalidUsername
	}
	if _, err := mail.ParseAddress(in.Email); err != nil || len(in.Email) > 128 {
		return ErrInvalidEmail
	}
	if len(in.Password) < 8 || len(in.Password) > 128 {
		return ErrInvalidPassword
	}
	if in.Password != in.PasswordAgain {
		return ErrPasswordsNotEqual
	}
	if in.DisplayName == "" {
		in.DisplayName = randomDisplayName()
	} else if len(in.DisplayName) < 4 || len(in.DisplayName) > 40 {
		return ErrInvalidDisplayName
	}
	return nil
}

// Signup создаёт пользователя. Дубликаты логина и email отсекаются
// предварительной проверкой, а гонку страхуют уникальные индексы в БД.
func (s *IdentityService) Signup(ctx context.Context, in SignupInput) (*model.User, error) {
	if err := validateSignup(&in); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByUsername(ctx, in.Username); err == nil {
		return nil, ErrDuplicatedUsername
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.userRepo.FindByEmail(ctx, in.Email); err == nil {
		return nil, ErrDuplicatedEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           uuid.New(),
		Username:     in.Username,
		Email:        in.Email,
		DisplayName:  in.DisplayName,
		PasswordHash: string(hash),
		IsHost:       in.IsHost,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Конкурент успел первым; выясняем, какое поле занято.
			if _, e := s.userRepo.FindByUsername(ctx, in.Username); e == nil {
				return nil, ErrDuplicatedUsername
			}
			return nil, ErrDuplicatedEmail
		}
		return nil, err
	}

	// Аудит не должен ронять регистрацию.
	ev := &model.Event{
		ID:        uuid.New(),
		EventType: model.EventTypeUserRegistered,
		UserID:    &user.ID,
		Details:   "username=" + user.Username,
	}
	if err := s.eventRepo.Create(ctx, ev); err != nil {
		log.Printf("signup audit event: %v", err)
	}

	return user, nil
}

// Login проверяет пару логин/пароль и возвращает пользователя.
func (s *IdentityService) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrPasswordMismatch
	}

	return user, nil
}

// UserDetail возвращает пользователя по логину.
func (s *IdentityService) UserDetail(ctx context.Context, username string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile обновляет отображаемое имя и/или email текущего пользователя.
func (s *IdentityService) UpdateProfile(
	ctx context.Context,
	userID uuid.UUID,
	displayName, email string,
) (*model.User, error) {
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil || len(email) > 128 {
			return nil, ErrInvalidEmail
		}
	}
	if displayName != "" && (len(displayName) < 4 || len(displayName) > 40) {
		return nil, ErrInvalidDisplayName
	}

	user, err := s.userRepo.UpdateProfile(ctx, userID, displayName, email)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicatedEmail
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
