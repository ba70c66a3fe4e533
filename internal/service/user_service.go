package service

import (
	"context"
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"selli/internal/auth"
	apperrors "selli/internal/errors"
	"selli/internal/model"
	"selli/internal/repository"
)

const bcryptCost = 10

// RegisterInput is a validated registration payload.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     *string
}

// UpdateProfileInput is a validated partial profile update. Empty strings
// mean "unchanged"; for Phone, nil means unchanged and a pointer to the
// empty string clears the field.
type UpdateProfileInput struct {
	FirstName string
	LastName  string
	Phone     *string
	Image     string
}

// UserService implements the user lifecycle.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*model.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*model.User, error)
	DeleteAccount(ctx context.Context, userID string) (*model.User, error)
}

type userService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository, jwtService *auth.JWTService) UserService {
	return &userService{users: users, jwtService: jwtService}
}

// Register persists a new account with a bcrypt-hashed password. A taken
// email is a field-level validation error, not a conflict.
func (s *userService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	_, err := s.users.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, apperrors.NewValidation("Invalid register data", map[string]string{
			"email": "Email is in use",
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  string(hash),
		Phone:     input.Phone,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a one-hour token in the
// "Bearer <token>" form. An unknown email is a 404 carrying a field error
// on email; a wrong password a 400 carrying one on password.
func (s *userService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", &apperrors.HTTPError{
				Status:  http.StatusNotFound,
				Code:    "NOT_FOUND",
				Message: "Invalid login data",
				Errors:  map[string]string{"email": "User not found"},
			}
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", apperrors.NewValidation("Invalid login data", map[string]string{
			"password": "Password incorrect",
		})
	}

	token, err := s.jwtService.IssueToken(user)
	if err != nil {
		return "", err
	}
	return "Bearer " + token, nil
}

// UpdateProfile applies the present fields only. Omitted fields are left
// untouched; an explicit empty phone writes NULL.
func (s *userService) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*model.User, error) {
	updates := map[string]any{}
	if input.FirstName != "" {
		updates["first_name"] = input.FirstName
	}
	if input.LastName != "" {
		updates["last_name"] = input.LastName
	}
	if input.Phone != nil {
		if *input.Phone == "" {
			updates["phone"] = nil
		} else {
			updates["phone"] = *input.Phone
		}
	}
	if input.Image != "" {
		updates["image"] = input.Image
	}
	return s.users.UpdateFields(ctx, userID, updates)
}

// DeleteAccount removes the user and cascades to their ads in one
// transaction, then returns the removed user.
func (s *userService) DeleteAccount(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	if err := s.users.DeleteCascade(ctx, userID); err != nil {
		return nil, err
	}
	return user, nil
}
