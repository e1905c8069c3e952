package service

import (
	"context"
	"errors"
	"regexp"
	"time"
	"unicode"

	"gorm.io/datatypes"

	"github.com/veritable/veritable-go/internal/crypto"
	"github.com/veritable/veritable-go/internal/model"
	"github.com/veritable/veritable-go/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already used")
	ErrInvalidName        = errors.New("name must be between 2 and 100 characters")
	ErrInvalidEmail       = errors.New("a valid email is required")
	ErrWeakPassword       = errors.New("password must be at least 6 characters with an uppercase letter, a lowercase letter and a digit")
	ErrUserNotFound       = errors.New("user not found")
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AuthService handles registration, login and profile lookup for both
// principal kinds.
type AuthService struct {
	users     *repository.UserRepository
	admins    *repository.AdminRepository
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users *repository.UserRepository, admins *repository.AdminRepository, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		admins:    admins,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Register creates a new user account and returns a signed token with the
// fresh profile.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	if len(req.Name) < 2 || len(req.Name) > 100 {
		return model.AuthResponse{}, ErrInvalidName
	}
	if !emailPattern.MatchString(req.Email) {
		return model.AuthResponse{}, ErrInvalidEmail
	}
	if !strongEnough(req.Password) {
		return model.AuthResponse{}, ErrWeakPassword
	}

	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return model.AuthResponse{}, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return model.AuthResponse{}, err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user := &model.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		Preferences:  datatypes.NewJSONType(model.DefaultPreferences()),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.AuthResponse{}, ErrEmailTaken
		}
		return model.AuthResponse{}, err
	}

	token, err := crypto.GenerateToken(user.ID, model.RoleUser, user.Email, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		Token: token,
		User: model.ProfileResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  model.RoleUser,
		},
	}, nil
}

// Login authenticates an admin by username first, then a user by email, and
// returns a token scoped to the matched role.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	admin, err := s.admins.GetByUsername(ctx, req.Username)
	if err == nil && crypto.CheckPassword(admin.PasswordHash, req.Password) {
		token, err := crypto.GenerateToken(admin.ID, model.RoleAdmin, admin.Username, s.jwtSecret, s.jwtExpiry)
		if err != nil {
			return model.AuthResponse{}, err
		}
		return model.AuthResponse{
			Token: token,
			User: model.ProfileResponse{
				ID:   admin.ID,
				Name: admin.Username,
				Role: model.RoleAdmin,
			},
		}, nil
	}
	if err != nil && !errors.Is(err, repository.ErrAdminNotFound) {
		return model.AuthResponse{}, err
	}

	// The login identifier doubles as the user's email address.
	user, err := s.users.GetByEmail(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}
	if !crypto.CheckPassword(user.PasswordHash, req.Password) {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, model.RoleUser, user.Email, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}
	return model.AuthResponse{
		Token: token,
		User: model.ProfileResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  model.RoleUser,
		},
	}, nil
}

// Me loads the profile behind a verified principal. The password hash never
// leaves the repository layer.
func (s *AuthService) Me(ctx context.Context, principalID int64, role string) (model.ProfileResponse, error) {
	if role == model.RoleAdmin {
		admin, err := s.admins.GetByID(ctx, principalID)
		if err != nil {
			if errors.Is(err, repository.ErrAdminNotFound) {
				return model.ProfileResponse{}, ErrUserNotFound
			}
			return model.ProfileResponse{}, err
		}
		return model.ProfileResponse{
			ID:   admin.ID,
			Name: admin.Username,
			Role: model.RoleAdmin,
		}, nil
	}

	user, err := s.users.GetByID(ctx, principalID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.ProfileResponse{}, ErrUserNotFound
		}
		return model.ProfileResponse{}, err
	}

	prefs := user.Preferences.Data()
	isPremium := user.IsPremium
	return model.ProfileResponse{
		ID:                 user.ID,
		Name:               user.Name,
		Email:              user.Email,
		Role:               model.RoleUser,
		Preferences:        &prefs,
		IsPremium:          &isPremium,
		SubscriptionEndsAt: user.SubscriptionEndsAt,
	}, nil
}

// strongEnough enforces the registration password policy: at least six
// characters with one uppercase letter, one lowercase letter and one digit.
func strongEnough(password string) bool {
	if len(password) < 6 {
		return false
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}
