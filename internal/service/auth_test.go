package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/veritable/veritable-go/internal/crypto"
	"github.com/veritable/veritable-go/internal/model"
)

func newTestAuthService(t *testing.T) *AuthService {
	users, admins, _ := newTestRepos(t)
	return NewAuthService(users, admins, "test-secret", time.Hour)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     model.RegisterRequest
		wantErr error
	}{
		{
			name:    "name too short",
			req:     model.RegisterRequest{Name: "A", Email: "a@x.com", Password: "Abc123"},
			wantErr: ErrInvalidName,
		},
		{
			name:    "empty name",
			req:     model.RegisterRequest{Email: "a@x.com", Password: "Abc123"},
			wantErr: ErrInvalidName,
		},
		{
			name:    "invalid email",
			req:     model.RegisterRequest{Name: "Alice", Email: "not-an-email", Password: "Abc123"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "password too short",
			req:     model.RegisterRequest{Name: "Alice", Email: "a@x.com", Password: "Ab1"},
			wantErr: ErrWeakPassword,
		},
		{
			name:    "password missing uppercase",
			req:     model.RegisterRequest{Name: "Alice", Email: "a@x.com", Password: "abc123"},
			wantErr: ErrWeakPassword,
		},
		{
			name:    "password missing digit",
			req:     model.RegisterRequest{Name: "Alice", Email: "a@x.com", Password: "Abcdef"},
			wantErr: ErrWeakPassword,
		},
		{
			name: "valid request",
			req:  model.RegisterRequest{Name: "Alice", Email: "a@x.com", Password: "Abc123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestAuthService(t)
			_, err := svc.Register(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Register() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterIssuesUserToken(t *testing.T) {
	svc := newTestAuthService(t)

	resp, err := svc.Register(context.Background(), model.RegisterRequest{
		Name: "Alice", Email: "a@x.com", Password: "Abc123",
	})
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if resp.User.Role != model.RoleUser {
		t.Errorf("Register() role = %q, want %q", resp.User.Role, model.RoleUser)
	}
	if resp.User.Email != "a@x.com" || resp.User.Name != "Alice" {
		t.Errorf("Register() profile = %+v", resp.User)
	}

	claims, err := crypto.ValidateToken(resp.Token, "test-secret")
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.Role != model.RoleUser || claims.PrincipalID != resp.User.ID {
		t.Errorf("token claims = %+v, want role=user id=%d", claims, resp.User.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, model.RegisterRequest{Name: "Alice", Email: "a@x.com", Password: "Abc123"}); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	_, err := svc.Register(ctx, model.RegisterRequest{Name: "Imposter", Email: "a@x.com", Password: "Xyz789"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("Register() duplicate error = %v, want ErrEmailTaken", err)
	}
}

func TestLoginAdmin(t *testing.T) {
	svc := newTestAuthService(t)

	resp, err := svc.Login(context.Background(), model.LoginRequest{
		Username: "admin", Password: "Admin@2024!",
	})
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}
	if resp.User.Role != model.RoleAdmin {
		t.Errorf("Login() role = %q, want %q", resp.User.Role, model.RoleAdmin)
	}
	if resp.User.Name != "admin" || resp.User.Email != "" {
		t.Errorf("Login() admin profile = %+v", resp.User)
	}

	claims, err := crypto.ValidateToken(resp.Token, "test-secret")
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.Role != model.RoleAdmin || claims.Username != "admin" {
		t.Errorf("token claims = %+v, want admin-scoped claims", claims)
	}
}

func TestLoginUserByEmail(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, model.RegisterRequest{Name: "Alice", Email: "a@x.com", Password: "Abc123"}); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	resp, err := svc.Login(ctx, model.LoginRequest{Username: "a@x.com", Password: "Abc123"})
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}
	if resp.User.Role != model.RoleUser || resp.User.Email != "a@x.com" {
		t.Errorf("Login() profile = %+v", resp.User)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, model.RegisterRequest{Name: "Alice", Email: "a@x.com", Password: "Abc123"}); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	tests := []struct {
		name string
		req  model.LoginRequest
	}{
		{name: "unknown identifier", req: model.LoginRequest{Username: "nobody@x.com", Password: "Abc123"}},
		{name: "wrong user password", req: model.LoginRequest{Username: "a@x.com", Password: "Wrong1"}},
		{name: "wrong admin password", req: model.LoginRequest{Username: "admin", Password: "nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Login(ctx, tt.req); !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestMeUserProfile(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, model.RegisterRequest{Name: "Alice", Email: "a@x.com", Password: "Abc123"})
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	profile, err := svc.Me(ctx, reg.User.ID, model.RoleUser)
	if err != nil {
		t.Fatalf("Me() unexpected error: %v", err)
	}
	if profile.Role != model.RoleUser || profile.Email != "a@x.com" {
		t.Errorf("Me() profile = %+v", profile)
	}
	if profile.IsPremium == nil || *profile.IsPremium {
		t.Error("Me() new user should not be premium")
	}
	if profile.Preferences == nil {
		t.Fatal("Me() user profile missing preferences")
	}
	if profile.Preferences.FontSize != "medium" || profile.Preferences.FontFamily != "Lato" {
		t.Errorf("Me() preferences = %+v, want defaults", profile.Preferences)
	}
}

func TestMeAdminProfile(t *testing.T) {
	svc := newTestAuthService(t)

	profile, err := svc.Me(context.Background(), 1, model.RoleAdmin)
	if err != nil {
		t.Fatalf("Me() unexpected error: %v", err)
	}
	if profile.Role != model.RoleAdmin || profile.Name != "admin" {
		t.Errorf("Me() admin profile = %+v", profile)
	}
	if profile.Preferences != nil || profile.IsPremium != nil {
		t.Error("Me() admin profile should not carry user-only fields")
	}
}

func TestMeMissingUser(t *testing.T) {
	svc := newTestAuthService(t)

	if _, err := svc.Me(context.Background(), 999, model.RoleUser); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Me() error = %v, want ErrUserNotFound", err)
	}
}
