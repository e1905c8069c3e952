package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/veritable/veritable-go/internal/model"
)

func TestUserListAndDelete(t *testing.T) {
	users, admins, _ := newTestRepos(t)
	auth := NewAuthService(users, admins, "test-secret", time.Hour)
	svc := NewUserService(users)
	ctx := context.Background()

	for _, req := range []model.RegisterRequest{
		{Name: "Alice", Email: "a@x.com", Password: "Abc123"},
		{Name: "Benoit", Email: "b@x.com", Password: "Abc123"},
	} {
		if _, err := auth.Register(ctx, req); err != nil {
			t.Fatalf("Register(%s) unexpected error: %v", req.Email, err)
		}
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("List() returned %d users, want 2", len(list))
	}
	if list[0].Email != "a@x.com" || list[1].Email != "b@x.com" {
		t.Errorf("List() order = %s, %s, want ascending ids", list[0].Email, list[1].Email)
	}

	if err := svc.Delete(ctx, list[0].ID); err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}
	list, err = svc.List(ctx)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].Email != "b@x.com" {
		t.Errorf("List() after delete = %+v", list)
	}

	if err := svc.Delete(ctx, 999); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Delete() missing user error = %v, want ErrUserNotFound", err)
	}
}
