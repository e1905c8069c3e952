package service

import (
	"context"
	"errors"
	"time"

	"github.com/veritable/veritable-go/internal/model"
	"github.com/veritable/veritable-go/internal/repository"
)

// Subscription plans.
const (
	PlanMonthly = "monthly"
	PlanYearly  = "yearly"
)

var ErrInvalidPlan = errors.New("plan must be monthly or yearly")

// SubscriptionService toggles the premium flag on a user record. No payment
// gateway is involved; the client is trusted.
type SubscriptionService struct {
	users *repository.UserRepository
}

// NewSubscriptionService creates a new SubscriptionService.
func NewSubscriptionService(users *repository.UserRepository) *SubscriptionService {
	return &SubscriptionService{users: users}
}

// Subscribe marks the user premium with an expiry computed from the current
// timestamp. Renewing resets the expiry rather than extending it.
func (s *SubscriptionService) Subscribe(ctx context.Context, userID int64, plan string) (model.SubscribeResponse, error) {
	if plan != PlanMonthly && plan != PlanYearly {
		return model.SubscribeResponse{}, ErrInvalidPlan
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.SubscribeResponse{}, ErrUserNotFound
		}
		return model.SubscribeResponse{}, err
	}

	endsAt := time.Now()
	if plan == PlanYearly {
		endsAt = endsAt.AddDate(1, 0, 0)
	} else {
		endsAt = endsAt.AddDate(0, 1, 0)
	}

	user.IsPremium = true
	user.SubscriptionEndsAt = &endsAt
	if err := s.users.Update(ctx, user); err != nil {
		return model.SubscribeResponse{}, err
	}

	return model.SubscribeResponse{
		Success:            true,
		IsPremium:          true,
		SubscriptionEndsAt: endsAt,
	}, nil
}
