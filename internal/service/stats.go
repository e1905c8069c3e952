package service

import (
	"context"

	"github.com/veritable/veritable-go/internal/model"
	"github.com/veritable/veritable-go/internal/repository"
)

// recentActivity is the static placeholder series the dashboard chart renders.
// Real telemetry never backed it.
var recentActivity = []model.ActivityPoint{
	{Day: "Mon", Views: 120},
	{Day: "Tue", Views: 145},
	{Day: "Wed", Views: 100},
	{Day: "Thu", Views: 180},
	{Day: "Fri", Views: 220},
	{Day: "Sat", Views: 250},
	{Day: "Sun", Views: 300},
}

// StatsService computes the admin dashboard counters.
type StatsService struct {
	pubs   *repository.PublicationRepository
	admins *repository.AdminRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(pubs *repository.PublicationRepository, admins *repository.AdminRepository) *StatsService {
	return &StatsService{pubs: pubs, admins: admins}
}

// Stats counts publications overall and per type, plus admin accounts.
func (s *StatsService) Stats(ctx context.Context) (model.StatsResponse, error) {
	total, err := s.pubs.Count(ctx)
	if err != nil {
		return model.StatsResponse{}, err
	}
	meditations, err := s.pubs.CountByType(ctx, model.TypeMeditation)
	if err != nil {
		return model.StatsResponse{}, err
	}
	livrets, err := s.pubs.CountByType(ctx, model.TypeLivret)
	if err != nil {
		return model.StatsResponse{}, err
	}
	livres, err := s.pubs.CountByType(ctx, model.TypeLivre)
	if err != nil {
		return model.StatsResponse{}, err
	}
	admins, err := s.admins.Count(ctx)
	if err != nil {
		return model.StatsResponse{}, err
	}

	return model.StatsResponse{
		TotalPublications: total,
		ByType: model.TypeCounts{
			Meditation: meditations,
			Livret:     livrets,
			Livre:      livres,
		},
		Admins:         admins,
		RecentActivity: recentActivity,
	}, nil
}
