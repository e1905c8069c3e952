package service

import (
	"context"
	"testing"

	"github.com/veritable/veritable-go/internal/model"
)

func TestStats(t *testing.T) {
	_, admins, pubs := newTestRepos(t)
	pubSvc := NewPublicationService(pubs)
	svc := NewStatsService(pubs, admins)
	ctx := context.Background()

	seed := []model.PublicationInput{
		{Title: "Respiration guidee", Content: "texte", Type: model.TypeMeditation},
		{Title: "Marche consciente", Content: "texte", Type: model.TypeMeditation},
		{Title: "Petit livret", Content: "texte", Type: model.TypeLivret},
	}
	for _, in := range seed {
		if _, err := pubSvc.Create(ctx, in); err != nil {
			t.Fatalf("Create() unexpected error: %v", err)
		}
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() unexpected error: %v", err)
	}
	if stats.TotalPublications != 3 {
		t.Errorf("TotalPublications = %d, want 3", stats.TotalPublications)
	}
	if stats.ByType.Meditation != 2 || stats.ByType.Livret != 1 || stats.ByType.Livre != 0 {
		t.Errorf("ByType = %+v", stats.ByType)
	}
	if stats.Admins != 1 {
		t.Errorf("Admins = %d, want the seeded account only", stats.Admins)
	}
	if len(stats.RecentActivity) != 7 {
		t.Fatalf("RecentActivity has %d points, want 7", len(stats.RecentActivity))
	}
	if stats.RecentActivity[0].Day != "Mon" || stats.RecentActivity[0].Views != 120 {
		t.Errorf("RecentActivity[0] = %+v, want Mon/120", stats.RecentActivity[0])
	}
	if stats.RecentActivity[6].Day != "Sun" || stats.RecentActivity[6].Views != 300 {
		t.Errorf("RecentActivity[6] = %+v, want Sun/300", stats.RecentActivity[6])
	}
}
