package service

import (
	"context"
	"errors"

	"github.com/veritable/veritable-go/internal/model"
	"github.com/veritable/veritable-go/internal/repository"
)

var (
	ErrPublicationNotFound = errors.New("publication not found")
	ErrInvalidType         = errors.New("type must be Meditation, Livret or Livre")
	ErrInvalidTitle        = errors.New("title must be between 3 and 200 characters")
	ErrContentRequired     = errors.New("content is required")
)

// PublicationService handles publication business logic.
type PublicationService struct {
	repo *repository.PublicationRepository
}

// NewPublicationService creates a new PublicationService.
func NewPublicationService(repo *repository.PublicationRepository) *PublicationService {
	return &PublicationService{repo: repo}
}

// List returns every publication. Reads are public and unpaginated.
func (s *PublicationService) List(ctx context.Context) ([]model.Publication, error) {
	return s.repo.List(ctx)
}

// Get returns a single publication by id.
func (s *PublicationService) Get(ctx context.Context, id int64) (*model.Publication, error) {
	pub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPublicationNotFound) {
			return nil, ErrPublicationNotFound
		}
		return nil, err
	}
	return pub, nil
}

// Create validates the input and persists a new publication. An empty type
// falls back to Meditation, mirroring the store's column default.
func (s *PublicationService) Create(ctx context.Context, in model.PublicationInput) (*model.Publication, error) {
	if len(in.Title) < 3 || len(in.Title) > 200 {
		return nil, ErrInvalidTitle
	}
	if in.Content == "" {
		return nil, ErrContentRequired
	}

	pubType := in.Type
	if pubType == "" {
		pubType = model.TypeMeditation
	}
	if !model.ValidPublicationType(pubType) {
		return nil, ErrInvalidType
	}

	pub := &model.Publication{
		Title:      in.Title,
		Content:    in.Content,
		Type:       pubType,
		CoverImage: in.CoverImage,
	}
	if in.Excerpt != "" {
		pub.Excerpt = &in.Excerpt
	}
	if in.IsPaid != nil {
		pub.IsPaid = *in.IsPaid
	}

	if err := s.repo.Create(ctx, pub); err != nil {
		return nil, err
	}
	return pub, nil
}

// Update merges the supplied fields over the stored row. Fields left empty in
// the input keep their current value; the cover image is only replaced when a
// new one is supplied.
func (s *PublicationService) Update(ctx context.Context, id int64, in model.PublicationInput) (*model.Publication, error) {
	pub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPublicationNotFound) {
			return nil, ErrPublicationNotFound
		}
		return nil, err
	}

	if in.Title != "" {
		if len(in.Title) < 3 || len(in.Title) > 200 {
			return nil, ErrInvalidTitle
		}
		pub.Title = in.Title
	}
	if in.Content != "" {
		pub.Content = in.Content
	}
	if in.Excerpt != "" {
		excerpt := in.Excerpt
		pub.Excerpt = &excerpt
	}
	if in.Type != "" {
		if !model.ValidPublicationType(in.Type) {
			return nil, ErrInvalidType
		}
		pub.Type = in.Type
	}
	if in.IsPaid != nil {
		pub.IsPaid = *in.IsPaid
	}
	if in.CoverImage != nil {
		pub.CoverImage = in.CoverImage
	}

	if err := s.repo.Update(ctx, pub); err != nil {
		return nil, err
	}
	return pub, nil
}

// Delete removes a publication row. The cover file, if any, stays on disk.
func (s *PublicationService) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrPublicationNotFound) {
		return ErrPublicationNotFound
	}
	return err
}
