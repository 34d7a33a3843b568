package ground

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	groundRepo "pitchbook/database/repository/ground"
	"pitchbook/models"
)

// GroundService manages the facility directory: the admin UI creates and
// edits grounds, the customer UI lists active ones.
type GroundService interface {
	List(ctx context.Context, activeOnly bool) ([]models.Ground, error)
	GetByID(ctx context.Context, id string) (*models.Ground, error)
	Create(ctx context.Context, ground *models.Ground) (*models.Ground, error)
	Update(ctx context.Context, ground *models.Ground) (*models.Ground, error)
	UploadPhoto(ctx context.Context, id string, file multipart.File) (*models.Ground, error)
}

// DefaultGroundService is the production implementation. Cloudinary is
// optional; photo uploads fail cleanly when it is not configured.
type DefaultGroundService struct {
	Repo       groundRepo.GroundRepository
	Cloudinary *cloudinary.Cloudinary
}

func (s *DefaultGroundService) List(ctx context.Context, activeOnly bool) ([]models.Ground, error) {
	return s.Repo.List(ctx, activeOnly)
}

func (s *DefaultGroundService) GetByID(ctx context.Context, id string) (*models.Ground, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultGroundService) Create(ctx context.Context, g *models.Ground) (*models.Ground, error) {
	if g.Name == "" {
		return nil, fmt.Errorf("ground name is required")
	}
	if g.SlotCount <= 0 {
		g.SlotCount = 1
	}
	if g.OpenTime == "" {
		g.OpenTime = "06:00"
	}
	if g.CloseTime == "" {
		g.CloseTime = "22:00"
	}
	g.ID = uuid.New().String()
	g.CreatedAt = time.Now()

	if err := s.Repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *DefaultGroundService) Update(ctx context.Context, g *models.Ground) (*models.Ground, error) {
	existing, err := s.Repo.GetByID(ctx, g.ID)
	if err != nil {
		return nil, err
	}
	// Preserve server-managed fields.
	g.CreatedAt = existing.CreatedAt
	if g.ImageURL == "" {
		g.ImageURL = existing.ImageURL
	}

	if err := s.Repo.Update(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// UploadPhoto stores the image in Cloudinary and saves the delivered URL on
// the ground.
func (s *DefaultGroundService) UploadPhoto(ctx context.Context, id string, file multipart.File) (*models.Ground, error) {
	if s.Cloudinary == nil {
		return nil, fmt.Errorf("photo uploads are not configured")
	}

	g, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp, err := s.Cloudinary.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   "grounds",
		PublicID: g.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload ground photo: %w", err)
	}

	g.ImageURL = resp.SecureURL
	if err := s.Repo.Update(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}
