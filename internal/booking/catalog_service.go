package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CatalogService manages the salon's offered services.
type CatalogService struct {
	repo Repository
}

func NewCatalogService(repo Repository) *CatalogService {
	return &CatalogService{repo: repo}
}

type ServiceInput struct {
	Name            string
	Description     *string
	Price           float64
	DurationMinutes int
	Active          bool
}

func (s *CatalogService) Create(ctx context.Context, in ServiceInput) (*Service, error) {
	return s.repo.CreateService(ctx, Service{
		Name:            in.Name,
		Description:     in.Description,
		Price:           in.Price,
		DurationMinutes: in.DurationMinutes,
		Active:          in.Active,
	})
}

func (s *CatalogService) Get(ctx context.Context, id uuid.UUID) (*Service, error) {
	return s.repo.GetServiceByID(ctx, id)
}

func (s *CatalogService) List(ctx context.Context, activeOnly bool) ([]Service, error) {
	return s.repo.ListServices(ctx, activeOnly)
}

func (s *CatalogService) Update(ctx context.Context, id uuid.UUID, in ServiceInput) (*Service, error) {
	if _, err := s.repo.GetServiceByID(ctx, id); err != nil {
		return nil, err
	}

	return s.repo.UpdateService(ctx, Service{
		ID:              id,
		Name:            in.Name,
		Description:     in.Description,
		Price:           in.Price,
		DurationMinutes: in.DurationMinutes,
		Active:          in.Active,
	})
}

func (s *CatalogService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetServiceByID(ctx, id); err != nil {
		return err
	}

	has, err := s.repo.ServiceHasAppointments(ctx, id)
	if err != nil {
		return fmt.Errorf("check service appointments: %w", err)
	}
	if has {
		return ErrServiceHasAppointments
	}

	return s.repo.DeleteService(ctx, id)
}

// ToggleActive flips the active flag and returns the updated service.
func (s *CatalogService) ToggleActive(ctx context.Context, id uuid.UUID) (*Service, error) {
	svc, err := s.repo.GetServiceByID(ctx, id)
	if err != nil {
		return nil, err
	}

	svc.Active = !svc.Active
	return s.repo.UpdateService(ctx, *svc)
}
