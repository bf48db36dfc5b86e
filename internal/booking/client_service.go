package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken             = errors.New("email already registered")
	ErrClientHasAppointments  = errors.New("client has appointments")
	ErrServiceHasAppointments = errors.New("service has appointments")
)

type ClientService struct {
	repo Repository
}

func NewClientService(repo Repository) *ClientService {
	return &ClientService{repo: repo}
}

type ClientInput struct {
	Name  string
	Phone string
	Email *string
}

func (s *ClientService) Create(ctx context.Context, in ClientInput) (*Client, error) {
	if in.Email != nil {
		taken, err := s.repo.ClientEmailInUse(ctx, *in.Email, uuid.Nil)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if taken {
			return nil, ErrEmailTaken
		}
	}

	return s.repo.CreateClient(ctx, Client{
		Name:  in.Name,
		Phone: in.Phone,
		Email: in.Email,
	})
}

func (s *ClientService) Get(ctx context.Context, id uuid.UUID) (*Client, error) {
	return s.repo.GetClientByID(ctx, id)
}

func (s *ClientService) List(ctx context.Context) ([]Client, error) {
	return s.repo.ListClients(ctx)
}

func (s *ClientService) Update(ctx context.Context, id uuid.UUID, in ClientInput) (*Client, error) {
	if _, err := s.repo.GetClientByID(ctx, id); err != nil {
		return nil, err
	}

	// Excluding the client itself lets an update keep its current email.
	if in.Email != nil {
		taken, err := s.repo.ClientEmailInUse(ctx, *in.Email, id)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if taken {
			return nil, ErrEmailTaken
		}
	}

	return s.repo.UpdateClient(ctx, Client{
		ID:    id,
		Name:  in.Name,
		Phone: in.Phone,
		Email: in.Email,
	})
}

// Delete refuses to remove a client that still owns appointments. The FK
// cascade exists in the schema but is never reachable through the API.
func (s *ClientService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetClientByID(ctx, id); err != nil {
		return err
	}

	has, err := s.repo.ClientHasAppointments(ctx, id)
	if err != nil {
		return fmt.Errorf("check client appointments: %w", err)
	}
	if has {
		return ErrClientHasAppointments
	}

	return s.repo.DeleteClient(ctx, id)
}
