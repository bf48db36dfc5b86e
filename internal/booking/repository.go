package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound      = errors.New("cliente not found")
	ErrServiceNotFound     = errors.New("servico not found")
	ErrAppointmentNotFound = errors.New("agendamento not found")
)

// AppointmentFilter narrows a listing. Nil fields are ignored; From and To
// are inclusive bounds on the start time.
type AppointmentFilter struct {
	From     *time.Time
	To       *time.Time
	Status   *Status
	ClientID *uuid.UUID
}

// Repository contains all DB interactions needed by the service.
type Repository interface {
	CreateClient(ctx context.Context, c Client) (*Client, error)
	GetClientByID(ctx context.Context, id uuid.UUID) (*Client, error)
	ListClients(ctx context.Context) ([]Client, error)
	UpdateClient(ctx context.Context, c Client) (*Client, error)
	DeleteClient(ctx context.Context, id uuid.UUID) error
	ClientEmailInUse(ctx context.Context, email string, exclude uuid.UUID) (bool, error)
	ClientHasAppointments(ctx context.Context, id uuid.UUID) (bool, error)

	CreateService(ctx context.Context, s Service) (*Service, error)
	GetServiceByID(ctx context.Context, id uuid.UUID) (*Service, error)
	ListServices(ctx context.Context, activeOnly bool) ([]Service, error)
	UpdateService(ctx context.Context, s Service) (*Service, error)
	DeleteService(ctx context.Context, id uuid.UUID) error
	ServiceHasAppointments(ctx context.Context, id uuid.UUID) (bool, error)

	CreateAppointment(ctx context.Context, a Appointment) (*AppointmentDetail, error)
	GetAppointmentDetail(ctx context.Context, id uuid.UUID) (*AppointmentDetail, error)
	ListAppointments(ctx context.Context, f AppointmentFilter) ([]AppointmentDetail, error)
	UpdateAppointment(ctx context.Context, a Appointment) (*AppointmentDetail, error)
	UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, status Status) (*AppointmentDetail, error)
	DeleteAppointment(ctx context.Context, id uuid.UUID) error

	// For conflict checks: every scheduled appointment's derived interval.
	ListScheduledIntervals(ctx context.Context) ([]ScheduledInterval, error)
}
