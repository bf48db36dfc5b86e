package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agendaviva/salao-backend/internal/redisclient"
)

var (
	ErrScheduleConflict = errors.New("schedule conflict with another appointment")
	ErrServiceInactive  = errors.New("servico is not active")
	ErrPastAppointment  = errors.New("appointment start is in the past")
	ErrInvalidStatus    = errors.New("invalid appointment status")
)

type AppointmentService struct {
	repo   Repository
	locker redisclient.Locker
	now    func() time.Time
}

func NewAppointmentService(repo Repository, locker redisclient.Locker) *AppointmentService {
	return &AppointmentService{
		repo:   repo,
		locker: locker,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

type AppointmentInput struct {
	ClientID  uuid.UUID
	ServiceID uuid.UUID
	StartTime time.Time
	Notes     *string
	Status    *Status // update only; nil keeps the current status
}

// Create books a new appointment. The conflict check and the insert run
// inside the calendar lock so two concurrent requests cannot both claim the
// same slot.
func (s *AppointmentService) Create(ctx context.Context, in AppointmentInput) (*AppointmentDetail, error) {
	if _, err := s.repo.GetClientByID(ctx, in.ClientID); err != nil {
		return nil, err
	}

	svc, err := s.repo.GetServiceByID(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !svc.Active {
		return nil, ErrServiceInactive
	}

	start := in.StartTime.UTC()
	if start.Before(s.now()) {
		return nil, ErrPastAppointment
	}

	candidate := NewInterval(start, svc.DurationMinutes)

	var created *AppointmentDetail

	err = s.locker.WithCalendarLock(ctx, func(lockCtx context.Context) error {
		existing, err := s.repo.ListScheduledIntervals(lockCtx)
		if err != nil {
			return fmt.Errorf("list scheduled intervals: %w", err)
		}
		if _, conflict := FindConflict(candidate, existing, uuid.Nil); conflict {
			return ErrScheduleConflict
		}

		detail, err := s.repo.CreateAppointment(lockCtx, Appointment{
			ClientID:  in.ClientID,
			ServiceID: in.ServiceID,
			StartTime: start,
			Status:    StatusScheduled,
			Notes:     in.Notes,
		})
		if err != nil {
			return fmt.Errorf("create appointment: %w", err)
		}

		created = detail
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *AppointmentService) Get(ctx context.Context, id uuid.UUID) (*AppointmentDetail, error) {
	return s.repo.GetAppointmentDetail(ctx, id)
}

func (s *AppointmentService) List(ctx context.Context, f AppointmentFilter) ([]AppointmentDetail, error) {
	return s.repo.ListAppointments(ctx, f)
}

// Update re-runs the same referential and schedule checks as Create, but
// excludes the appointment's own record from the conflict scan so an
// unchanged time never conflicts with itself. The past check only applies
// when the start time actually moved.
func (s *AppointmentService) Update(ctx context.Context, id uuid.UUID, in AppointmentInput) (*AppointmentDetail, error) {
	current, err := s.repo.GetAppointmentDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.GetClientByID(ctx, in.ClientID); err != nil {
		return nil, err
	}

	svc, err := s.repo.GetServiceByID(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !svc.Active {
		return nil, ErrServiceInactive
	}

	start := in.StartTime.UTC()
	if !start.Equal(current.StartTime) && start.Before(s.now()) {
		return nil, ErrPastAppointment
	}

	status := current.Status
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		status = *in.Status
	}

	candidate := NewInterval(start, svc.DurationMinutes)

	var updated *AppointmentDetail

	err = s.locker.WithCalendarLock(ctx, func(lockCtx context.Context) error {
		if status == StatusScheduled {
			existing, err := s.repo.ListScheduledIntervals(lockCtx)
			if err != nil {
				return fmt.Errorf("list scheduled intervals: %w", err)
			}
			if _, conflict := FindConflict(candidate, existing, id); conflict {
				return ErrScheduleConflict
			}
		}

		detail, err := s.repo.UpdateAppointment(lockCtx, Appointment{
			ID:        id,
			ClientID:  in.ClientID,
			ServiceID: in.ServiceID,
			StartTime: start,
			Status:    status,
			Notes:     in.Notes,
		})
		if err != nil {
			return fmt.Errorf("update appointment: %w", err)
		}

		updated = detail
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// UpdateStatus patches only the status. Any of the three values may be set;
// there is no transition state machine.
func (s *AppointmentService) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*AppointmentDetail, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.repo.UpdateAppointmentStatus(ctx, id, status)
}

func (s *AppointmentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteAppointment(ctx, id)
}

// CheckAvailability answers whether the given service could be booked at
// start. One UTC clock serves both the conflict and the past check.
func (s *AppointmentService) CheckAvailability(ctx context.Context, serviceID uuid.UUID, start time.Time) (Decision, error) {
	svc, err := s.repo.GetServiceByID(ctx, serviceID)
	if err != nil {
		return Decision{}, err
	}

	existing, err := s.repo.ListScheduledIntervals(ctx)
	if err != nil {
		return Decision{}, fmt.Errorf("list scheduled intervals: %w", err)
	}

	candidate := NewInterval(start.UTC(), svc.DurationMinutes)
	return Availability(candidate, existing, s.now()), nil
}
