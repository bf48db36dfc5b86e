package booking

import (
	"time"

	"github.com/google/uuid"
)

// Status values are stored and served exactly as the public API spells them.
type Status string

const (
	StatusScheduled Status = "agendado"
	StatusCompleted Status = "concluido"
	StatusCancelled Status = "cancelado"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Client struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Email     *string
	CreatedAt time.Time
}

type Service struct {
	ID              uuid.UUID
	Name            string
	Description     *string
	Price           float64
	DurationMinutes int
	Active          bool
}

type Appointment struct {
	ID        uuid.UUID
	ClientID  uuid.UUID
	ServiceID uuid.UUID
	StartTime time.Time
	CreatedAt time.Time
	Status    Status
	Notes     *string
}

// AppointmentDetail carries the display fields the API denormalizes onto
// every appointment payload.
type AppointmentDetail struct {
	Appointment
	ClientName             string
	ServiceName            string
	ServicePrice           float64
	ServiceDurationMinutes int
}
