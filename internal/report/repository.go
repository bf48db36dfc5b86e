package report

import (
	"context"
	"time"

	"github.com/agendaviva/salao-backend/internal/booking"
)

type PopularService struct {
	Name              string
	Price             float64
	TotalAppointments int
	TotalRevenue      float64
}

type DailyRevenue struct {
	Date    time.Time
	Revenue float64
}

type FrequentClient struct {
	Name              string
	Phone             string
	TotalAppointments int
	LastAppointment   *time.Time
}

// Repository holds the aggregate queries behind the dashboard. All of them
// are read-only.
type Repository interface {
	CountClients(ctx context.Context) (int, error)
	CountActiveServices(ctx context.Context) (int, error)
	CountAppointmentsBetween(ctx context.Context, from, to time.Time) (int, error)
	CountAppointmentsSince(ctx context.Context, from time.Time) (int, error)
	CountAppointmentsByStatus(ctx context.Context) (map[booking.Status]int, error)
	RevenueCompletedSince(ctx context.Context, from time.Time) (float64, error)
	PopularServicesSince(ctx context.Context, from time.Time, limit int) ([]PopularService, error)
	DailyRevenueSince(ctx context.Context, from time.Time) ([]DailyRevenue, error)
	FrequentClients(ctx context.Context, limit int) ([]FrequentClient, error)
}

// AppointmentLister is the slice of the booking repository the dashboard
// needs for its listing views.
type AppointmentLister interface {
	ListAppointments(ctx context.Context, f booking.AppointmentFilter) ([]booking.AppointmentDetail, error)
}
