package report

import (
	"context"
	"fmt"
	"time"

	"github.com/agendaviva/salao-backend/internal/booking"
)

const (
	popularServicesLimit = 5
	frequentClientsLimit = 10
	upcomingLimit        = 10
	upcomingWindow       = 7 * 24 * time.Hour
	dailyRevenueWindow   = 30 * 24 * time.Hour
)

type Stats struct {
	TotalClients      int
	ActiveServices    int
	AppointmentsToday int
	AppointmentsWeek  int
	AppointmentsMonth int
	MonthRevenue      float64
	ByStatus          map[booking.Status]int
}

type Service struct {
	repo   Repository
	lister AppointmentLister
	now    func() time.Time
}

func NewService(repo Repository, lister AppointmentLister) *Service {
	return &Service{
		repo:   repo,
		lister: lister,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Stats aggregates the dashboard headline numbers. All windows are derived
// from one UTC now: today, the Monday-started week, and the calendar month.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	now := s.now()
	today := dayStart(now)
	week := weekStart(now)
	month := monthStart(now)

	totalClients, err := s.repo.CountClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("count clients: %w", err)
	}

	activeServices, err := s.repo.CountActiveServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("count active services: %w", err)
	}

	apptsToday, err := s.repo.CountAppointmentsBetween(ctx, today, today.Add(24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("count today's appointments: %w", err)
	}

	apptsWeek, err := s.repo.CountAppointmentsBetween(ctx, week, week.Add(7*24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("count week appointments: %w", err)
	}

	apptsMonth, err := s.repo.CountAppointmentsSince(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("count month appointments: %w", err)
	}

	revenue, err := s.repo.RevenueCompletedSince(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("month revenue: %w", err)
	}

	byStatus, err := s.repo.CountAppointmentsByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count by status: %w", err)
	}

	return &Stats{
		TotalClients:      totalClients,
		ActiveServices:    activeServices,
		AppointmentsToday: apptsToday,
		AppointmentsWeek:  apptsWeek,
		AppointmentsMonth: apptsMonth,
		MonthRevenue:      revenue,
		ByStatus:          byStatus,
	}, nil
}

// TodayAppointments lists today's appointments ordered by start time.
func (s *Service) TodayAppointments(ctx context.Context) ([]booking.AppointmentDetail, error) {
	from := dayStart(s.now())
	to := from.Add(24*time.Hour - time.Nanosecond)
	return s.lister.ListAppointments(ctx, booking.AppointmentFilter{From: &from, To: &to})
}

// UpcomingAppointments lists the next scheduled appointments within seven days.
func (s *Service) UpcomingAppointments(ctx context.Context) ([]booking.AppointmentDetail, error) {
	from := s.now()
	to := from.Add(upcomingWindow)
	status := booking.StatusScheduled

	appts, err := s.lister.ListAppointments(ctx, booking.AppointmentFilter{
		From:   &from,
		To:     &to,
		Status: &status,
	})
	if err != nil {
		return nil, err
	}

	if len(appts) > upcomingLimit {
		appts = appts[:upcomingLimit]
	}
	return appts, nil
}

func (s *Service) PopularServices(ctx context.Context) ([]PopularService, error) {
	return s.repo.PopularServicesSince(ctx, monthStart(s.now()), popularServicesLimit)
}

func (s *Service) DailyRevenue(ctx context.Context) ([]DailyRevenue, error) {
	return s.repo.DailyRevenueSince(ctx, s.now().Add(-dailyRevenueWindow))
}

func (s *Service) FrequentClients(ctx context.Context) ([]FrequentClient, error) {
	return s.repo.FrequentClients(ctx, frequentClientsLimit)
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// weekStart returns the Monday 00:00 UTC of t's week.
func weekStart(t time.Time) time.Time {
	day := dayStart(t)
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return day.AddDate(0, 0, -offset)
}

func monthStart(t time.Time) time.Time {
	y, m, _ := t.UTC().Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}
